package layout

import (
	"math"

	"github.com/ingyamilmolinar/lanechart/core/model"
	"github.com/ingyamilmolinar/lanechart/internal/utils"
)

const lengthEps = 1e-9

// VisualLengths computes the on-screen length of every note in one top-down
// pass. notes must be ordered by offset.
//
// Each note only looks at the next note in sequence. When that note shares
// the lane and sits closer than NoteHeight, the pair is shrunk: equal lengths
// both lose the overlap, unequal lengths are clamped to the smaller one. The
// successor then starts its own pass from the negotiated value. Chains of
// three or more overlapping notes are not resolved globally.
func VisualLengths(notes []model.Note, cfg Config) []float64 {
	lengths := make([]float64, len(notes))
	start := cfg.NoteHeight
	for i, n := range notes {
		length := start
		start = cfg.NoteHeight

		if i+1 < len(notes) && notes[i+1].Lane == n.Lane {
			next := notes[i+1]
			nextLength := cfg.NoteHeight
			gap := Gap(n, next, cfg)
			if gap < cfg.NoteHeight {
				if utils.AlmostEqual(length, nextLength, lengthEps) {
					if overlap := length - gap; overlap > 0 {
						length -= overlap
						nextLength -= overlap
					}
				} else {
					smaller := math.Min(length, nextLength)
					length, nextLength = smaller, smaller
				}
				start = nextLength
			}
		}

		if n.Held() {
			length = extendHeld(length, n.Length*cfg.TicksPerUnit, cfg)
		}
		lengths[i] = length
	}
	return lengths
}

// Gap is the vertical distance between two notes' projected positions.
func Gap(a, b model.Note, cfg Config) float64 {
	return utils.Abs(cfg.NoteY(b.Offset, 0) - cfg.NoteY(a.Offset, 0))
}

// extendHeld stretches a hold note by its duration in units of TicksPerUnit
// and then halves the result.
func extendHeld(length, ticks float64, cfg Config) float64 {
	steps := ticks / cfg.TicksPerUnit
	length += cfg.Padding*steps + length*steps
	length -= length / 2
	return length
}
