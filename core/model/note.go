package model

import (
	"fmt"
	"sort"
)

// Lanes is the number of horizontal tracks a chart has.
const Lanes = 3

// Swipe is the optional gesture glyph attached to a note.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeUp
	SwipeDown
	SwipeLeft
	SwipeRight
)

func (s Swipe) String() string {
	switch s {
	case SwipeNone:
		return "none"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return fmt.Sprintf("swipe(%d)", int(s))
	}
}

// Valid reports whether s is none or one of the four directions.
func (s Swipe) Valid() bool { return s >= SwipeNone && s <= SwipeRight }

// Note is a parsed chart note. Offset and Length are in chart units (one unit
// is TicksPerUnit ticks in the editor convention).
type Note struct {
	Offset float64 `json:"offset"`
	Lane   int     `json:"lane"`
	Length float64 `json:"length"`
	Swipe  Swipe   `json:"swipe,omitempty"`
	Size   int     `json:"size,omitempty"` // editor note size, carried through untouched
}

// Held reports whether the note spans a nonzero duration.
func (n Note) Held() bool { return n.Length != 0 }

func (n Note) String() string {
	return fmt.Sprintf("note{offset=%g lane=%d length=%g swipe=%s}", n.Offset, n.Lane, n.Length, n.Swipe)
}

// Chart groups the notes of one track with its section-start offsets.
type Chart struct {
	Notes    []Note    `json:"notes"`
	Sections []float64 `json:"sections"`
}

// SortNotes orders notes by offset, keeping file order for equal offsets.
func SortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Offset < notes[j].Offset })
}

// SectionSet indexes section offsets for lookup.
type SectionSet map[float64]struct{}

func NewSectionSet(offsets []float64) SectionSet {
	s := make(SectionSet, len(offsets))
	for _, o := range offsets {
		s[o] = struct{}{}
	}
	return s
}

// Has reports whether a note at offset starts a section.
func (s SectionSet) Has(offset float64) bool {
	_, ok := s[offset]
	return ok
}
