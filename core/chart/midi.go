package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ingyamilmolinar/lanechart/core/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIOptions controls how a Standard MIDI File becomes a chart.
type MIDIOptions struct {
	BaseKey       uint8   // key mapped to lane 0; BaseKey+1 and +2 are lanes 1 and 2
	HoldThreshold float64 // notes shorter than this many quarter notes are taps
}

func DefaultMIDIOptions() MIDIOptions {
	return MIDIOptions{BaseKey: 60, HoldThreshold: 0.5}
}

type pendingNote struct {
	tick uint64
	lane int
}

// ParseMIDI imports a chart from SMF data. Offsets are measured in quarter
// notes; marker meta events become sections.
func (l *Loader) ParseMIDI(data []byte) (c model.Chart, err error) {
	// smf can panic on truncated files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("midi: %v", r)
		}
	}()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return model.Chart{}, err
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return model.Chart{}, errors.New("midi: only metric time formats are supported")
	}
	resolution := float64(ticks)
	opts := l.MIDI

	for ti, track := range s.Tracks {
		var abs uint64
		open := map[uint8]pendingNote{}
		for _, ev := range track {
			abs += uint64(ev.Delta)
			var channel, key, velocity uint8
			var text string
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				lane := int(key) - int(opts.BaseKey)
				if lane < 0 || lane >= model.Lanes {
					l.logger.Warnf("Skipping track %d key %d at tick %d: no lane", ti, key, abs)
					continue
				}
				open[key] = pendingNote{tick: abs, lane: lane}
			case ev.Message.GetNoteOff(&channel, &key, &velocity),
				ev.Message.GetNoteOn(&channel, &key, &velocity):
				p, ok := open[key]
				if !ok {
					continue
				}
				delete(open, key)
				length := float64(abs-p.tick) / resolution
				if length < opts.HoldThreshold {
					length = 0
				}
				c.Notes = append(c.Notes, model.Note{
					Offset: float64(p.tick) / resolution,
					Lane:   p.lane,
					Length: length,
				})
			case ev.Message.GetMetaMarker(&text):
				c.Sections = append(c.Sections, float64(abs)/resolution)
				l.logger.Debugf("Section %q at tick %d", text, abs)
			}
		}
		for key, p := range open {
			l.logger.Warnf("Skipping track %d key %d at tick %d: never released", ti, key, p.tick)
		}
	}
	model.SortNotes(c.Notes)
	return c, nil
}
