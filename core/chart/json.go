package chart

import (
	"encoding/json"
	"fmt"

	"github.com/ingyamilmolinar/lanechart/core/model"
)

/* ─── on-disk shapes ─── */

type fileNote struct {
	Offset *float64 `json:"offset"`
	Lane   *int     `json:"lane"`
}

type singleEntry struct {
	Note  *fileNote `json:"note"`
	Swipe int       `json:"swipe"`
	Size  int       `json:"size"`
}

type longEntry struct {
	Note  []fileNote `json:"note"`
	Swipe int        `json:"swipe"`
}

type fileEntry struct {
	Single *singleEntry `json:"single"`
	Long   *longEntry   `json:"long"`
}

type fileSection struct {
	Offset *float64 `json:"offset"`
}

type fileChart struct {
	Notes    []json.RawMessage `json:"notes"`
	Sections []json.RawMessage `json:"sections"`
}

// ParseJSON decodes the .chart JSON layout. Lanes are 1-based in the file.
func (l *Loader) ParseJSON(data []byte) (model.Chart, error) {
	var fc fileChart
	if err := json.Unmarshal(data, &fc); err != nil {
		return model.Chart{}, err
	}

	c := model.Chart{Notes: make([]model.Note, 0, len(fc.Notes))}
	for i, raw := range fc.Notes {
		n, err := decodeEntry(raw)
		if err != nil {
			l.logger.Warnf("Skipping note %d: %v (%s)", i, err, raw)
			continue
		}
		c.Notes = append(c.Notes, n)
	}
	for i, raw := range fc.Sections {
		var s fileSection
		if err := json.Unmarshal(raw, &s); err != nil || s.Offset == nil {
			l.logger.Warnf("Skipping section %d: %s", i, raw)
			continue
		}
		c.Sections = append(c.Sections, *s.Offset)
	}
	model.SortNotes(c.Notes)
	l.logger.Debugf("Parsed %d/%d notes", len(c.Notes), len(fc.Notes))
	return c, nil
}

func decodeEntry(raw json.RawMessage) (model.Note, error) {
	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.Note{}, err
	}
	switch {
	case e.Single != nil:
		if e.Single.Note == nil {
			return model.Note{}, fmt.Errorf("single without note")
		}
		offset, lane, err := position(*e.Single.Note)
		if err != nil {
			return model.Note{}, err
		}
		swipe, err := swipeOf(e.Single.Swipe)
		if err != nil {
			return model.Note{}, err
		}
		return model.Note{Offset: offset, Lane: lane, Swipe: swipe, Size: e.Single.Size}, nil
	case e.Long != nil:
		if len(e.Long.Note) < 2 {
			return model.Note{}, fmt.Errorf("long with %d points", len(e.Long.Note))
		}
		offset, lane, err := position(e.Long.Note[0])
		if err != nil {
			return model.Note{}, err
		}
		end, _, err := position(e.Long.Note[1])
		if err != nil {
			return model.Note{}, fmt.Errorf("long end: %w", err)
		}
		if end < offset {
			return model.Note{}, fmt.Errorf("long ends at %g before it starts at %g", end, offset)
		}
		swipe, err := swipeOf(e.Long.Swipe)
		if err != nil {
			return model.Note{}, err
		}
		return model.Note{Offset: offset, Lane: lane, Length: end - offset, Swipe: swipe}, nil
	default:
		return model.Note{}, fmt.Errorf("neither single nor long")
	}
}

func position(n fileNote) (offset float64, lane int, err error) {
	if n.Offset == nil {
		return 0, 0, fmt.Errorf("missing offset")
	}
	if n.Lane == nil {
		return 0, 0, fmt.Errorf("missing lane")
	}
	lane = *n.Lane - 1
	if lane < 0 || lane >= model.Lanes {
		return 0, 0, fmt.Errorf("lane %d out of range 1..%d", *n.Lane, model.Lanes)
	}
	return *n.Offset, lane, nil
}

func swipeOf(v int) (model.Swipe, error) {
	s := model.Swipe(v)
	if !s.Valid() {
		return model.SwipeNone, fmt.Errorf("swipe %d out of range", v)
	}
	return s, nil
}
