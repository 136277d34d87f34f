// Package chart reads track charts from disk into model.Chart values.
//
// Loaders are lossy by design of the file formats they accept: an entry that
// cannot be turned into a note is logged and skipped, and the rest of the
// chart still loads.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ingyamilmolinar/lanechart/core/model"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
)

var ErrUnknownFormat = errors.New("unknown chart format")

// Loader turns chart files into charts.
type Loader struct {
	logger *game_log.Logger
	MIDI   MIDIOptions
}

func NewLoader(logger *game_log.Logger) *Loader {
	return &Loader{logger: logger.With("CHART"), MIDI: DefaultMIDIOptions()}
}

// Load picks a parser by file extension.
func (l *Loader) Load(path string) (model.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Chart{}, fmt.Errorf("read chart %s: %w", path, err)
	}
	var c model.Chart
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".chart", ".json":
		c, err = l.ParseJSON(data)
	case ".mid", ".midi":
		c, err = l.ParseMIDI(data)
	default:
		return model.Chart{}, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return model.Chart{}, fmt.Errorf("parse chart %s: %w", path, err)
	}
	l.logger.Infof("Loaded %s: %d notes, %d sections", path, len(c.Notes), len(c.Sections))
	return c, nil
}
