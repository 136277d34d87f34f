package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. Unknown names map
// to LevelInfo so a typo on the command line doesn't flood the terminal.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes levelled lines. Tagged copies share the output and level of
// their parent, so SetLevel on the root affects every component.
type Logger struct {
	logger *log.Logger
	level  *Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	lvl := level
	return &Logger{
		logger: log.New(out, "", 0), // No prefix, handled by format string
		level:  &lvl,
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// With returns a logger that prefixes every message with [tag].
func (l *Logger) With(tag string) *Logger {
	return &Logger{logger: l.logger, level: l.level, tag: "[" + tag + "] "}
}

func (l *Logger) printf(lvl Level, format string, v ...interface{}) {
	if *l.level > lvl {
		return
	}
	l.logger.Printf(lvl.String()+": "+l.tag+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	*l.level = level
}

func (l *Logger) Level() Level {
	return *l.level
}
