package diag

import (
	"log"
	"strings"
)

// Logger is the diagnostic sink injected into the simulation packages.
// The stepper and flux model report non-fatal model-validity notices
// through it (they never fail the step).
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// NoOp discards everything. Useful default for library callers and tests.
type NoOp struct{}

func (NoOp) Debugf(format string, v ...any) {}
func (NoOp) Infof(format string, v ...any)  {}
func (NoOp) Warnf(format string, v ...any)  {}
func (NoOp) Errorf(format string, v ...any) {}

// NewNoOp creates a logger that does nothing.
func NewNoOp() Logger {
	return NoOp{}
}

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string log level (case-insensitive), defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Standard is a leveled logger on top of the standard log package.
type Standard struct {
	level Level
}

// New creates a leveled logger filtering below the named level.
func New(level string) *Standard {
	return &Standard{level: ParseLevel(level)}
}

func (l *Standard) shouldLog(level Level) bool {
	return level >= l.level
}

func (l *Standard) Debugf(format string, v ...any) {
	if l.shouldLog(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func (l *Standard) Infof(format string, v ...any) {
	if l.shouldLog(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *Standard) Warnf(format string, v ...any) {
	if l.shouldLog(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

func (l *Standard) Errorf(format string, v ...any) {
	if l.shouldLog(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}
