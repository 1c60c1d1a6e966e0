// Package log provides structured logging for edi.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and is only enabled by EDI_DEBUG. The terminal is owned by the editor, so
// nothing is ever written to stdout or stderr.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
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
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "warn" into a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("unknown log level %q", name)
	}
}

// Category groups related log messages.
type Category string

const (
	CatTerm   Category = "term"   // Raw mode, window size, terminal I/O
	CatInput  Category = "input"  // Key decoding
	CatEdit   Category = "edit"   // Editing session and key dispatch
	CatFile   Category = "file"   // Load and save
	CatConfig Category = "config" // Configuration loading
	CatRender Category = "render" // Frame composition
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel Level
}

var defaultLogger *Logger

// InitWithTeaLog uses tea.LogToFile for initialization.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}

	defaultLogger = &Logger{
		writer:   f,
		minLevel: LevelDebug,
	}

	return func() { _ = f.Close() }, nil
}

// InitWriter routes log output to w. It is used by tests.
func InitWriter(w io.Writer) {
	defaultLogger = &Logger{
		writer:   w,
		minLevel: LevelDebug,
	}
}

// Reset discards the global logger.
func Reset() {
	defaultLogger = nil
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if level < defaultLogger.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [ERROR] [file] message key=value key2=value2
	var entry strings.Builder
	entry.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&entry, " [%s] [%s] %s", level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&entry, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&entry, " %v=<missing>", fields[len(fields)-1])
	}
	entry.WriteByte('\n')

	if defaultLogger.writer != nil {
		_, _ = io.WriteString(defaultLogger.writer, entry.String())
	}
}
