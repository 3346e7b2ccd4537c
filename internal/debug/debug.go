// Package debug provides structured logging for termmenu.
// Enable debug output by setting TERMMENU_DEBUG to any non-empty value.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// EnvVar enables debug logging when set.
const EnvVar = "TERMMENU_DEBUG"

// Logger writes logfmt lines to out when enabled.
type Logger struct {
	out     io.Writer
	enabled bool
	now     func() time.Time
}

var instance *Logger

// Init configures the global logger from the environment, writing to stderr.
func Init() {
	Configure(os.Stderr, os.Getenv(EnvVar) != "")
}

// Configure replaces the global logger.
func Configure(out io.Writer, enabled bool) {
	instance = &Logger{
		out:     out,
		enabled: enabled,
		now:     time.Now,
	}
}

// IsEnabled returns true if debug logging is enabled.
func IsEnabled() bool {
	return instance != nil && instance.enabled
}

// Log writes a structured log message in logfmt format.
// Example: ts=2024-01-10T15:04:05Z level=debug fn=Menu.Run selected_index=2 label="Say bye"
func Log(fn string, fields ...any) {
	if !IsEnabled() {
		return
	}

	var b strings.Builder
	b.WriteString("ts=")
	b.WriteString(instance.now().UTC().Format(time.RFC3339))
	b.WriteString(" level=debug fn=")
	b.WriteString(fn)

	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(formatValue(fields[i+1]))
	}

	b.WriteString("\n")
	fmt.Fprint(instance.out, b.String())
}

// Error logs an error with context.
func Error(fn string, err error, fields ...any) {
	if !IsEnabled() || err == nil {
		return
	}

	allFields := append([]any{"error", err.Error()}, fields...)
	Log(fn, allFields...)
}

func formatValue(v any) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case error:
		s = val.Error()
	case fmt.Stringer:
		s = val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
	if s == "" || strings.ContainsAny(s, " \t\r\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
