// ABOUTME: Plain-text logger on the standard log package
// ABOUTME: Default logger when LOG_FORMAT is not json

package standard

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// StandardLogger writes leveled plain-text lines. Info and below go to
// stdout, errors to stderr.
type StandardLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewStandardLogger creates a plain-text logger.
func NewStandardLogger() *StandardLogger {
	return &StandardLogger{
		out: log.New(os.Stdout, "", log.LstdFlags),
		err: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.out.Println(format("DEBUG", msg, fields))
}

func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.out.Println(format("INFO", msg, fields))
}

func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.out.Println(format("WARN", msg, fields))
}

func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.err.Println(format("ERROR", msg, fields))
}

// format renders one line as "[LEVEL] msg key=value ..." with fields in
// sorted order so output is stable.
func format(level, msg string, fields map[string]interface{}) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
