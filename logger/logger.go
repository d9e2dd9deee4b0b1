// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a ring-buffered, tagged logger. Log entries
// are kept in memory and can be written out, tailed, or cleared on
// demand; nothing is written to a file or to stdout automatically.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Permission is consulted before an entry is actually appended to the
// log. Implementations typically wrap a user preference.
type Permission interface {
	AllowLogging() bool
}

// Allow is a Permission that always allows logging.
var Allow = allowPermission{}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

type entry struct {
	tag    string
	detail string
}

// Logger is a fixed-capacity ring of log entries.
type Logger struct {
	entries []entry
	start   int
	len     int
}

// NewLogger creates a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	if capacity <= 0 {
		capacity = 1
	}
	return &Logger{entries: make([]entry, capacity)}
}

func detailString(v interface{}) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Log appends a new entry if permission allows it.
func (l *Logger) Log(permission Permission, tag string, detail interface{}) {
	if permission == nil || !permission.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf appends a new formatted entry if permission allows it.
func (l *Logger) Logf(permission Permission, tag string, format string, args ...interface{}) {
	if permission == nil || !permission.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag string, detail string) {
	cap := len(l.entries)
	pos := (l.start + l.len) % cap
	if l.len < cap {
		l.len++
	} else {
		l.start = (l.start + 1) % cap
	}
	l.entries[pos] = entry{tag: tag, detail: detail}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.start = 0
	l.len = 0
}

// Write writes every retained entry to w, one "tag: detail" line each.
func (l *Logger) Write(w io.Writer) {
	l.Tail(w, l.len)
}

// Tail writes the most recent n entries (or fewer, if fewer are
// retained) to w.
func (l *Logger) Tail(w io.Writer, n int) {
	if n > l.len {
		n = l.len
	}
	if n <= 0 {
		return
	}

	var b strings.Builder
	skip := l.len - n
	for i := 0; i < n; i++ {
		e := l.entries[(l.start+skip+i)%len(l.entries)]
		b.WriteString(e.tag)
		b.WriteString(": ")
		b.WriteString(e.detail)
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

// central is the package-level logger instance used by the convenience
// functions below, mirroring how most of this module's packages log
// without having to thread a *Logger through every call site.
var central = NewLogger(1000)

// Log appends to the central logger. Permission is always granted.
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf appends a formatted entry to the central logger.
func Logf(tag string, format string, args ...interface{}) {
	central.Logf(Allow, tag, format, args...)
}

// Central returns the package-level logger instance.
func Central() *Logger {
	return central
}
