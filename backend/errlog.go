package backend

import (
	"fmt"
	"strings"
)

// ErrorLog is an append-only list of human-readable diagnostics.  It is not
// synchronized: each translator owns its own log.
type ErrorLog struct {
	entries []string
}

// Register appends a formatted entry to the log.
func (el *ErrorLog) Register(format string, args ...interface{}) {
	el.entries = append(el.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the entries of the log in the order they were
// registered.
func (el *ErrorLog) Entries() []string {
	entries := make([]string, len(el.entries))
	copy(entries, el.entries)
	return entries
}

// Len returns the number of entries in the log.
func (el *ErrorLog) Len() int {
	return len(el.entries)
}

func (el *ErrorLog) String() string {
	return strings.Join(el.entries, "\n")
}
