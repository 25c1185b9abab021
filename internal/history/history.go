// Package history keeps a short, most-recent-first list of masked passwords
// a user has checked or generated. Plaintext is never stored.
package history

import (
	"strings"
	"time"
)

const (
	// DefaultCapacity is the number of entries kept per user.
	DefaultCapacity = 5

	maskPrefix = "••••••••"
	maskSuffix = 4
)

// Kind records how a password entered the history.
type Kind string

const (
	KindChecked   Kind = "checked"
	KindGenerated Kind = "generated"
)

// Entry is one masked history item.
type Entry struct {
	Masked    string    `json:"masked"`
	Kind      Kind      `json:"kind"`
	Strength  string    `json:"strength,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry masks password and stamps the entry with the current time.
func NewEntry(password string, kind Kind, strength string) Entry {
	return Entry{
		Masked:    Mask(password),
		Kind:      kind,
		Strength:  strength,
		CreatedAt: time.Now().UTC(),
	}
}

// Mask hides all but the last four characters of password.
func Mask(password string) string {
	r := []rune(password)
	if len(r) > maskSuffix {
		r = r[len(r)-maskSuffix:]
	}
	var b strings.Builder
	b.WriteString(maskPrefix)
	b.WriteString(string(r))
	return b.String()
}

// List is a bounded queue, newest first. The zero value is unusable; use NewList.
// A List is owned by a single caller and is not safe for concurrent use.
type List struct {
	entries  []Entry
	capacity int
}

// NewList returns an empty list holding at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func NewList(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{entries: make([]Entry, 0, capacity), capacity: capacity}
}

// Push inserts e at the front, dropping the oldest entry when full.
func (l *List) Push(e Entry) {
	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, Entry{})
	}
	copy(l.entries[1:], l.entries[:len(l.entries)-1])
	l.entries[0] = e
}

// Entries returns a copy of the entries, newest first.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *List) Len() int { return len(l.entries) }

func (l *List) Cap() int { return l.capacity }
