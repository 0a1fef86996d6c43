package textnorm

import (
	"fmt"
	"io"
	"sync"
)

// Seen is a caller-owned, concurrency-safe set that remembers items in
// first-sighting order and optionally writes each new item to a writer.
// One Seen may be shared by several Normalizers.
type Seen struct {
	mu     sync.Mutex
	set    map[string]struct{}
	order  []string
	w      io.Writer
	format func(item string) string
	err    error
}

// NewSeen returns a Seen that writes each new item on its own line.
// w may be nil.
func NewSeen(w io.Writer) *Seen {
	return &Seen{
		set:    make(map[string]struct{}),
		w:      w,
		format: func(item string) string { return item + "\n" },
	}
}

// NewCharSeen returns a Seen for single characters. Each new character is
// written as its zero-padded code point followed by the character.
func NewCharSeen(w io.Writer) *Seen {
	s := NewSeen(w)
	s.format = func(item string) string {
		r := []rune(item)
		if len(r) == 0 {
			return "\n"
		}
		return fmt.Sprintf("%06d %c\n", r[0], r[0])
	}
	return s
}

// Add records item and reports whether it was new.
func (s *Seen) Add(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.set[item]; ok {
		return false
	}
	s.set[item] = struct{}{}
	s.order = append(s.order, item)
	if s.w != nil && s.err == nil {
		_, s.err = io.WriteString(s.w, s.format(item))
	}
	return true
}

// Items returns a copy of the recorded items in first-sighting order.
func (s *Seen) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Len returns the number of distinct items recorded.
func (s *Seen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Err returns the first error met while writing, if any.
func (s *Seen) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
