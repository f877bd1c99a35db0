// pkg/memcache/fixed_window.go
package mem

import (
	"sync"
	"time"
)

type WindowStore interface {
	// Hit records one request for key and reports whether the key is still
	// within its allowance for the current window.
	Hit(key string, limit int, window time.Duration) bool
}

type windowEntry struct {
	count    int
	resetsAt time.Time
}

// FixedWindows counts hits per key in fixed windows. Expired windows are
// replaced lazily on the next hit.
type FixedWindows struct {
	mu   sync.Mutex
	data map[string]windowEntry
}

func NewFixedWindows() *FixedWindows {
	return &FixedWindows{
		data: make(map[string]windowEntry),
	}
}

func (s *FixedWindows) Hit(key string, limit int, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.data[key]
	if !ok || now.After(e.resetsAt) {
		s.data[key] = windowEntry{count: 1, resetsAt: now.Add(window)}
		return limit >= 1
	}

	e.count++
	s.data[key] = e
	return e.count <= limit
}
