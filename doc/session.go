package doc

import (
	"sync"

	"go.uber.org/zap"

	"docwright/css"
	"docwright/label"
	"docwright/style"
)

// session is shared by all nodes of a document and is handed to every node
// constructor explicitly.
type session struct {
	labels   *label.Manager
	styles   *style.Set
	css      *css.Parser
	renderer Renderer
	log      *zap.Logger
	strict   bool

	// serializes renderer calls
	emitMu sync.Mutex

	mu        sync.Mutex
	serial    int
	citations map[string]int
	cited     []string
	entries   map[string]bool
}

func (s *session) emit(fn func(r Renderer) error) error {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	return fn(s.renderer)
}

func (s *session) nextSerial() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serial++
	return s.serial
}

// citation returns number of citation key, numbers are given in order of
// first use.
func (s *session) citation(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.citationLocked(key)
}

func (s *session) citationLocked(key string) int {
	if n, ok := s.citations[key]; ok {
		return n
	}
	s.cited = append(s.cited, key)
	s.citations[key] = len(s.cited)
	return len(s.cited)
}

// entry registers bibliography entry and returns its number.
func (s *session) entry(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[key] {
		return 0, false
	}
	s.entries[key] = true
	return s.citationLocked(key), true
}

// dangling returns cited keys without bibliography entry in citation order.
func (s *session) dangling() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for _, k := range s.cited {
		if !s.entries[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
