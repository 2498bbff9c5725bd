// Package sink provides append-only character stream used by streaming
// output drivers.
//
// Besides plain text Buffer accepts deferred segments - functions evaluated
// only when buffer is flushed. Drivers use them for cross references whose
// final text is not known until the referenced element is constructed.
package sink

import (
	"io"
	"strings"
	"sync"
)

type segment struct {
	text     string
	deferred func() string
}

// Buffer accumulates output segments. It is safe for concurrent use, but
// segments are kept in call order so callers are responsible for not
// interleaving unrelated output.
type Buffer struct {
	mu       sync.Mutex
	segments []segment
	pending  strings.Builder
	flushed  bool
}

// New returns empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// WriteString appends literal text. It never fails, signature matches
// io.StringWriter so buffer could be used with fmt.Fprint* family.
func (b *Buffer) WriteString(s string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending.WriteString(s)
	return len(s), nil
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// WriteDeferred appends segment which text is produced by fn at flush time.
func (b *Buffer) WriteDeferred(fn func() string) {
	if fn == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.cut()
	b.segments = append(b.segments, segment{deferred: fn})
}

// cut moves accumulated literal text into segment list. Must be called with
// lock held.
func (b *Buffer) cut() {
	if b.pending.Len() == 0 {
		return
	}
	b.segments = append(b.segments, segment{text: b.pending.String()})
	b.pending.Reset()
}

// Len returns number of segments collected so far (literal runs are counted
// as single segment).
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.segments)
	if b.pending.Len() > 0 {
		n++
	}
	return n
}

// String resolves all segments and returns resulting text. Buffer is not
// modified.
func (b *Buffer) String() string {
	var sb strings.Builder
	_, _ = b.render(&sb)
	return sb.String()
}

// WriteTo resolves deferred segments and writes everything to w. After the
// first call buffer is marked as flushed, subsequent writes still go through
// but Flushed reports true.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := b.render(w)

	b.mu.Lock()
	b.flushed = true
	b.mu.Unlock()
	return n, err
}

// Flushed reports whether WriteTo has been called.
func (b *Buffer) Flushed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

func (b *Buffer) render(w io.Writer) (int64, error) {
	b.mu.Lock()
	b.cut()
	segments := make([]segment, len(b.segments))
	copy(segments, b.segments)
	b.mu.Unlock()

	// deferred functions may take their own locks, never call them under ours
	var total int64
	for _, s := range segments {
		text := s.text
		if s.deferred != nil {
			text = s.deferred()
		}
		n, err := io.WriteString(w, text)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
