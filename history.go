package taglog

import (
	"strings"
	"sync"
)

// History is an append-only transcript of every emitted log line.
//
// Entries are concatenated as text in emission order. There is no maximum
// size; callers that need bounds must call [History.Clear] periodically.
// Safe for concurrent use.
//
// Create instances with [NewHistory].
type History struct {
	buf strings.Builder
	mu  sync.Mutex
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Append appends line followed by a newline.
func (h *History) Append(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.WriteString(line)
	h.buf.WriteByte('\n')
}

// AppendRaw appends text with no line terminator.
func (h *History) AppendRaw(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.WriteString(text)
}

// Clear resets the transcript to empty.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
}

// String returns the full accumulated text.
func (h *History) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.buf.String()
}

// Len returns the accumulated text length in bytes.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.buf.Len()
}
