package taglog_test

import (
	"io"
	"sync"

	"go.jacobcolvin.com/taglog"
)

// discard returns a writer for sink output the test does not inspect.
func discard() io.Writer {
	return io.Discard
}

// recordSink captures console writes for assertions.
type recordSink struct {
	lines    []string
	errLines []string
	contexts []any
	mu       sync.Mutex
}

func (s *recordSink) WriteLine(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, text)
}

func (s *recordSink) WriteErrorLine(text string, context any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errLines = append(s.errLines, text)
	s.contexts = append(s.contexts, context)
}

func (s *recordSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.lines...)
}

func (s *recordSink) ErrLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.errLines...)
}

// contextSink additionally records contexts passed to WriteLineContext.
type contextSink struct {
	recordSink

	lineContexts []any
}

func (s *contextSink) WriteLineContext(text string, context any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, text)
	s.lineContexts = append(s.lineContexts, context)
}

// newTestLogger builds a logger writing to a fresh recordSink under the
// given settings.
func newTestLogger(s taglog.Settings) (*taglog.Logger, *recordSink) {
	sink := &recordSink{}
	logger := taglog.New(
		taglog.WithSink(sink),
		taglog.WithSettings(s),
	)

	return logger, sink
}

// allOn is the common test configuration: both sinks and the tag header
// enabled, timestamps off.
func allOn(tags ...string) taglog.Settings {
	return taglog.Settings{
		Console:     true,
		History:     true,
		TagHeader:   true,
		DefaultTags: tags,
	}
}
