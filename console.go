package taglog

import (
	"fmt"
	"io"
	"os"

	charmlog "charm.land/log/v2"
)

// ConsoleSink is an output destination for formatted log text.
//
// WriteErrorLine carries an opaque context value for sinks that integrate
// with editors or other tooling; sinks that have no use for it must ignore
// it.
type ConsoleSink interface {
	WriteLine(text string)
	WriteErrorLine(text string, context any)
}

// ContextWriter is implemented by sinks that can associate an opaque context
// value with a normal (non-error) line. [Logger.FastContext] uses it when
// available and falls back to [ConsoleSink.WriteLine] otherwise.
type ContextWriter interface {
	WriteLineContext(text string, context any)
}

// WriterSink writes lines to a pair of [io.Writer] values, one per channel.
//
// Create instances with [NewWriterSink].
type WriterSink struct {
	out io.Writer
	err io.Writer
}

// NewWriterSink creates a sink writing normal lines to out and error lines
// to errW. The error context is ignored.
func NewWriterSink(out, errW io.Writer) *WriterSink {
	return &WriterSink{out: out, err: errW}
}

// WriteLine writes text plus a newline to the normal writer.
func (s *WriterSink) WriteLine(text string) {
	fmt.Fprintln(s.out, text)
}

// WriteErrorLine writes text plus a newline to the error writer.
func (s *WriterSink) WriteErrorLine(text string, _ any) {
	fmt.Fprintln(s.err, text)
}

// CharmSink writes lines through [charm.land/log/v2] for styled terminal
// output, keeping normal and error lines on separate loggers so error text
// gets the error level treatment.
//
// Create instances with [NewCharmSink].
type CharmSink struct {
	out *charmlog.Logger
	err *charmlog.Logger
}

// NewCharmSink creates a styled sink writing normal lines to out and error
// lines to errW.
func NewCharmSink(out, errW io.Writer) *CharmSink {
	return &CharmSink{
		out: charmlog.New(out),
		err: charmlog.New(errW),
	}
}

// WriteLine prints text on the normal logger.
func (s *CharmSink) WriteLine(text string) {
	s.out.Print(text)
}

// WriteErrorLine prints text at error level. The context is ignored.
func (s *CharmSink) WriteErrorLine(text string, _ any) {
	s.err.Error(text)
}

// defaultSink returns the process stdout/stderr sink used when no
// [WithSink] option is given.
func defaultSink() ConsoleSink {
	return NewWriterSink(os.Stdout, os.Stderr)
}
