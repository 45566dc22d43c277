package taglog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// timestampLayout renders 24-hour local wall-clock time, no date, no zone.
const timestampLayout = "(15:04:05) "

// Logger is the tag-gated logging facade.
//
// It combines tag filtering via a [Registry], message decoration (tag
// header, timestamp), and routing to a [History] transcript, a
// [ConsoleSink], an optional [Publisher] stream, and a [Hub] of listeners,
// in that order. Messages carrying at least one tag are emitted only when
// one of their tags is active; untagged messages always pass. The error
// path skips the gate entirely.
//
// All state is owned by the Logger instance; create one per test or share
// one per process. Safe for concurrent use.
//
// Create instances with [New].
type Logger struct {
	reg  *Registry
	hist *History
	hub  *Hub
	sink ConsoleSink
	pub  *Publisher
	now  func() time.Time

	mu        sync.Mutex
	console   bool
	history   bool
	tagHeader bool
	timestamp bool
}

// Option configures a [Logger].
type Option func(*Logger)

// WithSink sets the console sink. The default writes to the process stdout
// and stderr.
func WithSink(sink ConsoleSink) Option {
	return func(l *Logger) {
		l.sink = sink
	}
}

// WithSettings applies a settings snapshot during construction, installing
// its default tags and sink flags.
func WithSettings(s Settings) Option {
	return func(l *Logger) {
		l.Apply(s)
	}
}

// WithHub sets the notification hub, allowing several loggers to share one
// listener population.
func WithHub(hub *Hub) Option {
	return func(l *Logger) {
		l.hub = hub
	}
}

// WithPublisher attaches a [Publisher] that receives every emitted line.
func WithPublisher(p *Publisher) Option {
	return func(l *Logger) {
		l.pub = p
	}
}

// WithClock overrides the wall-clock source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger with the given options.
//
// Without [WithSettings] the registry starts empty and the flags take the
// [DefaultSettings] values; call [Logger.Init] or [Logger.Apply] to install
// an active tag set.
func New(opts ...Option) *Logger {
	l := &Logger{
		reg:       NewRegistry(),
		hist:      NewHistory(),
		hub:       NewHub(),
		sink:      defaultSink(),
		now:       time.Now,
		console:   true,
		history:   true,
		tagHeader: true,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Apply installs a settings snapshot: the four sink and decoration flags
// are copied and the active tag set is replaced wholesale with the
// snapshot's default tags plus [Force]. Callable repeatedly; each call
// fully replaces prior tag state.
func (l *Logger) Apply(s Settings) {
	l.mu.Lock()
	l.console = s.Console
	l.history = s.History
	l.tagHeader = s.TagHeader
	l.timestamp = s.Timestamp
	l.mu.Unlock()

	l.reg.Reset(s)
}

// Init loads settings from p and applies them, unless the registry already
// holds entries, in which case it is a no-op. This guards environments that
// re-invoke a startup hook without a true process restart.
func (l *Logger) Init(p Provider) error {
	if l.reg.Len() > 0 {
		return nil
	}

	s, err := p.CurrentSettings()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	l.Apply(s)

	return nil
}

// Log emits message if it carries no tags or at least one active tag.
// Suppressed messages produce no sink writes, no history entry, and no
// event. Compiled to a no-op under the taglog_off build tag.
func (l *Logger) Log(message string, tags ...string) {
	if !devEnabled {
		return
	}

	console, history, tagHeader, timestamp := l.flags()

	if len(tags) > 0 {
		if !l.reg.HasAny(tags) {
			return
		}

		if tagHeader {
			message = "[" + strings.Join(tags, ",") + "] " + message
		}
	}

	if timestamp {
		message = l.now().Format(timestampLayout) + message
	}

	if history {
		l.hist.Append(message)
	}

	if console {
		l.sink.WriteLine(message)
	}

	l.publish(message)
	l.hub.fireLogged(message)
}

// LogValue formats value via its default textual representation and emits
// it as [Logger.Log] does, under the same tag gate. Compiled to a no-op
// under the taglog_off build tag.
func (l *Logger) LogValue(value any, tags ...string) {
	l.Log(fmt.Sprint(value), tags...)
}

// Error emits message on the error channel. Errors are never filtered: the
// tag gate is skipped and the error sink is written regardless of the
// console flag. The same decoration rules as [Logger.Log] apply, history is
// written if enabled, and onErrorLogged listeners fire instead of onLogged.
func (l *Logger) Error(message string, tags ...string) {
	_, history, tagHeader, timestamp := l.flags()

	if len(tags) > 0 && tagHeader {
		message = "[" + strings.Join(tags, ",") + "] " + message
	}

	if timestamp {
		message = l.now().Format(timestampLayout) + message
	}

	if history {
		l.hist.Append(message)
	}

	l.sink.WriteErrorLine(message, nil)

	l.publish(message)
	l.hub.fireErrorLogged(message)
}

// Fast emits message bypassing all filtering and formatting: no tag gate,
// no header, no timestamp, and both sinks are written unconditionally.
// Compiled to a no-op under the taglog_off build tag.
func (l *Logger) Fast(message string) {
	if !devEnabled {
		return
	}

	l.hist.Append(message)
	l.sink.WriteLine(message)

	l.publish(message)
	l.hub.fireLogged(message)
}

// FastContext is [Logger.Fast] with an opaque context value forwarded to
// sinks implementing [ContextWriter]; other sinks receive a plain line.
// Compiled to a no-op under the taglog_off build tag.
func (l *Logger) FastContext(message string, context any) {
	if !devEnabled {
		return
	}

	l.hist.Append(message)

	if cw, ok := l.sink.(ContextWriter); ok {
		cw.WriteLineContext(message, context)
	} else {
		l.sink.WriteLine(message)
	}

	l.publish(message)
	l.hub.fireLogged(message)
}

// Show emits a diagnostic dump of positional values as one composite line:
// "[i: null]" for nil values, "[i: <type> - <value>]" otherwise, with no
// separators. The line is appended to history without a terminator, written
// to the console, and fires onLogged. No tag filtering or decoration
// applies. Compiled to a no-op under the taglog_off build tag.
func (l *Logger) Show(values ...any) {
	if !devEnabled {
		return
	}

	var sb strings.Builder

	for i, v := range values {
		if v == nil {
			fmt.Fprintf(&sb, "[%d: null]", i)
			continue
		}

		fmt.Fprintf(&sb, "[%d: %T - %v]", i, v, v)
	}

	line := sb.String()

	l.hist.AppendRaw(line)
	l.sink.WriteLine(line)

	l.publish(line)
	l.hub.fireLogged(line)
}

// ActivateTag adds tag to the active set. Blank tags are ignored.
// Compiled to a no-op under the taglog_off build tag.
func (l *Logger) ActivateTag(tag string) {
	if !devEnabled {
		return
	}

	l.reg.Activate(tag)
}

// DeactivateTag removes tag from the active set. Blank tags and [Force]
// are ignored. Compiled to a no-op under the taglog_off build tag.
func (l *Logger) DeactivateTag(tag string) {
	if !devEnabled {
		return
	}

	l.reg.Deactivate(tag)
}

// TagActive reports whether tag is currently active.
func (l *Logger) TagActive(tag string) bool {
	return l.reg.IsActive(tag)
}

// AnyTagActive reports whether at least one of the given tags is active.
func (l *Logger) AnyTagActive(tags ...string) bool {
	return l.reg.HasAny(tags)
}

// ActiveTags returns the active tag set in insertion order.
func (l *Logger) ActiveTags() []string {
	return l.reg.Tags()
}

// HistoryContents returns the full accumulated transcript.
func (l *Logger) HistoryContents() string {
	return l.hist.String()
}

// ClearHistory resets the transcript to empty.
func (l *Logger) ClearHistory() {
	l.hist.Clear()
}

// OnLogged registers fn to run after every normal emission, returning a
// subscription id for [Logger.Unsubscribe].
func (l *Logger) OnLogged(fn Listener) string {
	return l.hub.OnLogged(fn)
}

// OnErrorLogged registers fn to run after every error emission, returning a
// subscription id for [Logger.Unsubscribe].
func (l *Logger) OnErrorLogged(fn Listener) string {
	return l.hub.OnErrorLogged(fn)
}

// Unsubscribe removes the listener registered under id.
func (l *Logger) Unsubscribe(id string) {
	l.hub.Unsubscribe(id)
}

// flags returns a consistent snapshot of the four sink and decoration
// flags.
func (l *Logger) flags() (console, history, tagHeader, timestamp bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.console, l.history, l.tagHeader, l.timestamp
}

// publish forwards line to the attached publisher, if any.
func (l *Logger) publish(line string) {
	if l.pub != nil {
		l.pub.Publish(line)
	}
}
