package taglog

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler routes [log/slog] records through a [Logger].
//
// Records at [slog.LevelError] and above take the unfiltered error path;
// everything else goes through [Logger.Log] under the handler's tags.
// Attributes are rendered logfmt-style after the message, with group names
// joined by dots.
//
// Create instances with [NewSlogHandler]:
//
//	logger := slog.New(taglog.NewSlogHandler(tl, "NET"))
//	logger.Info("connected", slog.String("host", host))
type SlogHandler struct {
	logger *Logger
	tags   []string
	attrs  []slog.Attr
	groups []string
}

// NewSlogHandler creates a handler emitting through logger under the given
// tags. With no tags every non-error record passes the gate.
func NewSlogHandler(logger *Logger, tags ...string) *SlogHandler {
	return &SlogHandler{
		logger: logger,
		tags:   tags,
	}
}

// Enabled reports whether a record at the given level would be emitted:
// error records always, others only when the handler's tags pass the gate
// and development logging is compiled in.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level >= slog.LevelError {
		return true
	}

	if !devEnabled {
		return false
	}

	if len(h.tags) == 0 {
		return true
	}

	return h.logger.AnyTagActive(h.tags...)
}

// Handle formats the record and emits it through the underlying Logger.
func (h *SlogHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder

	sb.WriteString(rec.Message)

	// Preformatted attrs carry pre-qualified keys.
	for _, attr := range h.attrs {
		writeAttr(&sb, nil, attr)
	}

	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, h.groups, attr)
		return true
	})

	if rec.Level >= slog.LevelError {
		h.logger.Error(sb.String(), h.tags...)
	} else {
		h.logger.Log(sb.String(), h.tags...)
	}

	return nil
}

// WithAttrs returns a handler whose records carry the additional attrs.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	next := h.clone()

	for _, attr := range attrs {
		next.attrs = append(next.attrs, slog.Attr{
			Key:   qualifyKey(h.groups, attr.Key),
			Value: attr.Value,
		})
	}

	return next
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := h.clone()
	next.groups = append(next.groups, name)

	return next
}

func (h *SlogHandler) clone() *SlogHandler {
	return &SlogHandler{
		logger: h.logger,
		tags:   h.tags,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

// writeAttr appends " key=value" to sb, prefixing key with the group path.
func writeAttr(sb *strings.Builder, groups []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(qualifyKey(groups, attr.Key))
	sb.WriteByte('=')
	sb.WriteString(attr.Value.String())
}

// qualifyKey prefixes key with the group path, joined by dots.
func qualifyKey(groups []string, key string) string {
	if len(groups) == 0 {
		return key
	}

	return strings.Join(groups, ".") + "." + key
}
