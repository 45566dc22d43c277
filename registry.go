package taglog

import (
	"slices"
	"strings"
	"sync"
)

// Force is the reserved tag that is always active after settings are applied
// and can never be deactivated. Messages tagged with it are never suppressed.
const Force = "FORCE"

// Registry owns the set of currently active tags.
//
// The set preserves insertion order and enforces uniqueness. Empty and
// whitespace-only tags are ignored by every operation. Safe for concurrent
// use.
//
// Create instances with [NewRegistry].
type Registry struct {
	tags []string
	mu   sync.Mutex
}

// NewRegistry creates an empty Registry. The [Force] tag is added by the
// first [Registry.Reset], which normally happens when settings are applied.
func NewRegistry() *Registry {
	return &Registry{}
}

// Activate adds tag to the active set, preserving insertion order.
// No-op if tag is blank or already active.
func (r *Registry) Activate(tag string) {
	if isBlank(tag) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.tags, tag) {
		return
	}

	r.tags = append(r.tags, tag)
}

// Deactivate removes tag from the active set.
// No-op if tag is blank, not active, or the [Force] tag.
func (r *Registry) Deactivate(tag string) {
	if isBlank(tag) || tag == Force {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.tags, tag)
	if i < 0 {
		return
	}

	r.tags = slices.Delete(r.tags, i, i+1)
}

// IsActive reports whether tag is currently active.
// Blank tags are never active.
func (r *Registry) IsActive(tag string) bool {
	if isBlank(tag) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Contains(r.tags, tag)
}

// HasAny reports whether at least one of the given tags is active.
func (r *Registry) HasAny(tags []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tag := range tags {
		if slices.Contains(r.tags, tag) {
			return true
		}
	}

	return false
}

// Tags returns the active set in insertion order as a defensive copy.
func (r *Registry) Tags() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.tags)
}

// Len returns the number of active tags.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tags)
}

// Reset replaces the active set wholesale with the settings' default tags,
// then ensures the [Force] tag is present, inserting it at the front if the
// defaults did not include it. Blank and duplicate defaults are skipped.
func (r *Registry) Reset(settings Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tags := make([]string, 0, len(settings.DefaultTags)+1)

	for _, tag := range settings.DefaultTags {
		if isBlank(tag) || slices.Contains(tags, tag) {
			continue
		}

		tags = append(tags, tag)
	}

	if !slices.Contains(tags, Force) {
		tags = slices.Insert(tags, 0, Force)
	}

	r.tags = tags
}

// isBlank reports whether tag is empty or whitespace-only.
func isBlank(tag string) bool {
	return strings.TrimSpace(tag) == ""
}
