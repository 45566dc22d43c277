package taglog

import (
	"sync"

	"github.com/google/uuid"
)

// Listener receives the final formatted text of an emitted message.
type Listener func(text string)

// listener pairs a registered [Listener] with its subscription id.
type listener struct {
	fn Listener
	id string
}

// Hub broadcasts log notifications to registered listeners.
//
// It carries two independent channels: one fired after every normal log
// emission and one fired after every error emission. Listeners run
// synchronously on the calling goroutine, in registration order, after the
// message has been routed to its sinks. A panicking listener is isolated and
// does not prevent the remaining listeners from running. Safe for concurrent
// use.
//
// Create instances with [NewHub].
type Hub struct {
	logged      []listener
	errorLogged []listener
	mu          sync.Mutex
}

// NewHub creates a Hub with no listeners.
func NewHub() *Hub {
	return &Hub{}
}

// OnLogged registers fn to run after every normal log emission.
// It returns a subscription id for [Hub.Unsubscribe].
func (h *Hub) OnLogged(fn Listener) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.logged = append(h.logged, listener{fn: fn, id: id})

	return id
}

// OnErrorLogged registers fn to run after every error emission.
// It returns a subscription id for [Hub.Unsubscribe].
func (h *Hub) OnErrorLogged(fn Listener) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.errorLogged = append(h.errorLogged, listener{fn: fn, id: id})

	return id
}

// Unsubscribe removes the listener registered under id. Unknown ids are
// ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.logged = removeListener(h.logged, id)
	h.errorLogged = removeListener(h.errorLogged, id)
}

// fireLogged invokes all onLogged listeners with text.
func (h *Hub) fireLogged(text string) {
	h.fire(text, func() []listener { return h.logged })
}

// fireErrorLogged invokes all onErrorLogged listeners with text.
func (h *Hub) fireErrorLogged(text string) {
	h.fire(text, func() []listener { return h.errorLogged })
}

// fire snapshots a listener list under the lock and invokes each entry
// outside it, so listeners may subscribe, unsubscribe, or log re-entrantly.
func (h *Hub) fire(text string, list func() []listener) {
	h.mu.Lock()
	snapshot := make([]listener, len(list()))
	copy(snapshot, list())
	h.mu.Unlock()

	for _, l := range snapshot {
		invoke(l.fn, text)
	}
}

// invoke runs a single listener, swallowing any panic so one failing
// listener cannot halt dispatch to the rest.
func invoke(fn Listener, text string) {
	defer func() {
		_ = recover()
	}()

	fn(text)
}

func removeListener(list []listener, id string) []listener {
	for i, l := range list {
		if l.id == id {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
