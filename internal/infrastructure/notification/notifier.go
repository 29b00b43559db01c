// Package notification provides a non-graphical port.Notifier that logs
// notices and resolves their callbacks on timers or explicit responses.
package notification

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/logging"
)

// Sink receives every shown notice, e.g. to render it on a terminal.
type Sink func(id port.NotificationID, notice port.Notice)

type pending struct {
	onResponse func(string)
	timer      *time.Timer
}

// Notifier logs notices with zerolog and forwards them to an optional sink.
type Notifier struct {
	sink Sink

	mu      sync.Mutex
	nextID  uint64
	pending map[port.NotificationID]*pending
}

var _ port.Notifier = (*Notifier)(nil)

// New creates a notifier. sink may be nil.
func New(sink Sink) *Notifier {
	return &Notifier{sink: sink, pending: make(map[port.NotificationID]*pending)}
}

// Show records the notice. A notice with a timeout answers "" when it
// expires; otherwise it waits for Respond or Dismiss.
func (n *Notifier) Show(ctx context.Context, notice port.Notice, onResponse func(string)) port.NotificationID {
	n.mu.Lock()
	n.nextID++
	id := port.NotificationID("notice-" + strconv.FormatUint(n.nextID, 10))
	p := &pending{onResponse: onResponse}
	n.pending[id] = p
	if notice.Timeout > 0 {
		p.timer = time.AfterFunc(notice.Timeout, func() { n.resolve(id, "") })
	}
	n.mu.Unlock()

	log := logging.FromContext(ctx)
	event := log.Info()
	switch notice.Type {
	case port.NotificationError:
		event = log.Error()
	case port.NotificationWarning:
		event = log.Warn()
	}
	event.
		Str("notice_id", string(id)).
		Str("type", notice.Type.String()).
		Str("title", notice.Title).
		Str("message", notice.Message).
		Int("actions", len(notice.Actions)).
		Msg("notice shown")

	if n.sink != nil {
		n.sink(id, notice)
	}
	return id
}

// Dismiss drops a notice without answering it.
func (n *Notifier) Dismiss(_ context.Context, id port.NotificationID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p, ok := n.pending[id]; ok {
		if p.timer != nil {
			p.timer.Stop()
		}
		delete(n.pending, id)
	}
}

// Respond answers a pending notice with actionID on a new goroutine.
// It reports whether the notice was still pending.
func (n *Notifier) Respond(id port.NotificationID, actionID string) bool {
	n.mu.Lock()
	_, ok := n.pending[id]
	n.mu.Unlock()
	if !ok {
		return false
	}
	go n.resolve(id, actionID)
	return true
}

// Pending returns the number of unanswered notices.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}

func (n *Notifier) resolve(id port.NotificationID, actionID string) {
	n.mu.Lock()
	p, ok := n.pending[id]
	if ok {
		delete(n.pending, id)
		if p.timer != nil {
			p.timer.Stop()
		}
	}
	n.mu.Unlock()

	if ok && p.onResponse != nil {
		p.onResponse(actionID)
	}
}
