// Package audit posts action descriptors to the backend's log endpoint as a
// best-effort side channel. Entries are queued and shipped by a detached
// worker, so the primary operation never waits on — or fails because of —
// the audit write.
package audit

import (
	"context"
	"sync"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/logging"
)

// Entry is the wire shape of one audit record.
type Entry struct {
	Accion  string         `json:"accion"`
	Payload map[string]any `json:"payload"`
}

type Logger struct {
	api *api.Client
	log logging.Logger

	mu     sync.Mutex
	closed bool
	queue  chan Entry
	done   chan struct{}
}

// NewLogger starts the shipping worker. queueSize bounds how many entries
// can be pending; once full, further entries are dropped with a diagnostic.
func NewLogger(apiClient *api.Client, log logging.Logger, queueSize int) *Logger {
	if queueSize <= 0 {
		queueSize = 64
	}
	l := &Logger{
		api:   apiClient,
		log:   log,
		queue: make(chan Entry, queueSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Logger) run() {
	defer close(l.done)
	for e := range l.queue {
		// Failures are logged and dropped; the user already saw the primary
		// operation succeed.
		if err := l.api.Post(context.Background(), "/logs/", e, nil); err != nil {
			l.log.Warn(context.Background(), "audit entry dropped", "accion", e.Accion, "error", err)
		}
	}
}

// Record enqueues an entry without blocking. Never returns an error: a full
// queue or a closed logger drops the entry with a diagnostic.
func (l *Logger) Record(accion string, payload map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.log.Warn(context.Background(), "audit entry after close", "accion", accion)
		return
	}
	select {
	case l.queue <- Entry{Accion: accion, Payload: payload}:
	default:
		l.log.Warn(context.Background(), "audit queue full, entry dropped", "accion", accion)
	}
}

// Close stops accepting entries and waits until the pending queue drains.
func (l *Logger) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	<-l.done
}
