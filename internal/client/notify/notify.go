// Package notify keeps the transient user-facing messages raised by list and
// form outcomes. Messages queue in insertion order and expire on their own
// after a fixed delay.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID      uuid.UUID
	Message string
	Kind    Kind
}

type Center struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
}

// NewCenter returns a Center whose notifications live for ttl.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Center{ttl: ttl}
}

func (c *Center) Success(message string) { c.push(message, KindSuccess) }

func (c *Center) Error(message string) { c.push(message, KindError) }

func (c *Center) push(message string, kind Kind) {
	n := Notification{ID: uuid.New(), Message: message, Kind: kind}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.remove(n.ID) })
}

func (c *Center) remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications in insertion order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
