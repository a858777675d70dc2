package notifications

import (
	"context"
	"sync"
)

// MemoryDeliverer keeps delivered notifications in memory, in delivery order.
// Suitable for development and testing.
type MemoryDeliverer struct {
	mu       sync.Mutex
	received []Notification
}

func NewMemoryDeliverer() *MemoryDeliverer {
	return &MemoryDeliverer{}
}

func (d *MemoryDeliverer) Deliver(_ context.Context, notif Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.received = append(d.received, notif)
	return nil
}

// All returns a copy of everything delivered so far.
func (d *MemoryDeliverer) All() []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Notification, len(d.received))
	copy(out, d.received)
	return out
}

// Last returns the most recent notification.
func (d *MemoryDeliverer) Last() (Notification, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.received) == 0 {
		return Notification{}, false
	}
	return d.received[len(d.received)-1], true
}

// Count returns how many notifications of typ were delivered.
// An empty typ counts all of them.
func (d *MemoryDeliverer) Count(typ Type) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, notif := range d.received {
		if typ == "" || notif.Type == typ {
			n++
		}
	}
	return n
}

// Reset forgets every delivered notification.
func (d *MemoryDeliverer) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.received = nil
}
