package notifier

import (
	"context"
	"sync"

	"call-insights-server/internal/observability"
)

// Envelope is the JSON frame pushed to every connected dashboard.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

const subscriberBuffer = 8

// Subscriber is one live dashboard connection's view of the hub.
type Subscriber struct {
	ch chan Envelope
}

// Events returns the channel the hub delivers envelopes on. The channel is
// closed when the subscriber is unsubscribed.
func (s *Subscriber) Events() <-chan Envelope {
	return s.ch
}

// Hub fans processed-call outcomes out to live subscribers. There is no
// replay: subscribers only see events published after they connect.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	logger      *observability.Logger
}

func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new live subscriber.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Envelope, subscriberBuffer)}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscriber and closes its event channel. Safe to call
// more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.ch)
	}
	h.mu.Unlock()
}

// Publish delivers the event to every currently-connected subscriber.
// Fire-and-forget: a subscriber whose buffer is full misses the event rather
// than blocking the publisher, and delivery is never an error.
func (h *Hub) Publish(ctx context.Context, event string, data interface{}) {
	envelope := Envelope{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub.ch <- envelope:
		default:
			h.logger.Warn(ctx, "subscriber buffer full, dropping event")
		}
	}
}

// SubscriberCount reports how many dashboards are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
