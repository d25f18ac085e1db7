// Package stream implements the realtime transaction feed: every subscriber
// receives the full transaction snapshot for its user on registration and
// after every mutation, each emission replacing the previous list.
package stream

import (
	"log/slog"
	"sync"

	"ecodin/internal/models"

	"github.com/google/uuid"
)

// snapshotBuffer bounds per-subscriber queueing. A slow consumer keeps only
// the most recent snapshots; dropping an intermediate one is harmless since
// every emission is a full replacement.
const snapshotBuffer = 4

// Subscriber receives transaction snapshots for a single user.
type Subscriber struct {
	userID uuid.UUID
	ch     chan []models.Transaction
}

// Snapshots returns the channel snapshots are delivered on. The channel is
// closed when the subscriber is removed from the hub.
func (s *Subscriber) Snapshots() <-chan []models.Transaction {
	return s.ch
}

// Hub fans transaction snapshots out to the subscribers of each user.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*Subscriber]struct{}
	logger      *slog.Logger
	onCount     func(int)
}

// NewHub creates a new snapshot hub. onCount, if non-nil, is called with the
// total subscriber count whenever it changes (used for the metrics gauge).
func NewHub(logger *slog.Logger, onCount func(int)) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[*Subscriber]struct{}),
		logger:      logger,
		onCount:     onCount,
	}
}

// Subscribe registers a new subscriber for the user's transaction feed.
func (h *Hub) Subscribe(userID uuid.UUID) *Subscriber {
	sub := &Subscriber{
		userID: userID,
		ch:     make(chan []models.Transaction, snapshotBuffer),
	}

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*Subscriber]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}
	count := h.countLocked()
	h.mu.Unlock()

	h.logger.Debug("stream subscriber registered", "user_id", userID, "total", count)
	h.notifyCount(count)

	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call more
// than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	subs, ok := h.subscribers[sub.userID]
	if ok {
		if _, present := subs[sub]; present {
			delete(subs, sub)
			close(sub.ch)
		}
		if len(subs) == 0 {
			delete(h.subscribers, sub.userID)
		}
	}
	count := h.countLocked()
	h.mu.Unlock()

	h.notifyCount(count)
}

// Publish delivers a fresh snapshot to every subscriber of the user. When a
// subscriber's buffer is full its oldest queued snapshot is evicted so the
// newest state always gets through.
func (h *Hub) Publish(userID uuid.UUID, snapshot []models.Transaction) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[userID] {
		for {
			select {
			case sub.ch <- snapshot:
			default:
				select {
				case <-sub.ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// SubscriberCount returns the total number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked()
}

func (h *Hub) countLocked() int {
	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}

func (h *Hub) notifyCount(count int) {
	if h.onCount != nil {
		h.onCount(count)
	}
}
