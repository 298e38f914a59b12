package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventCartUpdated      = "cartUpdated"
	EventFavoritesUpdated = "favoritesUpdated"
)

// Event is a collection-change notification.
type Event struct {
	Name       string     `json:"type"`
	Collection Collection `json:"collection"`
	At         time.Time  `json:"timestamp"`
}

func NewEvent(c Collection) Event {
	name := EventCartUpdated
	if c == CollectionFavorites {
		name = EventFavoritesUpdated
	}
	return Event{Name: name, Collection: c, At: time.Now()}
}

// Bus fans change events out to subscribers. Publish never blocks: a
// subscriber that falls behind misses events and simply reloads the latest
// write on the next one it sees.
type Bus struct {
	mu   sync.RWMutex
	subs []chan Event
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

type broadcastMessage struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaBroadcaster relays bus events to the cart-events topic so other
// devices on the same session hear about writes. Best-effort only.
type KafkaBroadcaster struct {
	Writer    *kafka.Writer
	SessionID string
}

func NewKafkaBroadcaster(writer *kafka.Writer, sessionID string) *KafkaBroadcaster {
	return &KafkaBroadcaster{Writer: writer, SessionID: sessionID}
}

func (b *KafkaBroadcaster) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			payload, _ := json.Marshal(broadcastMessage{
				Type:      evt.Name,
				SessionID: b.SessionID,
				Timestamp: evt.At,
			})
			if err := b.Writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(b.SessionID),
				Value: payload,
			}); err != nil {
				log.Printf("Warning: failed to broadcast %s: %v", evt.Name, err)
			}
		}
	}
}
