package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"quickbite/activity-svc/internal/domain"
)

type Consumer struct {
	CartReader  *kafka.Reader
	OrderReader *kafka.Reader
	Store       StoreInterface
}

func NewConsumer(cartReader, orderReader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		CartReader:  cartReader,
		OrderReader: orderReader,
		Store:       store,
	}
}

// Start consumes both topics until the context is cancelled. Each topic gets
// its own loop so a stall on one does not starve the other.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Activity Service consumer...")
	go c.consumeCartEvents(ctx)
	c.consumeOrderEvents(ctx)
}

func (c *Consumer) consumeCartEvents(ctx context.Context) {
	for {
		message, err := c.CartReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading cart event: %v", err)
			continue
		}

		var msg domain.CartMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling cart event: %v", err)
			continue
		}
		c.ProcessCartEvent(msg)
	}
}

func (c *Consumer) consumeOrderEvents(ctx context.Context) {
	for {
		message, err := c.OrderReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading order event: %v", err)
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling order event: %v", err)
			continue
		}
		c.ProcessOrderEvent(msg)
	}
}

func (c *Consumer) ProcessCartEvent(msg domain.CartMessage) {
	if msg.Type != domain.CartUpdated && msg.Type != domain.FavoritesUpdated {
		return
	}
	if msg.SessionID == "" {
		return
	}

	if err := c.Store.BumpSession(msg.SessionID, msg.Type); err != nil {
		log.Printf("Error updating session activity: %v", err)
	}
}

func (c *Consumer) ProcessOrderEvent(msg domain.OrderMessage) {
	if msg.Type != domain.StatusChanged || msg.RestaurantID <= 0 {
		return
	}

	at := msg.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	if err := c.Store.RecordOrderStatus(msg.RestaurantID, msg.To, at); err != nil {
		log.Printf("Error recording order status for restaurant %d: %v", msg.RestaurantID, err)
	}
}
