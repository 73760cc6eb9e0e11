package consumer

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bec-courses/course-api/internal/models"
)

// NotificationConsumer turns order.created events into customer
// confirmations. Seat inventory is already settled synchronously during
// checkout, so this consumer never touches stock.
type NotificationConsumer struct{}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{}
}

// ProcessOrderCreated handles order.created events
func (c *NotificationConsumer) ProcessOrderCreated(messages <-chan amqp.Delivery) {
	for msg := range messages {
		var event models.OrderCreatedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.Printf("❌ Failed to parse event: %v", err)
			msg.Nack(false, false) // Don't requeue bad messages
			continue
		}

		c.notify(event)
		msg.Ack(false)
	}
}

func (c *NotificationConsumer) notify(event models.OrderCreatedEvent) {
	recipient := event.CustomerEmail
	if recipient == "" {
		recipient = event.CustomerName
	}

	log.Printf("📧 Order %s confirmed for %s (total $%.2f)", event.OrderID, recipient, event.TotalPrice)
	for _, item := range event.Items {
		log.Printf("   %d× %s", item.Quantity, item.Title)
	}
}
