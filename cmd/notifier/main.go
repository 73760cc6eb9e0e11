package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/bec-courses/course-api/internal/config"
	"github.com/bec-courses/course-api/internal/consumer"
	"github.com/bec-courses/course-api/internal/messaging"
	"github.com/bec-courses/course-api/internal/publisher"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	if err := rabbitMQ.DeclareQueue(publisher.OrderCreatedQueue); err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	messages, err := rabbitMQ.Consume(publisher.OrderCreatedQueue)
	if err != nil {
		log.Fatalf("Failed to consume messages: %v", err)
	}

	log.Println("🚀 Notifier started")
	consumer.NewNotificationConsumer().ProcessOrderCreated(messages)
}
