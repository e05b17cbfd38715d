package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Log product events published by the server",
	RunE:  runConsume,
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}

func runConsume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL is required")
	}

	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
	}
	defer mqClient.Close()

	if err := mqClient.ConsumeProductEvents(logProductEvent); err != nil {
		return fmt.Errorf("failed to start RabbitMQ consumer: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Consumer stopped")
	return nil
}

// logProductEvent drops malformed messages instead of requeueing them.
func logProductEvent(msg amqp.Delivery) error {
	event, err := rabbitmq.DecodeProductEvent(msg)
	if err != nil {
		log.Printf("Dropping message: %v", err)
		return nil
	}
	log.Printf("Received %s for product %d (%s, %.2f, available=%t)",
		event.Type, event.Product.ID, event.Product.Name, event.Product.Price, event.Product.Availability)
	return nil
}
