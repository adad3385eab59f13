package mq

import (
	"fmt"
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	Conn    *amqp.Connection
	channel *amqp.Channel
}

// ConnectToRabbitMQ: RabbitMQ connection setup
func ConnectToRabbitMQ() (*RabbitMQ, error) {
	host := os.Getenv("RABBITMQ_HOST")
	if host == "" {
		host = "roomie-rabbitmq"
	}

	conn, err := amqp.Dial(fmt.Sprintf("amqp://guest:guest@%s", host))
	if err != nil {
		log.Printf("❌ Failed to connect to RabbitMQ: %v", err)
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("❌ Failed to open RabbitMQ channel: %v", err)
		return nil, err
	}

	return &RabbitMQ{Conn: conn, channel: ch}, nil
}

// DeclareExchange: declare an exchange
func (mq *RabbitMQ) DeclareExchange(name, exchangeType string) error {
	return mq.channel.ExchangeDeclare(
		name,         // exchange name
		exchangeType, // type: topic or fanout
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // arguments
	)
}

// PublishMessage: publish a message to an exchange
func (mq *RabbitMQ) PublishMessage(exchange, routingKey string, body []byte) error {
	return mq.channel.Publish(
		exchange,   // exchange name
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
