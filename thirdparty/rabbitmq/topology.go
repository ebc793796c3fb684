package rabbitmq

import "github.com/rabbitmq/amqp091-go"

const (
	lowStockExchange   = "inventory_alert_exchange"
	lowStockQueue      = "inventory_low_stock_queue"
	lowStockRoutingKey = "inventory.low_stock"
)

func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

// declareTopology is idempotent; publisher and consumer both run it.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		lowStockExchange, // name
		"direct",         // type
		true,             // durable
		false,            // auto-delete
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		lowStockQueue, // name
		true,          // durable
		false,         // auto-delete
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		lowStockQueue,      // queue name
		lowStockRoutingKey, // routing key
		lowStockExchange,   // exchange
		false,              // no-wait
		nil,                // arguments
	)
}
