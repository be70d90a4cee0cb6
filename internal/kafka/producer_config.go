package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

func (c *ProducerConfig) writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}
}
