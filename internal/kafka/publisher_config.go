package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type PublisherConfig struct {
	Brokers      []string
	Topic        string
	RequiredAcks string // none|one|all
	WriteTimeout time.Duration
}

func (c *PublisherConfig) writer() *kafka.Writer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           c.WriteTimeout,
		AllowAutoTopicCreation: true,
	}

	switch c.RequiredAcks {
	case "none":
		w.RequiredAcks = kafka.RequireNone
	case "all":
		w.RequiredAcks = kafka.RequireAll
	default:
		w.RequiredAcks = kafka.RequireOne
	}

	return w
}
