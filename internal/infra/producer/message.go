package producer

import (
	"time"

	"github.com/segmentio/kafka-go"
)

type Header struct {
	Key   string
	Value []byte
}

// Message is what the storefront hands to the producer.
// Key keeps one session's events on one partition, in order.
type Message struct {
	Key     []byte
	Value   []byte
	Headers []Header
	Time    time.Time
}

func (m *Message) ToKafkaMessage() kafka.Message {
	headers := make([]kafka.Header, len(m.Headers))
	for i, h := range m.Headers {
		headers[i] = kafka.Header{
			Key:   h.Key,
			Value: h.Value,
		}
	}

	return kafka.Message{
		Key:     m.Key,
		Value:   m.Value,
		Headers: headers,
		Time:    m.Time,
	}
}

func (m *Message) Header(key string) (string, bool) {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}
