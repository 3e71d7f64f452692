package producer

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Writer is the part of *kafka.Writer the producer depends on.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers       []string
	Topic         string
	BatchSize     int
	BatchTimeout  time.Duration
	RequiredAcks  int
	RetryAttempts int
	RetryBackoff  time.Duration
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 || c.Topic == "" {
		return ErrInvalidateParameter
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.BatchTimeout <= 0 {
		c.BatchTimeout = 50 * time.Millisecond
	}
	if c.RetryAttempts < 0 {
		c.RetryAttempts = 0
	}
	return nil
}

// NewKafkaWriter builds the segmentio writer for cfg. Call Validate first.
func NewKafkaWriter(cfg Config, logger *zerolog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        false,
		MaxAttempts:  1,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error().Msgf("kafka producer error: "+msg, args...)
		}),
	}
}

type Producer interface {
	// Produce writes msgs synchronously, retrying temporary failures.
	Produce(ctx context.Context, msgs []Message) error
	Close() error
}

type KafkaProducer struct {
	writer Writer
	cfg    Config
	closed atomic.Bool
}

var _ Producer = (*KafkaProducer)(nil)

func NewKafkaProducer(w Writer, cfg Config) (*KafkaProducer, error) {
	if w == nil {
		return nil, ErrInvalidateParameter
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &KafkaProducer{
		writer: w,
		cfg:    cfg,
	}, nil
}

func (p *KafkaProducer) Produce(ctx context.Context, msgs []Message) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if len(msgs) == 0 {
		return nil
	}

	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, msg := range msgs {
		kafkaMsgs[i] = msg.ToKafkaMessage()
	}

	var err error
	for attempt := 0; attempt <= p.cfg.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return NewKafkaError("Produce", p.cfg.Topic, ctx.Err())
		}
		err = p.writer.WriteMessages(ctx, kafkaMsgs...)
		if err == nil {
			return nil
		}
		if !IsTemporaryError(err) {
			break
		}
		if p.cfg.RetryBackoff > 0 && attempt < p.cfg.RetryAttempts {
			select {
			case <-ctx.Done():
				return NewKafkaError("Produce", p.cfg.Topic, ctx.Err())
			case <-time.After(p.cfg.RetryBackoff * time.Duration(attempt+1)):
			}
		}
	}

	return NewKafkaError("Produce", p.cfg.Topic, err)
}

func (p *KafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
