package producer

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/rs/zerolog"
)

const (
	defaultBufferSize   = 256
	defaultBatchSize    = 50
	defaultFlushTimeout = 5 * time.Second

	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

type EventPublisher interface {
	// Publish hands evt off for delivery. It never waits on the broker.
	Publish(ctx context.Context, evt event.Event) error
}

// EncodeEvent turns evt into a producer message keyed by its session.
func EncodeEvent(evt event.Event) (Message, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Key:   []byte(evt.Key()),
		Value: data,
		Headers: []Header{
			{Key: HeaderEventType, Value: []byte(evt.Type())},
			{Key: HeaderEventID, Value: []byte(evt.GetID())},
		},
		Time: time.Now().UTC(),
	}, nil
}

// AsyncEventPublisher queues events in memory and flushes them to a Producer
// from a single background worker.
type AsyncEventPublisher struct {
	producer  Producer
	queue     chan Message
	batchSize int
	logger    *zerolog.Logger

	isRunning atomic.Bool
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

var _ EventPublisher = (*AsyncEventPublisher)(nil)

func NewAsyncEventPublisher(p Producer, bufferSize int, logger *zerolog.Logger) *AsyncEventPublisher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &AsyncEventPublisher{
		producer:  p,
		queue:     make(chan Message, bufferSize),
		batchSize: defaultBatchSize,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

func (p *AsyncEventPublisher) Start() {
	if !p.isRunning.CompareAndSwap(false, true) {
		return
	}
	p.wg.Add(1)
	go p.run()
	p.logger.Info().Msg("event publisher started")
}

func (p *AsyncEventPublisher) Publish(ctx context.Context, evt event.Event) error {
	if !p.isRunning.Load() {
		return ErrPublisherStopped
	}
	msg, err := EncodeEvent(evt)
	if err != nil {
		return err
	}
	select {
	case p.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.logger.Warn().
			Str("event_type", string(evt.Type())).
			Str("event_id", evt.GetID()).
			Msg("event publisher buffer full, event dropped")
		return ErrPublisherBufferFull
	}
}

// Stop flushes queued events, then closes the producer.
func (p *AsyncEventPublisher) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.isRunning.Store(false)
		close(p.stopCh)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.logger.Info().Msg("event publisher stopped")
	return p.producer.Close()
}

func (p *AsyncEventPublisher) run() {
	defer p.wg.Done()
	batch := make([]Message, 0, p.batchSize)

	for {
		select {
		case msg := <-p.queue:
			batch = append(batch, msg)
			batch = p.fill(batch)
			p.flush(batch)
			batch = batch[:0]
		case <-p.stopCh:
			for {
				batch = p.fill(batch)
				if len(batch) == 0 {
					return
				}
				p.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

// fill takes whatever is already queued, up to batchSize, without blocking.
func (p *AsyncEventPublisher) fill(batch []Message) []Message {
	for len(batch) < p.batchSize {
		select {
		case msg := <-p.queue:
			batch = append(batch, msg)
		default:
			return batch
		}
	}
	return batch
}

func (p *AsyncEventPublisher) flush(batch []Message) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultFlushTimeout)
	defer cancel()
	if err := p.producer.Produce(ctx, batch); err != nil {
		p.logger.Error().
			Err(err).
			Int("count", len(batch)).
			Msg("failed to publish storefront events")
	}
}

// NoopEventPublisher is used when no brokers are configured.
type NoopEventPublisher struct{}

var _ EventPublisher = NoopEventPublisher{}

func (NoopEventPublisher) Publish(ctx context.Context, evt event.Event) error {
	return nil
}
