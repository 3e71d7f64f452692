package producer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/segmentio/kafka-go"
)

var (
	ErrInvalidateParameter = errors.New("invalidate parameter")
	ErrProducerClosed      = errors.New("producer is closed")
	ErrPublisherStopped    = errors.New("event publisher is stopped")
	ErrPublisherBufferFull = errors.New("event publisher buffer is full")
)

// KafkaError wraps a failed kafka operation with the topic it targeted.
type KafkaError struct {
	Operation string
	Topic     string
	Err       error
}

func (e *KafkaError) Error() string {
	return fmt.Sprintf("kafka operation %s on topic %s failed: %v", e.Operation, e.Topic, e.Err)
}

func (e *KafkaError) Unwrap() error {
	return e.Err
}

func NewKafkaError(operation, topic string, err error) error {
	return &KafkaError{
		Operation: operation,
		Topic:     topic,
		Err:       err,
	}
}

func unwrapKafka(err error) error {
	var kafkaErr *KafkaError
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Err
	}
	return err
}

// IsConnectionError reports errors that need a new connection rather than a retry.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	err = unwrapKafka(err)

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		var sysErr syscall.Errno
		if errors.As(netErr.Err, &sysErr) {
			switch sysErr {
			case syscall.ECONNREFUSED,
				syscall.ECONNRESET,
				syscall.ECONNABORTED,
				syscall.ENETUNREACH,
				syscall.ENETRESET,
				syscall.ETIMEDOUT:
				return true
			}
		}
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable")
}

// IsFatalError reports errors that must not be retried.
func IsFatalError(err error) bool {
	if err == nil {
		return false
	}
	err = unwrapKafka(err)

	if errors.Is(err, kafka.TopicAuthorizationFailed) ||
		errors.Is(err, kafka.GroupAuthorizationFailed) ||
		errors.Is(err, kafka.ClusterAuthorizationFailed) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "authentication failed") ||
		strings.Contains(errStr, "authorization failed") ||
		strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "topic not found") ||
		strings.Contains(errStr, "invalid topic")
}

// IsTemporaryError reports errors worth another attempt on the same connection.
func IsTemporaryError(err error) bool {
	if err == nil {
		return false
	}
	if IsConnectionError(err) || IsFatalError(err) {
		return false
	}
	err = unwrapKafka(err)

	if errors.Is(err, kafka.LeaderNotAvailable) ||
		errors.Is(err, kafka.NotLeaderForPartition) ||
		errors.Is(err, kafka.RequestTimedOut) ||
		errors.Is(err, kafka.RebalanceInProgress) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "temporary") ||
		strings.Contains(errStr, "retriable") ||
		strings.Contains(errStr, "no buffer space")
}
