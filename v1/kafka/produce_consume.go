package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Aleph-Alpha/std/v1/observability"
)

// Message is a message read from a Kafka topic, paired with the reader that
// produced it so it can be committed back to the consumer group.
type Message struct {
	msg    kafka.Message
	reader *kafka.Reader
}

// Key returns the message key.
func (m Message) Key() []byte { return m.msg.Key }

// Body returns the message value.
func (m Message) Body() []byte { return m.msg.Value }

// Headers returns the message headers.
func (m Message) Headers() []kafka.Header { return m.msg.Headers }

// Topic returns the topic the message was read from.
func (m Message) Topic() string { return m.msg.Topic }

// Partition returns the partition the message was read from.
func (m Message) Partition() int { return m.msg.Partition }

// Offset returns the message's offset within its partition.
func (m Message) Offset() int64 { return m.msg.Offset }

// CommitMsg commits this message's offset back to the consumer group. It
// returns nil without committing only when the message carries no reader;
// it does not check EnableAutoCommit, so with auto-commit enabled the
// commit is still handed to the reader.
func (m Message) CommitMsg() error {
	if m.reader == nil {
		return nil
	}
	return m.reader.CommitMessages(context.Background(), m.msg)
}

// Produce serializes value with the client's configured Serializer and
// writes it to the configured topic under key. If key is empty, a random
// UUID is used so messages are still spread evenly across partitions.
func (k *KafkaClient) Produce(ctx context.Context, key string, value interface{}, headers map[string]string) error {
	start := time.Now()

	k.mu.RLock()
	writer := k.writer
	serializer := k.serializer
	k.mu.RUnlock()

	if writer == nil {
		return fmt.Errorf("kafka client is not configured as a producer")
	}
	if serializer == nil {
		return fmt.Errorf("kafka client has no serializer configured")
	}

	if key == "" {
		key = uuid.NewString()
	}

	body, err := serializer.Serialize(k.cfg.Topic, value)
	if err != nil {
		k.report("produce", key, 0, err, start)
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	kafkaHeaders := make([]kafka.Header, 0, len(headers))
	for name, val := range headers {
		kafkaHeaders = append(kafkaHeaders, kafka.Header{Key: name, Value: []byte(val)})
	}

	err = writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   body,
		Headers: kafkaHeaders,
		Time:    time.Now(),
	})

	k.report("produce", key, int64(len(body)), err, start)
	if err != nil {
		return fmt.Errorf("failed to write kafka message: %w", err)
	}
	return nil
}

// Consume reads messages from the configured consumer group topic and
// forwards them on the returned channel. It runs until ctx is cancelled or
// the client is shut down, at which point the channel is closed. wg is
// incremented before the reading goroutine starts, so callers can wait for
// it to exit cleanly.
func (k *KafkaClient) Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message {
	out := make(chan Message)

	k.mu.RLock()
	reader := k.reader
	k.mu.RUnlock()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(out)

		if reader == nil {
			return
		}

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				select {
				case <-k.shutdownSignal:
					return
				default:
				}
				k.report("consume", "", 0, err, time.Now())
				continue
			}

			k.report("consume", string(msg.Key), int64(len(msg.Value)), nil, time.Now())

			select {
			case out <- Message{msg: msg, reader: reader}:
			case <-ctx.Done():
				return
			case <-k.shutdownSignal:
				return
			}
		}
	}()

	return out
}

// ConsumeParallel fans the output of Consume out across n worker goroutines
// that forward messages onto the returned channel. This improves throughput
// for handlers dominated by per-message processing time, at the cost of
// losing strict in-partition ordering across the fan-out.
func (k *KafkaClient) ConsumeParallel(ctx context.Context, wg *sync.WaitGroup, n int) <-chan Message {
	if n < 1 {
		n = 1
	}

	in := k.Consume(ctx, wg)
	out := make(chan Message)

	var workers sync.WaitGroup
	for i := 0; i < n; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for msg := range in {
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		workers.Wait()
		close(out)
	}()

	return out
}

// report notifies the configured Observer, if any, of a produce/consume call.
func (k *KafkaClient) report(operation, resource string, size int64, err error, start time.Time) {
	if k.observer == nil {
		return
	}
	k.observer.ObserveOperation(observability.OperationContext{
		Component:   "kafka",
		Operation:   operation,
		Resource:    k.cfg.Topic,
		SubResource: resource,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
	})
}

// GracefulShutdown signals any running Consume goroutines to stop and closes
// the underlying writer and reader.
func (k *KafkaClient) GracefulShutdown() error {
	k.closeShutdownOnce.Do(func() {
		close(k.shutdownSignal)
	})

	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error
	if k.writer != nil {
		if err := k.writer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if k.reader != nil {
		if err := k.reader.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
