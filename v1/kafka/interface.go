package kafka

import (
	"context"
	"sync"
)

// Client is the contract implemented by KafkaClient. Applications should
// depend on this interface rather than the concrete type so alternative or
// mock implementations can be substituted in tests.
type Client interface {
	// Produce serializes value and writes it to the configured topic under key.
	Produce(ctx context.Context, key string, value interface{}, headers map[string]string) error

	// Consume streams messages from the configured consumer group topic.
	Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message

	// ConsumeParallel is Consume fanned out across n worker goroutines.
	ConsumeParallel(ctx context.Context, wg *sync.WaitGroup, n int) <-chan Message

	// SetSerializer overrides the Serializer used by Produce.
	SetSerializer(s Serializer)

	// SetDeserializer overrides the Deserializer available to consumers.
	SetDeserializer(d Deserializer)

	// GracefulShutdown stops any running Consume loops and closes the
	// underlying writer and reader.
	GracefulShutdown() error
}
