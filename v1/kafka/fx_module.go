package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/std/v1/observability"
	"github.com/Aleph-Alpha/std/v1/schema_registry"
)

// FXModule is an fx module that provides the Kafka client component. It
// registers the KafkaClient constructor for dependency injection and sets
// up lifecycle hooks to shut down the writer/reader on application stop.
//
// This module provides the Client interface, not *KafkaClient concrete type.
// It also exposes the same instance as schema_registry.EventPublisher, so
// schema_registry.Service can publish SchemaRegisteredEvent notifications
// through it without this module depending back on schema_registry.Service.
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			ProvideClient,
			fx.As(new(Client)),
		),
		fx.Annotate(
			ProvideClient,
			fx.As(new(schema_registry.EventPublisher)),
		),
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

// ProvideClient wraps the concrete *KafkaClient and returns it as the Client interface.
func ProvideClient(k *KafkaClient) Client {
	return k
}

// ClientParams groups the dependencies needed to create a KafkaClient via
// dependency injection. The embedded fx.In marker enables automatic
// injection of these fields from the container.
type ClientParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new KafkaClient for use with Uber's fx. The
// optional Observer, if provided by the container, is attached before the
// client is returned.
func NewClientWithDI(params ClientParams) (*KafkaClient, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// RegisterKafkaLifecycle registers an OnStop hook that gracefully shuts down
// the Kafka client's writer and reader when the application terminates.
func RegisterKafkaLifecycle(lc fx.Lifecycle, client *KafkaClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.GracefulShutdown()
		},
	})
}
