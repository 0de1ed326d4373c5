package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/linkedin/goavro/v2"

	"github.com/Aleph-Alpha/std/v1/schema_registry"
)

// Serializer encodes a value into the bytes written to a Kafka message.
type Serializer interface {
	Serialize(topic string, value interface{}) ([]byte, error)
}

// Deserializer decodes a consumed message's bytes into dest.
type Deserializer interface {
	Deserialize(topic string, data []byte, dest interface{}) error
}

// SetDefaultSerializers installs a Serializer/Deserializer pair matching
// cfg.DataType, unless one has already been set via SetSerializer or
// SetDeserializer. DataTypeAvro is not handled here: it requires a schema
// registry client and a subject, so callers must build one with
// NewAvroSerializer/NewAvroDeserializer and install it explicitly.
func (k *KafkaClient) SetDefaultSerializers() {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch k.cfg.DataType {
	case DataTypeRaw:
		if k.serializer == nil {
			k.serializer = rawSerializer{}
		}
		if k.deserializer == nil {
			k.deserializer = rawDeserializer{}
		}
	case DataTypeAvro:
		// left to the caller; see NewAvroSerializer/NewAvroDeserializer.
	default:
		if k.serializer == nil {
			k.serializer = jsonSerializer{}
		}
		if k.deserializer == nil {
			k.deserializer = jsonDeserializer{}
		}
	}
}

type jsonSerializer struct{}

func (jsonSerializer) Serialize(_ string, value interface{}) ([]byte, error) {
	if b, ok := value.([]byte); ok {
		return b, nil
	}
	return json.Marshal(value)
}

type jsonDeserializer struct{}

func (jsonDeserializer) Deserialize(_ string, data []byte, dest interface{}) error {
	if dest == nil {
		return nil
	}
	return json.Unmarshal(data, dest)
}

type rawSerializer struct{}

func (rawSerializer) Serialize(_ string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("raw serializer: unsupported value type %T", value)
	}
}

type rawDeserializer struct{}

func (rawDeserializer) Deserialize(_ string, data []byte, dest interface{}) error {
	switch d := dest.(type) {
	case *[]byte:
		*d = data
		return nil
	case *string:
		*d = string(data)
		return nil
	default:
		return fmt.Errorf("raw deserializer: unsupported dest type %T", dest)
	}
}

// avroSerializer encodes values to Avro binary using a codec compiled from a
// schema registered through a Confluent-compatible schema registry, and
// prefixes the result with the registry's wire format header.
type avroSerializer struct {
	registry schema_registry.Registry
	subject  string
	schema   string
	codec    *goavro.Codec
	schemaID int
}

// NewAvroSerializer registers schema for subject against registry and
// returns a Serializer that encodes values conforming to it. Values are
// converted via their JSON representation, so any type that marshals to
// JSON compatible with schema's structure can be passed to Serialize.
func NewAvroSerializer(registry schema_registry.Registry, subject, schema string) (Serializer, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("compile avro schema: %w", err)
	}

	id, err := registry.RegisterSchema(subject, schema, "AVRO")
	if err != nil {
		return nil, fmt.Errorf("register avro schema for subject %q: %w", subject, err)
	}

	return &avroSerializer{registry: registry, subject: subject, schema: schema, codec: codec, schemaID: id}, nil
}

func (s *avroSerializer) Serialize(_ string, value interface{}) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal value to json: %w", err)
	}

	native, _, err := s.codec.NativeFromTextual(payload)
	if err != nil {
		return nil, fmt.Errorf("convert json to avro native form: %w", err)
	}

	binary, err := s.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode avro binary: %w", err)
	}

	return append(schema_registry.EncodeSchemaID(s.schemaID), binary...), nil
}

// avroDeserializer decodes the Confluent wire format, resolving the schema
// named by the embedded schema ID against registry (falling back to the
// schema it was constructed with when the IDs match, to avoid a lookup on
// the hot path).
type avroDeserializer struct {
	registry schema_registry.Registry
	schema   string
	codec    *goavro.Codec
	schemaID int
}

// NewAvroDeserializer returns a Deserializer that decodes Confluent wire
// format payloads using registry to resolve any schema ID other than the one
// registered for subject/schema.
func NewAvroDeserializer(registry schema_registry.Registry, subject, schema string) (Deserializer, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("compile avro schema: %w", err)
	}

	id, err := registry.RegisterSchema(subject, schema, "AVRO")
	if err != nil {
		return nil, fmt.Errorf("register avro schema for subject %q: %w", subject, err)
	}

	return &avroDeserializer{registry: registry, schema: schema, codec: codec, schemaID: id}, nil
}

func (d *avroDeserializer) Deserialize(_ string, data []byte, dest interface{}) error {
	id, payload, err := schema_registry.DecodeSchemaID(data)
	if err != nil {
		return err
	}

	codec := d.codec
	if id != d.schemaID {
		writerSchema, err := d.registry.GetSchemaByID(id)
		if err != nil {
			return fmt.Errorf("fetch schema %d: %w", id, err)
		}
		writerCodec, err := goavro.NewCodec(writerSchema)
		if err != nil {
			return fmt.Errorf("compile schema %d: %w", id, err)
		}
		codec = writerCodec
	}

	native, _, err := codec.NativeFromBinary(payload)
	if err != nil {
		return fmt.Errorf("decode avro binary: %w", err)
	}

	textual, err := codec.TextualFromNative(nil, native)
	if err != nil {
		return fmt.Errorf("convert avro native form to json: %w", err)
	}

	if dest == nil {
		return nil
	}
	return json.Unmarshal(textual, dest)
}
