package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/std/v1/schema_registry"
)

const personSchema = `{"type":"record","name":"Person","fields":[
	{"name":"name","type":"string"},
	{"name":"age","type":"int"}
]}`

func TestAvroSerializer_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	registry.EXPECT().RegisterSchema("people", personSchema, "AVRO").Return(7, nil).Times(2)

	serializer, err := NewAvroSerializer(registry, "people", personSchema)
	require.NoError(t, err)

	deserializer, err := NewAvroDeserializer(registry, "people", personSchema)
	require.NoError(t, err)

	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	encoded, err := serializer.Serialize("people-topic", person{Name: "Ada", Age: 30})
	require.NoError(t, err)

	id, payload, err := schema_registry.DecodeSchemaID(encoded)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NotEmpty(t, payload)

	var out person
	require.NoError(t, deserializer.Deserialize("people-topic", encoded, &out))
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, 30, out.Age)
}

func TestAvroDeserializer_FetchesUnknownSchemaID(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	registry.EXPECT().RegisterSchema("people", personSchema, "AVRO").Return(7, nil).Times(2)
	registry.EXPECT().GetSchemaByID(9).Return(personSchema, nil)

	deserializer, err := NewAvroDeserializer(registry, "people", personSchema)
	require.NoError(t, err)

	writerSerializer, err := NewAvroSerializer(registry, "people", personSchema)
	require.NoError(t, err)
	encoded, err := writerSerializer.Serialize("people-topic", map[string]interface{}{"name": "Grace", "age": 40})
	require.NoError(t, err)

	// Re-stamp the payload with a schema ID the deserializer did not
	// register itself, forcing it down the GetSchemaByID lookup path.
	_, payload, err := schema_registry.DecodeSchemaID(encoded)
	require.NoError(t, err)
	restamped := append(schema_registry.EncodeSchemaID(9), payload...)

	var out map[string]interface{}
	require.NoError(t, deserializer.Deserialize("people-topic", restamped, &out))
	assert.Equal(t, "Grace", out["name"])
}

func TestNewAvroSerializer_InvalidSchemaFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	// RegisterSchema must never be called: goavro.NewCodec rejects the
	// malformed schema before the registry is consulted.
	_, err := NewAvroSerializer(registry, "broken", `{"type":"record"}`)
	assert.Error(t, err)
}
