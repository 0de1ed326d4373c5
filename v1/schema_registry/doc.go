// Package schema_registry provides integration with Confluent Schema Registry.
//
// This package enables schema management, validation, and evolution for
// Apache Kafka messages and other streaming data platforms. Client validates
// Avro schemas locally and forwards any other schemaType to the remote
// registry unchanged; Service parses every schema as Avro, whatever its
// schemaType.
//
// Core Features:
//   - HTTP client for Confluent Schema Registry (Client)
//   - In-process registry backed by Postgres and v1/avro (Service)
//   - Schema registration and retrieval with caching
//   - Compatibility checking for schema evolution
//   - Confluent wire format encoding/decoding
//
// This package contains no serializers. The Avro serializer and deserializer
// that work against a Registry are in v1/kafka; there are no Protobuf or JSON
// Schema serializers.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/std/v1/schema_registry"
//
//	// Create schema registry client
//	registry, err := schema_registry.NewClient(schema_registry.Config{
//	    URL:      "http://localhost:8081",
//	    Username: "user",     // Optional
//	    Password: "password", // Optional
//	    Timeout:  10 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register a schema
//	avroSchema := `{
//	    "type": "record",
//	    "name": "User",
//	    "fields": [
//	        {"name": "name", "type": "string"},
//	        {"name": "age", "type": "int"}
//	    ]
//	}`
//
//	schemaID, err := registry.RegisterSchema("users-value", avroSchema, "AVRO")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Retrieve a schema
//	schema, err := registry.GetSchemaByID(schemaID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Check compatibility
//	compatible, err := registry.CheckCompatibility("users-value", newSchema, "AVRO")
//	if !compatible {
//	    log.Println("Schema is not compatible!")
//	}
//
// Using with FX:
//
//	import (
//	    "go.uber.org/fx"
//	    "github.com/Aleph-Alpha/std/v1/schema_registry"
//	)
//
//	app := fx.New(
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() schema_registry.Config {
//	            return schema_registry.Config{
//	                URL:      os.Getenv("SCHEMA_REGISTRY_URL"),
//	                Username: os.Getenv("SCHEMA_REGISTRY_USER"),
//	                Password: os.Getenv("SCHEMA_REGISTRY_PASSWORD"),
//	                Timeout:  30 * time.Second,
//	            }
//	        },
//	    ),
//	    // Your application code that uses schema_registry.Registry
//	)
//
// Using with Avro:
//
//	import "github.com/Aleph-Alpha/std/v1/kafka"
//
//	// Registers avroSchema under the subject and returns a kafka.Serializer
//	serializer, err := kafka.NewAvroSerializer(registry, "users-value", avroSchema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Serialize data
//	user := map[string]interface{}{
//	    "name": "John Doe",
//	    "age":  30,
//	}
//	encoded, err := serializer.Serialize("users", user)
//	// encoded contains: [magic_byte][schema_id][avro_payload]
//
//	// Create Avro deserializer
//	deserializer, err := kafka.NewAvroDeserializer(registry, "users-value", avroSchema)
//
//	// Deserialize data
//	var result map[string]interface{}
//	err = deserializer.Deserialize("users", encoded, &result)
//
// Wire Format:
//
// EncodeSchemaID and DecodeSchemaID, and the v1/kafka Avro serializer built on
// them, use the Confluent wire format:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0, followed by the schema ID, then the
// serialized payload. This format is compatible with all Confluent tools.
//
// Schema Caching:
//
// Client caches schema text by ID, and registered schema IDs by subject,
// schema type and schema text, to minimize network calls to the Schema
// Registry. GetLatestSchema and CheckCompatibility always call the registry.
// Caches are thread-safe and maintained in-memory for the lifetime of the
// client.
//
// For the design of this package and of Service, see DESIGN.md at the
// repository root.
package schema_registry
