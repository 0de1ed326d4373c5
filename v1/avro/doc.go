// Package avro implements the schema normalization and compatibility engine
// underneath the schema registry: sanitizing user-submitted Avro schema
// JSON into a canonical form, building a typed schema tree from it, and
// deciding whether one schema can safely read data written under another.
//
// The package is a pure library. It does no I/O, reads no environment
// variables, and exposes no CLI: every operation is a function from bytes
// (or schema trees) to a result or a *SchemaInvalidError. Sanitize, Build
// and Compatible are safe to call concurrently from multiple goroutines; a
// *SchemaNode returned by Build is immutable and may be shared across any
// number of concurrent Compatible calls without synchronization.
//
// Basic usage:
//
//	canonical, err := avro.Sanitize(submittedJSON)
//	if err != nil {
//		return err // *avro.SchemaInvalidError
//	}
//	reader, err := avro.Build(canonical)
//	if err != nil {
//		return err
//	}
//	if !avro.Compatible(reader, writer) {
//		return fmt.Errorf("schema is not compatible")
//	}
package avro
