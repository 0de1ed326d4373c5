package avro

import "fmt"

// SchemaInvalidError is the one error category the core exposes. It
// carries a human-readable message plus, where available, a byte offset
// into the original text or a member path describing where the problem
// was found.
type SchemaInvalidError struct {
	Message string
	Offset  int
	Path    string

	// HasOffset distinguishes "offset 0 is meaningful" from "no offset
	// was available for this error".
	HasOffset bool
}

func (e *SchemaInvalidError) Error() string {
	switch {
	case e.HasOffset && e.Path != "":
		return fmt.Sprintf("schema_invalid: %s (at %s, offset %d)", e.Message, e.Path, e.Offset)
	case e.HasOffset:
		return fmt.Sprintf("schema_invalid: %s (offset %d)", e.Message, e.Offset)
	case e.Path != "":
		return fmt.Sprintf("schema_invalid: %s (at %s)", e.Message, e.Path)
	default:
		return fmt.Sprintf("schema_invalid: %s", e.Message)
	}
}

func invalidAt(path, format string, args ...interface{}) *SchemaInvalidError {
	return &SchemaInvalidError{Message: fmt.Sprintf(format, args...), Path: path}
}

func invalidAtOffset(offset int, format string, args ...interface{}) *SchemaInvalidError {
	return &SchemaInvalidError{Message: fmt.Sprintf(format, args...), Offset: offset, HasOffset: true}
}
