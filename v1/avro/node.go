package avro

// DefaultValue wraps a record field's default so that "no default present"
// (a nil *DefaultValue) can be distinguished from "default is JSON null"
// (a non-nil *DefaultValue whose Value is nil). Compatibility treats both
// as non-satisfying, per the asymmetry the engine is required to
// preserve: only a genuinely non-null default value satisfies a missing
// writer field. Enum defaults are held separately in
// SchemaNode.EnumDefault.
type DefaultValue struct {
	Value interface{}
}

// IsNonNull reports whether d represents an actual, non-null default.
func (d *DefaultValue) IsNonNull() bool {
	return d != nil && d.Value != nil
}

// Field is one member of a record, in declaration order.
type Field struct {
	Name    string
	Type    *SchemaNode
	Default *DefaultValue
}

// SchemaNode is a node in the Avro schema tree. Exactly the fields
// relevant to Kind are populated; the rest are zero. A tree is immutable
// once returned by Build and may be shared across concurrent Compatible
// calls.
type SchemaNode struct {
	Kind SchemaKind

	// Name identifies record/enum/fixed types and is nil for everything
	// else. ArenaIndex is its stable index into the arena the tree was
	// built in, used by Compatible's visited-pair termination set.
	Name       *QualifiedName
	ArenaIndex int

	// record
	Fields []Field

	// enum
	Symbols     []string
	EnumDefault *string

	// array
	Items *SchemaNode

	// map
	Values *SchemaNode

	// union
	Branches []*SchemaNode

	// fixed
	FixedSize int

	// named_ref: the resolved target. RefName is retained for
	// diagnostics; Ref is never nil on a successfully built tree.
	RefName QualifiedName
	Ref     *SchemaNode
}

// resolved follows named_ref indirection to the underlying named type, so
// callers that care about structural kind (record, enum, fixed) don't have
// to special-case KindNamedRef themselves.
func (n *SchemaNode) resolved() *SchemaNode {
	for n != nil && n.Kind == KindNamedRef {
		n = n.Ref
	}
	return n
}

// hasNonNullDefault reports whether the field carries a default value
// that is something other than JSON null.
func (f Field) hasNonNullDefault() bool {
	return f.Default.IsNonNull()
}
