package avro

// SchemaKind tags the shape of a SchemaNode.
type SchemaKind int

const (
	KindNull SchemaKind = iota
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBytes
	KindString
	KindRecord
	KindEnum
	KindArray
	KindMap
	KindUnion
	KindFixed
	KindNamedRef
)

func (k SchemaKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindFixed:
		return "fixed"
	case KindNamedRef:
		return "named_ref"
	default:
		return "unknown"
	}
}

// primitiveKinds maps the JSON type tag strings recognized by Avro's
// primitive grammar to their SchemaKind.
var primitiveKinds = map[string]SchemaKind{
	"null":    KindNull,
	"boolean": KindBoolean,
	"int":     KindInt,
	"long":    KindLong,
	"float":   KindFloat,
	"double":  KindDouble,
	"bytes":   KindBytes,
	"string":  KindString,
}

// isNumeric reports whether k is one of Avro's numeric primitive kinds.
func isNumeric(k SchemaKind) bool {
	switch k {
	case KindInt, KindLong, KindFloat, KindDouble:
		return true
	default:
		return false
	}
}

// numericRank orders numeric kinds by widening direction: a writer of rank
// r can be read by any reader of rank >= r.
var numericRank = map[SchemaKind]int{
	KindInt:    0,
	KindLong:   1,
	KindFloat:  2,
	KindDouble: 3,
}
