package avro

import "strings"

// QualifiedName is an Avro named type's namespace plus local name. Two
// qualified names compare equal iff both components are byte-equal.
type QualifiedName struct {
	Namespace string
	Name      string
}

// Full returns the dot-joined namespace.name form, or just name when the
// namespace is empty.
func (q QualifiedName) Full() string {
	if q.Namespace == "" {
		return q.Name
	}
	return q.Namespace + "." + q.Name
}

// Equal reports whether q and other name the same type.
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.Namespace == other.Namespace && q.Name == other.Name
}

// splitQualified splits a dotted full name into namespace and local name,
// the way a bare "com.acme.Widget" reference is resolved against the
// enclosing scope. An unqualified name yields an empty namespace.
func splitQualified(full string) (namespace, name string) {
	idx := strings.LastIndex(full, ".")
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}

// lastSegment returns the text after the final '.' in s, or s itself if s
// has no '.'. This is the Sanitizer's name-stripping rule.
func lastSegment(s string) string {
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}
