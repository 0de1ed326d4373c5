package avro

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// builder holds the state threaded through one Build call: the arena of
// named types built so far (for stable ArenaIndex values consumed by
// Compatible's visited-pair set) and the flat registry of qualified
// names declared anywhere in the schema, since an Avro named_ref can
// resolve to any named type declared earlier in the same document, not
// only one in its immediate lexical ancestor.
type builder struct {
	arena    []*SchemaNode
	registry map[QualifiedName]*SchemaNode
}

// Build parses canonical (already-Sanitized) Avro schema JSON text into a
// *SchemaNode tree, implementing Avro's JSON schema grammar: primitives by
// string tag, complex types as objects carrying a "type" member plus
// kind-specific members, unions as JSON arrays of branch schemas, and
// named types (record/enum/fixed) registering their qualified name so
// later string occurrences resolve as named_ref.
func Build(canonicalText []byte) (*SchemaNode, error) {
	root, err := fastjson.ParseBytes(canonicalText)
	if err != nil {
		return nil, invalidAtOffset(0, "invalid JSON: %v", err)
	}

	b := &builder{registry: make(map[QualifiedName]*SchemaNode)}
	return b.build(root, "", "$")
}

// build constructs the node for v. enclosingNamespace is the namespace a
// nested named type inherits when it does not declare its own.
func (b *builder) build(v *fastjson.Value, enclosingNamespace, path string) (*SchemaNode, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return b.buildNamedOrPrimitive(v.String(), enclosingNamespace, path)
	case fastjson.TypeArray:
		return b.buildUnion(v, enclosingNamespace, path)
	case fastjson.TypeObject:
		return b.buildObject(v, enclosingNamespace, path)
	default:
		return nil, invalidAt(path, "expected a schema (string, object, or array), got a scalar")
	}
}

func (b *builder) buildNamedOrPrimitive(tag, enclosingNamespace, path string) (*SchemaNode, error) {
	if kind, ok := primitiveKinds[tag]; ok {
		return &SchemaNode{Kind: kind}, nil
	}

	qn := resolveReferenceName(tag, enclosingNamespace)
	target, ok := b.registry[qn]
	if !ok {
		return nil, invalidAt(path, "unresolved named reference %q", qn.Full())
	}
	return &SchemaNode{Kind: KindNamedRef, RefName: qn, Ref: target}, nil
}

// resolveReferenceName qualifies a bare reference the way Avro does: a
// name containing a '.' is already fully qualified; otherwise it is
// resolved against the enclosing namespace.
func resolveReferenceName(tag, enclosingNamespace string) QualifiedName {
	ns, name := splitQualified(tag)
	if ns != "" {
		return QualifiedName{Namespace: ns, Name: name}
	}
	return QualifiedName{Namespace: enclosingNamespace, Name: name}
}

func (b *builder) buildUnion(v *fastjson.Value, enclosingNamespace, path string) (*SchemaNode, error) {
	arr, err := v.Array()
	if err != nil {
		return nil, invalidAt(path, "expected array: %v", err)
	}

	branches := make([]*SchemaNode, 0, len(arr))
	for i, elem := range arr {
		branch, err := b.build(elem, enclosingNamespace, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if branch.resolved().Kind == KindUnion {
			return nil, invalidAt(path, "union may not directly contain another union")
		}
		branches = append(branches, branch)
	}
	return &SchemaNode{Kind: KindUnion, Branches: branches}, nil
}

func (b *builder) buildObject(v *fastjson.Value, enclosingNamespace, path string) (*SchemaNode, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, invalidAt(path, "expected object: %v", err)
	}

	typeVal := obj.Get("type")
	if typeVal == nil {
		return nil, invalidAt(path, `object schema is missing a "type" member`)
	}

	// {"type": <nested schema>} wrapper form: the type itself is the
	// schema, any sibling members (logicalType, etc.) are ignored.
	if typeVal.Type() != fastjson.TypeString {
		return b.build(typeVal, enclosingNamespace, path+".type")
	}

	tag := typeVal.String()
	if kind, ok := primitiveKinds[tag]; ok {
		return &SchemaNode{Kind: kind}, nil
	}

	switch tag {
	case "record":
		return b.buildRecord(obj, enclosingNamespace, path)
	case "enum":
		return b.buildEnum(obj, enclosingNamespace, path)
	case "array":
		return b.buildArray(obj, enclosingNamespace, path)
	case "map":
		return b.buildMap(obj, enclosingNamespace, path)
	case "fixed":
		return b.buildFixed(obj, enclosingNamespace, path)
	default:
		return b.buildNamedOrPrimitive(tag, enclosingNamespace, path)
	}
}

// namedScope resolves the effective qualified name and namespace for a
// record/enum/fixed declaration and rejects a name already declared. It
// does not register anything: the caller does that with register
// (buildRecord before building its fields, so self- and
// mutually-recursive named_ref occurrences inside them resolve).
func (b *builder) namedScope(obj *fastjson.Object, enclosingNamespace, path string) (QualifiedName, string, error) {
	nameVal := obj.Get("name")
	if nameVal == nil || nameVal.Type() != fastjson.TypeString || nameVal.String() == "" {
		return QualifiedName{}, "", invalidAt(path, `named type is missing a non-empty "name"`)
	}
	name := nameVal.String()

	namespace := enclosingNamespace
	if nsVal := obj.Get("namespace"); nsVal != nil {
		if nsVal.Type() != fastjson.TypeString {
			return QualifiedName{}, "", invalidAt(path, `"namespace" must be a string`)
		}
		namespace = nsVal.String()
	}

	ns, local := splitQualified(name)
	if ns != "" {
		namespace = ns
	}
	qn := QualifiedName{Namespace: namespace, Name: local}
	if _, exists := b.registry[qn]; exists {
		return QualifiedName{}, "", invalidAt(path, "duplicate named type %q", qn.Full())
	}
	return qn, namespace, nil
}

func (b *builder) register(node *SchemaNode, qn QualifiedName) {
	node.Name = &qn
	node.ArenaIndex = len(b.arena)
	b.arena = append(b.arena, node)
	b.registry[qn] = node
}

func (b *builder) buildRecord(obj *fastjson.Object, enclosingNamespace, path string) (*SchemaNode, error) {
	qn, namespace, err := b.namedScope(obj, enclosingNamespace, path)
	if err != nil {
		return nil, err
	}

	node := &SchemaNode{Kind: KindRecord}
	b.register(node, qn)

	fieldsVal := obj.Get("fields")
	if fieldsVal == nil || fieldsVal.Type() != fastjson.TypeArray {
		return nil, invalidAt(path, `record %q is missing a "fields" array`, qn.Full())
	}
	fieldsArr, err := fieldsVal.Array()
	if err != nil {
		return nil, invalidAt(path, "invalid fields array: %v", err)
	}

	seen := make(map[string]bool, len(fieldsArr))
	fields := make([]Field, 0, len(fieldsArr))
	for i, fv := range fieldsArr {
		fieldPath := fmt.Sprintf("%s.fields[%d]", path, i)
		f, err := b.buildField(fv, namespace, fieldPath)
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, invalidAt(fieldPath, "duplicate field name %q in record %q", f.Name, qn.Full())
		}
		seen[f.Name] = true
		fields = append(fields, f)
	}
	node.Fields = fields
	return node, nil
}

func (b *builder) buildField(v *fastjson.Value, enclosingNamespace, path string) (Field, error) {
	if v.Type() != fastjson.TypeObject {
		return Field{}, invalidAt(path, "field definition must be an object")
	}
	obj, err := v.Object()
	if err != nil {
		return Field{}, invalidAt(path, "invalid field object: %v", err)
	}

	nameVal := obj.Get("name")
	if nameVal == nil || nameVal.Type() != fastjson.TypeString || nameVal.String() == "" {
		return Field{}, invalidAt(path, `field is missing a non-empty "name"`)
	}

	typeVal := obj.Get("type")
	if typeVal == nil {
		return Field{}, invalidAt(path, `field %q is missing a "type"`, nameVal.String())
	}
	fieldType, err := b.build(typeVal, enclosingNamespace, path+".type")
	if err != nil {
		return Field{}, err
	}

	var def *DefaultValue
	if defVal := obj.Get("default"); defVal != nil {
		def = &DefaultValue{Value: jsonToGo(defVal)}
	}

	return Field{Name: nameVal.String(), Type: fieldType, Default: def}, nil
}

func (b *builder) buildEnum(obj *fastjson.Object, enclosingNamespace, path string) (*SchemaNode, error) {
	qn, _, err := b.namedScope(obj, enclosingNamespace, path)
	if err != nil {
		return nil, err
	}

	symbolsVal := obj.Get("symbols")
	if symbolsVal == nil || symbolsVal.Type() != fastjson.TypeArray {
		return nil, invalidAt(path, `enum %q is missing a "symbols" array`, qn.Full())
	}
	symbolsArr, err := symbolsVal.Array()
	if err != nil {
		return nil, invalidAt(path, "invalid symbols array: %v", err)
	}

	seen := make(map[string]bool, len(symbolsArr))
	symbols := make([]string, 0, len(symbolsArr))
	for i, sv := range symbolsArr {
		if sv.Type() != fastjson.TypeString {
			return nil, invalidAt(fmt.Sprintf("%s.symbols[%d]", path, i), "enum symbol must be a string")
		}
		s := sv.String()
		if seen[s] {
			return nil, invalidAt(path, "duplicate enum symbol %q in enum %q", s, qn.Full())
		}
		seen[s] = true
		symbols = append(symbols, s)
	}

	var def *string
	if defVal := obj.Get("default"); defVal != nil && defVal.Type() == fastjson.TypeString {
		s := defVal.String()
		def = &s
	}

	node := &SchemaNode{Kind: KindEnum, Symbols: symbols, EnumDefault: def}
	b.register(node, qn)
	return node, nil
}

func (b *builder) buildArray(obj *fastjson.Object, enclosingNamespace, path string) (*SchemaNode, error) {
	itemsVal := obj.Get("items")
	if itemsVal == nil {
		return nil, invalidAt(path, `array type is missing "items"`)
	}
	items, err := b.build(itemsVal, enclosingNamespace, path+".items")
	if err != nil {
		return nil, err
	}
	return &SchemaNode{Kind: KindArray, Items: items}, nil
}

func (b *builder) buildMap(obj *fastjson.Object, enclosingNamespace, path string) (*SchemaNode, error) {
	valuesVal := obj.Get("values")
	if valuesVal == nil {
		return nil, invalidAt(path, `map type is missing "values"`)
	}
	values, err := b.build(valuesVal, enclosingNamespace, path+".values")
	if err != nil {
		return nil, err
	}
	return &SchemaNode{Kind: KindMap, Values: values}, nil
}

func (b *builder) buildFixed(obj *fastjson.Object, enclosingNamespace, path string) (*SchemaNode, error) {
	qn, _, err := b.namedScope(obj, enclosingNamespace, path)
	if err != nil {
		return nil, err
	}

	sizeVal := obj.Get("size")
	if sizeVal == nil || sizeVal.Type() != fastjson.TypeNumber {
		return nil, invalidAt(path, `fixed %q is missing a numeric "size"`, qn.Full())
	}
	size, err := sizeVal.Int64()
	if err != nil || size < 0 {
		return nil, invalidAt(path, "fixed size must be a non-negative integer")
	}

	node := &SchemaNode{Kind: KindFixed, FixedSize: int(size)}
	b.register(node, qn)
	return node, nil
}

// jsonToGo converts a fastjson.Value into a plain Go value for storage as
// a default. The only property Compatible relies on is nilness (the
// null-vs-absent distinction lives in whether DefaultValue itself is
// nil, handled by the caller); this conversion exists so the original
// default is still available to callers that want to inspect it.
func jsonToGo(v *fastjson.Value) interface{} {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil
	case fastjson.TypeString:
		return v.String()
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := make([]interface{}, len(arr))
		for i, e := range arr {
			out[i] = jsonToGo(e)
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]interface{})
		obj.Visit(func(key []byte, val *fastjson.Value) {
			out[string(key)] = jsonToGo(val)
		})
		return out
	default:
		return nil
	}
}
