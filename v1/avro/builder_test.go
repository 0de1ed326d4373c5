package avro

import "testing"

func TestBuild_PrimitiveTag(t *testing.T) {
	node, err := Build([]byte(`"long"`))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if node.Kind != KindLong {
		t.Errorf("Kind = %v, want %v", node.Kind, KindLong)
	}
}

func TestBuild_RecordWithFieldsAndDefault(t *testing.T) {
	node := mustBuild(t, `{"type":"record","name":"ns.R","fields":[
		{"name":"a","type":"int"},
		{"name":"b","type":"int","default":0}
	]}`)
	if node.Kind != KindRecord {
		t.Fatalf("Kind = %v, want record", node.Kind)
	}
	// mustBuild runs Sanitize first, which strips "ns.R" down to "R".
	if node.Name == nil || node.Name.Full() != "R" {
		t.Errorf("Name = %v, want R", node.Name)
	}
	if len(node.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(node.Fields))
	}
	if node.Fields[1].Default == nil || !node.Fields[1].Default.IsNonNull() {
		t.Errorf("field b should carry a non-null default of 0")
	}
}

func TestBuild_DuplicateFieldNameIsInvalid(t *testing.T) {
	schema := `{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"a","type":"string"}]}`
	if _, err := Build([]byte(schema)); err == nil {
		t.Fatal("expected schema_invalid for duplicate field name")
	}
}

func TestBuild_DuplicateEnumSymbolIsInvalid(t *testing.T) {
	schema := `{"type":"enum","name":"E","symbols":["X","X"]}`
	if _, err := Build([]byte(schema)); err == nil {
		t.Fatal("expected schema_invalid for duplicate enum symbol")
	}
}

func TestBuild_NestedUnionIsInvalid(t *testing.T) {
	schema := `["null",["string","int"]]`
	if _, err := Build([]byte(schema)); err == nil {
		t.Fatal("expected schema_invalid for nested union")
	}
}

func TestBuild_UnresolvedNamedRefIsInvalid(t *testing.T) {
	schema := `{"type":"record","name":"R","fields":[{"name":"a","type":"DoesNotExist"}]}`
	if _, err := Build([]byte(schema)); err == nil {
		t.Fatal("expected schema_invalid for unresolved named reference")
	}
}

func TestBuild_SelfReferentialRecordResolves(t *testing.T) {
	schema := `{"type":"record","name":"Node","fields":[
		{"name":"value","type":"int"},
		{"name":"next","type":["null","Node"]}
	]}`
	node, err := Build([]byte(schema))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	next := node.Fields[1].Type
	if next.Kind != KindUnion {
		t.Fatalf("next field should be a union, got %v", next.Kind)
	}
	ref := next.Branches[1]
	if ref.Kind != KindNamedRef {
		t.Fatalf("second branch should be a named_ref, got %v", ref.Kind)
	}
	if ref.Ref != node {
		t.Errorf("named_ref did not resolve back to the enclosing record")
	}
}

func TestBuild_ArrayAndMap(t *testing.T) {
	arr, err := Build([]byte(`{"type":"array","items":"string"}`))
	if err != nil {
		t.Fatalf("Build(array) failed: %v", err)
	}
	if arr.Kind != KindArray || arr.Items.Kind != KindString {
		t.Errorf("unexpected array node: %+v", arr)
	}

	m, err := Build([]byte(`{"type":"map","values":"long"}`))
	if err != nil {
		t.Fatalf("Build(map) failed: %v", err)
	}
	if m.Kind != KindMap || m.Values.Kind != KindLong {
		t.Errorf("unexpected map node: %+v", m)
	}
}

func TestBuild_NamespaceInheritance(t *testing.T) {
	schema := `{"type":"record","name":"Outer","namespace":"com.acme","fields":[
		{"name":"inner","type":{"type":"record","name":"Inner","fields":[{"name":"x","type":"int"}]}}
	]}`
	node, err := Build([]byte(schema))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	inner := node.Fields[0].Type
	if inner.Name == nil || inner.Name.Namespace != "com.acme" {
		t.Errorf("Inner should inherit namespace com.acme, got %v", inner.Name)
	}
}
