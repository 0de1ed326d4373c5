package avro

import "testing"

func mustBuild(t *testing.T, schemaJSON string) *SchemaNode {
	t.Helper()
	canonical, err := Sanitize([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("Sanitize(%s) failed: %v", schemaJSON, err)
	}
	node, err := Build(canonical)
	if err != nil {
		t.Fatalf("Build(%s) failed: %v", schemaJSON, err)
	}
	return node
}

func TestCompatible_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		reader string
		writer string
		want   bool
	}{
		{"int/int", `"int"`, `"int"`, true},
		{"long/int promotes", `"long"`, `"int"`, true},
		{"int/long does not promote", `"int"`, `"long"`, false},
		{
			"record with extra defaulted field",
			`{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"b","type":"int","default":0}]}`,
			`{"type":"record","name":"R","fields":[{"name":"a","type":"int"}]}`,
			true,
		},
		{
			"record with extra field and no default",
			`{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"b","type":"int"}]}`,
			`{"type":"record","name":"R","fields":[{"name":"a","type":"int"}]}`,
			false,
		},
		{
			"enum with default absorbs extra writer symbol",
			`{"type":"enum","name":"E","symbols":["X","Y"],"default":"X"}`,
			`{"type":"enum","name":"E","symbols":["X","Y","Z"]}`,
			true,
		},
		{
			"enum without default rejects extra writer symbol",
			`{"type":"enum","name":"E","symbols":["X","Y"]}`,
			`{"type":"enum","name":"E","symbols":["X","Y","Z"]}`,
			false,
		},
		{"union absorbs plain string", `["null","string"]`, `"string"`, true},
	}

	for _, tc := range cases {
		reader := mustBuild(t, tc.reader)
		writer := mustBuild(t, tc.writer)
		got := Compatible(reader, writer)
		if got != tc.want {
			t.Errorf("%s: Compatible(reader, writer) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCompatible_Reflexivity(t *testing.T) {
	schemas := []string{
		`"int"`,
		`"string"`,
		`{"type":"record","name":"R","fields":[{"name":"a","type":"int"}]}`,
		`{"type":"enum","name":"E","symbols":["X","Y"]}`,
		`{"type":"array","items":"long"}`,
		`{"type":"map","values":"boolean"}`,
		`["null","string"]`,
		`{"type":"fixed","name":"F","size":16}`,
	}
	for _, schema := range schemas {
		node := mustBuild(t, schema)
		if !Compatible(node, node) {
			t.Errorf("Compatible(%s, %s) = false, want true", schema, schema)
		}
	}
}

func TestCompatible_UnionAbsorption(t *testing.T) {
	s := mustBuild(t, `"string"`)
	other := mustBuild(t, `"null"`)
	union := &SchemaNode{Kind: KindUnion, Branches: []*SchemaNode{s, other}}
	if !Compatible(union, s) {
		t.Errorf("Compatible(union{s, other}, s) = false, want true")
	}
}

func TestCompatible_FieldAdditionWithDefault(t *testing.T) {
	writer := mustBuild(t, `{"type":"record","name":"R","fields":[{"name":"a","type":"int"}]}`)

	withDefault := mustBuild(t, `{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"b","type":"string","default":"x"}]}`)
	if !Compatible(withDefault, writer) {
		t.Errorf("reader with defaulted extra field should be compatible")
	}

	withoutDefault := mustBuild(t, `{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"b","type":"string"}]}`)
	if Compatible(withoutDefault, writer) {
		t.Errorf("reader with non-defaulted extra field should not be compatible")
	}
}

func TestCompatible_NullDefaultIsNotASatisfyingDefault(t *testing.T) {
	writer := mustBuild(t, `{"type":"record","name":"R","fields":[{"name":"a","type":"int"}]}`)
	reader := mustBuild(t, `{"type":"record","name":"R","fields":[{"name":"a","type":"int"},{"name":"b","type":["null","string"],"default":null}]}`)

	if Compatible(reader, writer) {
		t.Errorf("an explicit null default must not satisfy a missing writer field")
	}
}

func TestCompatible_RecursiveSchemasTerminate(t *testing.T) {
	schema := `{"type":"record","name":"Node","fields":[
		{"name":"value","type":"int"},
		{"name":"next","type":["null","Node"]}
	]}`
	reader := mustBuild(t, schema)
	writer := mustBuild(t, schema)

	// A missing visited-pair set would make this call recurse forever
	// rather than return; simply returning is the assertion.
	if !Compatible(reader, writer) {
		t.Errorf("expected self-referential identical schemas to be compatible")
	}
}

func TestCompatible_DifferentKindsNeitherUnion(t *testing.T) {
	cases := []struct {
		reader, writer string
		want           bool
	}{
		{`"string"`, `"bytes"`, true},
		{`"bytes"`, `"string"`, true},
		{`"double"`, `"float"`, true},
		{`"float"`, `"double"`, false},
		{`"boolean"`, `"int"`, false},
	}
	for _, tc := range cases {
		reader := mustBuild(t, tc.reader)
		writer := mustBuild(t, tc.writer)
		if got := Compatible(reader, writer); got != tc.want {
			t.Errorf("Compatible(%s, %s) = %v, want %v", tc.reader, tc.writer, got, tc.want)
		}
	}
}

func TestCompatible_FixedLengthMustMatch(t *testing.T) {
	reader := mustBuild(t, `{"type":"fixed","name":"F","size":16}`)
	writer := mustBuild(t, `{"type":"fixed","name":"F","size":8}`)
	if Compatible(reader, writer) {
		t.Errorf("fixed types of different length must not be compatible")
	}
}
