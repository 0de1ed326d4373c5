package schema_registry

import (
	"testing"

	"github.com/linkedin/goavro/v2"

	"github.com/Aleph-Alpha/std/v1/avro"
)

const personSchema = `{"type":"record","name":"com.acme.Person","fields":[
	{"name":"name","type":"string"},
	{"name":"age","type":"int","default":0}
]}`

func TestSanitizeAndBuild_ValidSchema(t *testing.T) {
	_, node, err := sanitizeAndBuild(personSchema)
	if err != nil {
		t.Fatalf("sanitizeAndBuild failed: %v", err)
	}
	if node.Kind != avro.KindRecord {
		t.Errorf("Kind = %v, want record", node.Kind)
	}
	if node.Name == nil || node.Name.Name != "Person" {
		t.Errorf("Name = %v, want local name Person (namespace stripped from the inline name)", node.Name)
	}
}

func TestSanitizeAndBuild_InvalidSchemaRejected(t *testing.T) {
	_, _, err := sanitizeAndBuild(`{"type":"record","name":"Bad"}`)
	if err == nil {
		t.Fatal("expected schema_invalid for a record missing fields")
	}
}

// TestCanonicalSchemaCompilesWithGoavro confirms the canonical text the
// engine emits is accepted by the codec library v1/kafka's serializer
// compiles at runtime, so a schema this registry accepts is also usable
// for actually encoding records.
func TestCanonicalSchemaCompilesWithGoavro(t *testing.T) {
	canonical, err := avro.Sanitize([]byte(personSchema))
	if err != nil {
		t.Fatalf("Sanitize failed: %v", err)
	}
	if _, err := goavro.NewCodec(string(canonical)); err != nil {
		t.Fatalf("goavro rejected canonical schema: %v", err)
	}
}

func TestCheckCompatibleWith_Modes(t *testing.T) {
	existingInt := mustBuildNode(t, `"int"`)
	candidateLong := mustBuildNode(t, `"long"`)

	cases := []struct {
		name string
		mode CompatibilityMode
		want bool
	}{
		{"none always passes", CompatibilityNone, true},
		{"backward: long reads int", CompatibilityBackward, true},
		{"forward: int cannot read long", CompatibilityForward, false},
		{"full requires both directions", CompatibilityFull, false},
	}

	for _, tc := range cases {
		got := checkCompatibleWith(tc.mode, candidateLong, existingInt)
		if got != tc.want {
			t.Errorf("%s: checkCompatibleWith = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func mustBuildNode(t *testing.T, schemaJSON string) *avro.SchemaNode {
	t.Helper()
	canonical, err := avro.Sanitize([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("Sanitize(%s) failed: %v", schemaJSON, err)
	}
	node, err := avro.Build(canonical)
	if err != nil {
		t.Fatalf("Build(%s) failed: %v", schemaJSON, err)
	}
	return node
}
