package avro

import (
	"encoding/json"
	"testing"
)

func TestSanitize_StripsNamespaceFromInlineName(t *testing.T) {
	input := `{"type":"record","name":"com.acme.Widget","fields":[{"name":"id","type":"string"}]}`
	out, err := Sanitize([]byte(input))
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("canonical output is not valid JSON: %v", err)
	}
	if got["name"] != "Widget" {
		t.Errorf("name = %v, want Widget", got["name"])
	}
}

func TestSanitize_RecordMissingFieldsIsInvalid(t *testing.T) {
	input := `{"type":"record","name":"R"}`
	_, err := Sanitize([]byte(input))
	if err == nil {
		t.Fatal("expected schema_invalid error for record missing fields")
	}
	if _, ok := err.(*SchemaInvalidError); !ok {
		t.Errorf("expected *SchemaInvalidError, got %T", err)
	}
}

func TestSanitize_TrailingGarbageIsInvalid(t *testing.T) {
	input := `"string" garbage`
	_, err := Sanitize([]byte(input))
	if err == nil {
		t.Fatal("expected schema_invalid error for trailing garbage")
	}
	serr, ok := err.(*SchemaInvalidError)
	if !ok {
		t.Fatalf("expected *SchemaInvalidError, got %T", err)
	}
	if !serr.HasOffset {
		t.Errorf("expected trailing-garbage error to carry a byte offset")
	}
}

func TestSanitize_EmptyNameIsInvalid(t *testing.T) {
	input := `{"type":"record","name":"","fields":[]}`
	if _, err := Sanitize([]byte(input)); err == nil {
		t.Fatal("expected schema_invalid error for empty name")
	}
}

func TestSanitize_NonRecordTypesArePassThrough(t *testing.T) {
	// The sanitizer only specially handles "record"; enum/fixed/array/map
	// are left alone, even though a missing required member (here,
	// "symbols") would be rejected later by Build, not here.
	input := `{"type":"enum","name":"com.acme.Suit"}`
	out, err := Sanitize([]byte(input))
	if err != nil {
		t.Fatalf("Sanitize returned error for non-record type: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("canonical output is not valid JSON: %v", err)
	}
	if got["name"] != "Suit" {
		t.Errorf("name = %v, want Suit (name stripping still applies)", got["name"])
	}
	if _, hasSymbols := got["symbols"]; hasSymbols {
		t.Errorf("did not expect a symbols member to be synthesized")
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	input := `{"type":"record","name":"ns.R","fields":[{"name":"a","type":"int"},{"name":"b","type":["null","string"],"default":null}]}`
	once, err := Sanitize([]byte(input))
	if err != nil {
		t.Fatalf("first Sanitize failed: %v", err)
	}
	twice, err := Sanitize(once)
	if err != nil {
		t.Fatalf("second Sanitize failed: %v", err)
	}
	if string(once) != string(twice) {
		t.Errorf("Sanitize is not idempotent:\n once = %s\n twice = %s", once, twice)
	}
}

func TestSanitize_NestedRecordFieldsAreWalked(t *testing.T) {
	input := `{"type":"record","name":"Outer","fields":[
		{"name":"inner","type":{"type":"record","name":"ns.Inner","fields":[{"name":"x","type":"int"}]}}
	]}`
	out, err := Sanitize([]byte(input))
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}
	var got struct {
		Fields []struct {
			Type struct {
				Name string `json:"name"`
			} `json:"type"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("canonical output is not valid JSON: %v", err)
	}
	if len(got.Fields) != 1 || got.Fields[0].Type.Name != "Inner" {
		t.Errorf("nested record name was not sanitized: %+v", got)
	}
}

func TestSanitize_MalformedJSONReportsOffset(t *testing.T) {
	_, err := Sanitize([]byte(`{"type": `))
	if err == nil {
		t.Fatal("expected schema_invalid for malformed JSON")
	}
	serr, ok := err.(*SchemaInvalidError)
	if !ok {
		t.Fatalf("expected *SchemaInvalidError, got %T", err)
	}
	if !serr.HasOffset {
		t.Errorf("expected a byte offset on malformed JSON")
	}
}
