package avro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/fastjson"
)

// Sanitize parses text as a single JSON document, rewrites it into the
// registry's canonical form, and re-serializes it. It is grounded on
// avro.cc's sanitize/sanitize_name/sanitize_record/sanitize_avro_type: a
// document-order walk that strips namespace prefixes from inline "name"
// members and enforces that any object whose "type" is the string
// "record" also carries a "fields" array. Every other "type" string,
// including enum/fixed/array/map/union, is pass-through at this layer —
// deliberately: those kinds are validated later by Build, not here.
func Sanitize(text []byte) ([]byte, error) {
	if err := checkStrictSingleValue(text); err != nil {
		return nil, err
	}

	root, err := fastjson.ParseBytes(text)
	if err != nil {
		return nil, invalidAtOffset(0, "invalid JSON: %v", err)
	}

	var buf bytes.Buffer
	if err := sanitizeValue(root, "$", &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkStrictSingleValue rejects malformed JSON and trailing garbage,
// reporting the byte offset of the problem the way the original's
// rapidjson parser (kParseStopWhenDoneFlag) does. It uses
// encoding/json's decoder purely to obtain a standard-library byte
// offset on error; the actual DOM used for sanitization is fastjson's,
// which preserves member order (see SPEC_FULL.md §4.1 for why RFC 8785/JCS
// sorted-key canonicalization, as used for example in
// openbindings-openbindings-go/canonicaljson, is the wrong technique
// here).
func checkStrictSingleValue(text []byte) error {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var first interface{}
	if err := dec.Decode(&first); err != nil {
		if serr, ok := err.(*json.SyntaxError); ok {
			return invalidAtOffset(int(serr.Offset), "malformed schema JSON: %v", err)
		}
		return invalidAtOffset(0, "malformed schema JSON: %v", err)
	}

	var extra interface{}
	if err := dec.Decode(&extra); err != io.EOF {
		offset := dec.InputOffset()
		if err == nil {
			return invalidAtOffset(int(offset), "trailing garbage after schema")
		}
		return invalidAtOffset(int(offset), "trailing garbage after schema: %v", err)
	}
	return nil
}

func sanitizeValue(v *fastjson.Value, path string, buf *bytes.Buffer) error {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return invalidAt(path, "expected object: %v", err)
		}
		return sanitizeObject(obj, path, buf)
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return invalidAt(path, "expected array: %v", err)
		}
		buf.WriteByte('[')
		for i, elem := range arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := sanitizeValue(elem, fmt.Sprintf("%s[%d]", path, i), buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return writeScalar(v, buf)
	}
}

// sanitizeObject walks one JSON object in document order, rewriting
// "name" and recursing into "type" (and, for a record, into "fields")
// the way avro.cc's sanitize(object) does. Every other member is
// passed through verbatim, including
// "items"/"values"/"symbols" — this package faithfully reproduces the
// original's narrower-than-expected recursion (see spec's Design Notes
// Open Question) rather than generalizing it.
func sanitizeObject(obj *fastjson.Object, path string, buf *bytes.Buffer) error {
	isRecord := false
	if typeVal := obj.Get("type"); typeVal != nil && typeVal.Type() == fastjson.TypeString {
		isRecord = typeVal.String() == "record"
	}
	if isRecord {
		fieldsVal := obj.Get("fields")
		if fieldsVal == nil || fieldsVal.Type() != fastjson.TypeArray {
			return invalidAt(path, `record is missing a "fields" array`)
		}
	}

	buf.WriteByte('{')
	first := true
	var visitErr error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if visitErr != nil {
			return
		}
		k := string(key)
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeQuoted(buf, k)
		buf.WriteByte(':')

		memberPath := path + "." + k
		switch {
		case k == "name":
			visitErr = sanitizeName(v, memberPath, buf)
		case k == "type", k == "fields" && isRecord:
			visitErr = sanitizeValue(v, memberPath, buf)
		default:
			buf.Write(v.MarshalTo(nil))
		}
	})
	if visitErr != nil {
		return visitErr
	}
	buf.WriteByte('}')
	return nil
}

// sanitizeName enforces that a "name" member is a non-empty string and
// rewrites it to its final dot-separated segment, collapsing an
// accidentally namespaced inline name such as "com.acme.Widget" down to
// "Widget".
func sanitizeName(v *fastjson.Value, path string, buf *bytes.Buffer) error {
	if v.Type() != fastjson.TypeString {
		return invalidAt(path, `"name" must be a string`)
	}
	name := v.String()
	if name == "" {
		return invalidAt(path, `"name" must not be empty`)
	}
	writeQuoted(buf, lastSegment(name))
	return nil
}

func writeScalar(v *fastjson.Value, buf *bytes.Buffer) error {
	switch v.Type() {
	case fastjson.TypeString:
		writeQuoted(buf, v.String())
		return nil
	case fastjson.TypeNumber:
		return writeNumber(v, buf)
	case fastjson.TypeTrue:
		buf.WriteString("true")
		return nil
	case fastjson.TypeFalse:
		buf.WriteString("false")
		return nil
	case fastjson.TypeNull:
		buf.WriteString("null")
		return nil
	default:
		return fmt.Errorf("avro: unreachable fastjson type %v", v.Type())
	}
}

func writeNumber(v *fastjson.Value, buf *bytes.Buffer) error {
	if i, err := v.Int64(); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := v.Float64()
	if err != nil {
		return fmt.Errorf("avro: invalid number: %w", err)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

// writeQuoted appends s to buf as a JSON string literal. encoding/json
// is used here only for its escaping table; there is no parsing
// involved.
func writeQuoted(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
