// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func mustUnmarshal(t *testing.T, data []byte, ptr any) {
	t.Helper()
	if err := json.Unmarshal(data, ptr); err != nil {
		t.Fatal(err)
	}
}

// json returns the schema in json format.
func (s *Schema) json() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<jsonschema.Schema:%v>", err)
	}
	return string(data)
}

// layerSchema is a representative annotated layer object, the shape the
// preparation pipeline leaves behind.
func layerSchema() *Schema {
	return &Schema{
		Type:     "object",
		Title:    "Shape Layer",
		Required: []string{"ty", "ks"},
		Properties: map[string]*Schema{
			"ty": {Const: Ptr(any(4.0))},
			"ks": {Ref: "#/$defs/helpers/transform"},
			"nm": {Type: "string"},
		},
		DocsURL:     "https://docs.example.com/layers/#shape-layer",
		DocsName:    "Layer",
		DisplayName: "Shape Layer",
		KnownProps:  []string{"ks", "nm", "ty"},
	}
}

func TestMarshalJSONConsistency(t *testing.T) {
	// MarshalJSON uses a value receiver so encoding is identical however
	// the Schema is stored (golang/go#22967, golang/go#33993,
	// golang/go#55890).
	s := *layerSchema()
	want, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Pointer", func(t *testing.T) {
		got, err := json.Marshal(&s)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Errorf("pointer marshaling mismatch\ngot:  %s\nwant: %s", got, want)
		}
	})

	t.Run("MapValue", func(t *testing.T) {
		m := map[string]Schema{"shape-layer": s}
		got, err := json.Marshal(m["shape-layer"])
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Errorf("map value marshaling mismatch\ngot:  %s\nwant: %s", got, want)
		}
	})
}

func TestGoRoundTrip(t *testing.T) {
	// Go representation -> JSON -> Go representation, for the schema
	// shapes this repository produces and consumes.
	for _, s := range []*Schema{
		layerSchema(),
		{Type: "number", Minimum: Ptr(0.0)},
		{Type: "string", Pattern: `^[0-9.]+$`},
		{Types: []string{"integer", "string"}},
		{Const: Ptr(any("rc"))},
		{Enum: []any{0.0, 1.0}},
		{Items: &Schema{Ref: "#/$defs/properties/base-keyframe"}},
		{AllOf: []*Schema{{Ref: "#/$defs/layers/base-layer"}, {Type: "object"}}},
		{AdditionalProperties: falseSchema()},
		{TyOneOf: TyOneOf{"4": "root#/$defs/layers/shape-layer"}},
		{PropOneOf: []*Schema{{Type: "object"}}},
		{SplitPosOneOf: &SplitPosOneOf{True: "root#/a", False: "root#/b"}},
		{AssetOneOf: "root"},
		{EnumOneOf: []EnumValue{{Value: 0.0, Title: "Normal"}, {Value: 1.0}}},
		{Keyframe: true},
		{ReferenceAsset: true},
		{KnownProps: []string{"a", "k"}},
		{Extra: map[string]any{"x-custom": "value"}},
	} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		var got Schema
		mustUnmarshal(t, data, &got)
		if diff := cmp.Diff(s, &got); diff != "" {
			t.Errorf("round trip of %s mismatch (-want +got):\n%s", data, diff)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	// JSON text -> Go representation -> JSON text.
	for _, tt := range []struct {
		in   string
		want string // if non-empty, the expected output
	}{
		{`true`, ""},
		{`false`, ""},
		{`{"type":"object","required":["ty"]}`, ""},
		{`{"properties":{"ty":{"const":4}}}`, ""},
		{`{"type":"array","items":{"$ref":"#/$defs/properties/base-keyframe"}}`, ""},
		// title marshals before const, following field order.
		{`{"oneOf":[{"const":0,"title":"Normal"},{"const":1}]}`,
			`{"oneOf":[{"title":"Normal","const":0},{"const":1}]}`},
		{`{"_docs":"https://docs.example.com/layers/","_name":"Shape Layer.ks"}`, ""},
		{`{"ty_oneof":{"4":"root#/$defs/layers/shape-layer"}}`, ""},
		{`{"splitpos_oneof":{"true":"root#/a","false":"root#/b"}}`, ""},
		{`{"warn_extra_props":["a","k"],"keyframe":true}`, ""},
		// Unknown keywords survive through Extra.
		{`{"x-custom":17}`, ""},
		// An empty schema marshals back to true.
		{`{}`, `true`},
	} {
		var s Schema
		mustUnmarshal(t, []byte(tt.in), &s)
		got := s.json()
		want := tt.want
		if want == "" {
			want = tt.in
		}
		if got != want {
			t.Errorf("%s round-tripped to %s", tt.in, got)
		}
	}
}

func TestBooleanSchemas(t *testing.T) {
	// propindex relies on "additionalProperties": false decoding to a
	// non-nil schema: an explicitly open or closed object is still a
	// declaration.
	var s Schema
	mustUnmarshal(t, []byte(`{"type":"object","additionalProperties":false}`), &s)
	if s.AdditionalProperties == nil {
		t.Fatal("additionalProperties: false decoded to nil")
	}
	if !isFalseSchema(*s.AdditionalProperties) {
		t.Errorf("additionalProperties: false decoded to %s", s.AdditionalProperties.json())
	}

	mustUnmarshal(t, []byte(`{"additionalProperties":true}`), &s)
	if s.AdditionalProperties == nil || !isEmptySchema(*s.AdditionalProperties) {
		t.Error("additionalProperties: true did not decode to the empty schema")
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string // a substring of the expected error
	}{
		{`{"type":3}`, `invalid value for "type"`},
		{`{"minLength":1.5}`, "not an integer value"},
		{`{"minLength":3000000000}`, "out of range"},
	} {
		var s Schema
		err := json.Unmarshal([]byte(tt.in), &s)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("unmarshaling %s: got error %v, want %q", tt.in, err, tt.want)
		}
	}
}

func TestMarshalDispatchConflict(t *testing.T) {
	// A dispatch keyword replaces oneOf; a schema carrying both is a
	// rewrite bug and must not marshal silently.
	s := Schema{
		OneOf:   []*Schema{{Type: "object"}},
		TyOneOf: TyOneOf{"4": "root#/x"},
	}
	if _, err := json.Marshal(s); err == nil {
		t.Fatal("schema with both oneOf and a dispatch keyword marshaled")
	}
}

func TestCloneSchemas(t *testing.T) {
	s := layerSchema()
	s.PropOneOf = []*Schema{{Type: "object"}}
	clone := s.CloneSchemas()

	if clone == s {
		t.Fatal("CloneSchemas returned the receiver")
	}
	if clone.Properties["ty"] == s.Properties["ty"] {
		t.Error("property sub-schema was not cloned")
	}
	if clone.PropOneOf[0] == s.PropOneOf[0] {
		t.Error("dispatch variant was not cloned")
	}
	if diff := cmp.Diff(s.json(), clone.json()); diff != "" {
		t.Errorf("clone differs (-want +got):\n%s", diff)
	}
}

func TestKeywordLookup(t *testing.T) {
	s := &Schema{
		TyOneOf:    TyOneOf{"4": "root#/x"},
		KnownProps: []string{"ty"},
		Keyframe:   true,
		Extra:      map[string]any{"x-custom": "value"},
	}
	for _, name := range []string{"ty_oneof", "warn_extra_props", "keyframe", "x-custom"} {
		if _, ok := s.Keyword(name); !ok {
			t.Errorf("Keyword(%q) not found", name)
		}
	}
	for _, name := range []string{"prop_oneof", "asset_oneof", "reference_asset", "x-missing"} {
		if v, ok := s.Keyword(name); ok {
			t.Errorf("Keyword(%q) = %v, want absent", name, v)
		}
	}
}

func TestDiscriminatorKey(t *testing.T) {
	for _, tt := range []struct {
		in   any
		want string
		ok   bool
	}{
		{4.0, "4", true},
		{0.0, "0", true},
		{2.5, "2.5", true},
		{"rc", "rc", true},
		{true, "true", true},
		{nil, "", false},
		{[]any{}, "", false},
	} {
		got, ok := DiscriminatorKey(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DiscriminatorKey(%v) = %q, %t; want %q, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	// The schema document may also be authored in YAML; the annotated and
	// rewritten forms must survive a YAML round trip the same way they
	// survive JSON.
	for _, s := range []*Schema{
		layerSchema(),
		{Type: "integer", Enum: []any{0, 1}},
		{Items: &Schema{Ref: "#/$defs/layers/all-layers"}},
		{TyOneOf: TyOneOf{"0": "root#/$defs/layers/precomposition-layer"}},
		{AssetOneOf: "root"},
		{Keyframe: true, ReferenceAsset: true},
		{KnownProps: []string{"a", "k"}},
	} {
		data, err := yaml.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		var got Schema
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshaling %q: %v", data, err)
		}
		if diff := cmp.Diff(s.json(), got.json()); diff != "" {
			t.Errorf("YAML round trip of %q mismatch (-want +got):\n%s", data, diff)
		}
	}
}

func TestYAMLBooleanSchemas(t *testing.T) {
	var s Schema
	if err := yaml.Unmarshal([]byte(`true`), &s); err != nil {
		t.Fatal(err)
	}
	if !isEmptySchema(s) {
		t.Error("YAML true did not decode to the empty schema")
	}
	if err := yaml.Unmarshal([]byte(`false`), &s); err != nil {
		t.Fatal(err)
	}
	if !isFalseSchema(s) {
		t.Error("YAML false did not decode to the false schema")
	}
}

func TestYAMLUnknownKeywordsLandInExtra(t *testing.T) {
	src := `
type: object
x-custom: 17
`
	var s Schema
	if err := yaml.Unmarshal([]byte(src), &s); err != nil {
		t.Fatal(err)
	}
	if s.Extra["x-custom"] != 17 {
		t.Errorf("Extra = %v", s.Extra)
	}
	if s.KnownProps != nil || s.TyOneOf != nil {
		t.Error("recognized keyword fields set from unrelated input")
	}
}
