// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package keywords

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lottie/schema-go/engine"
	"github.com/lottie/schema-go/jsonschema"
)

const rootID = "https://example.com/test.schema.json"

func mustDecode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

// testDocument wires a miniature schema with every custom keyword already
// in place, the way the rewriter leaves a real one.
func testDocument() *jsonschema.Document {
	return &jsonschema.Document{
		ID:  rootID,
		Ref: "#/$defs/animation/animation",
		Defs: map[string]map[string]*jsonschema.Schema{
			"animation": {
				"animation": {
					Type:     "object",
					Required: []string{"layers"},
					Properties: map[string]*jsonschema.Schema{
						"layers": {
							Type:  "array",
							Items: &jsonschema.Schema{Ref: "#/$defs/layers/all-layers"},
						},
						"assets": {
							Type:  "array",
							Items: &jsonschema.Schema{Ref: "#/$defs/assets/all-assets"},
						},
					},
				},
			},
			"layers": {
				"all-layers": {
					TyOneOf: jsonschema.TyOneOf{
						"4": rootID + "#/$defs/layers/shape-layer",
						"0": rootID + "#/$defs/layers/precomposition-layer",
					},
				},
				"shape-layer": {
					Type:     "object",
					Required: []string{"ty", "ks"},
					Properties: map[string]*jsonschema.Schema{
						"ty": {Const: jsonschema.Ptr(any(4.0))},
						"ks": {Ref: "#/$defs/helpers/transform"},
						"nm": {Type: "string"},
					},
					KnownProps: []string{"ks", "nm", "ty"},
				},
				"precomposition-layer": {
					Type:     "object",
					Required: []string{"ty", "refId"},
					Properties: map[string]*jsonschema.Schema{
						"ty": {Const: jsonschema.Ptr(any(0.0))},
						"refId": {
							Type:           "string",
							ReferenceAsset: true,
						},
					},
				},
			},
			"helpers": {
				"transform": {
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"p": {Ref: "#/$defs/properties/splittable-position-property"},
					},
				},
			},
			"properties": {
				"splittable-position-property": {
					SplitPosOneOf: &jsonschema.SplitPosOneOf{
						True:  rootID + "#/$defs/properties/split-position",
						False: rootID + "#/$defs/properties/position-property",
					},
				},
				"split-position": {
					Type:     "object",
					Required: []string{"x", "y"},
					Properties: map[string]*jsonschema.Schema{
						"s": {Type: "boolean"},
						"x": {Ref: "#/$defs/properties/position-property"},
						"y": {Ref: "#/$defs/properties/position-property"},
					},
				},
				"position-property": {
					PropOneOf: []*jsonschema.Schema{
						{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"a": {Const: jsonschema.Ptr(any(0.0))},
								"k": {Type: "array", Items: &jsonschema.Schema{Type: "number"}},
							},
						},
						{
							Type: "object",
							Properties: map[string]*jsonschema.Schema{
								"a": {Const: jsonschema.Ptr(any(1.0))},
								"k": {
									Type:  "array",
									Items: &jsonschema.Schema{Ref: "#/$defs/properties/base-keyframe"},
								},
							},
						},
					},
				},
				"base-keyframe": {
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"t": {Type: "number"},
						"h": {Type: "integer"},
					},
					Keyframe: true,
				},
			},
			"assets": {
				"all-assets": {
					AssetOneOf: rootID,
				},
				"image": {
					Type:     "object",
					Required: []string{"id"},
					Properties: map[string]*jsonschema.Schema{
						"id": {Type: "string"},
						"u":  {Type: "string"},
					},
				},
				"precomposition": {
					Type:     "object",
					Required: []string{"id", "layers"},
					Properties: map[string]*jsonschema.Schema{
						"id":     {Type: "string"},
						"layers": {Type: "array"},
					},
				},
			},
			"constants": {
				"blend-mode": {
					EnumOneOf: []jsonschema.EnumValue{
						{Value: 0.0, Title: "Normal"},
						{Value: 1.0, Title: "Multiply"},
					},
				},
			},
		},
	}
}

func validateDoc(t *testing.T, raw string) []engine.Error {
	t.Helper()
	e := engine.New(testDocument())
	Register(e)
	errs, err := e.Validate(mustDecode(t, raw))
	if err != nil {
		t.Fatal(err)
	}
	return errs
}

func messages(errs []engine.Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func TestTyDispatchDelegates(t *testing.T) {
	errs := validateDoc(t, `{"layers":[{"ty":4}]}`)
	if len(errs) != 1 || errs[0].Message != "must have required property 'ks'" {
		t.Fatalf("got %v", messages(errs))
	}
	if errs[0].InstancePath != "/layers/0" {
		t.Errorf("instance path = %q", errs[0].InstancePath)
	}
}

func TestTyDispatchUnknownWarns(t *testing.T) {
	errs := validateDoc(t, `{"layers":[{"ty":999,"ks":{}}]}`)
	if len(errs) != 1 {
		t.Fatalf("got %v", messages(errs))
	}
	e := errs[0]
	if !e.Warning || e.Kind != "type" {
		t.Errorf("diagnostic not a type warning: %+v", e)
	}
	if !strings.Contains(e.Message, "unknown 'ty' value 999") {
		t.Errorf("message = %q", e.Message)
	}
}

func TestTyDispatchMissingTagLeftToRequired(t *testing.T) {
	errs := validateDoc(t, `{"layers":[{}]}`)
	if len(errs) != 0 {
		t.Fatalf("got %v", messages(errs))
	}
}

func TestPropDispatch(t *testing.T) {
	t.Run("static", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"a":0,"k":[1,2]}}}]}`)
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("static rejects keyframe shape", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"a":0,"k":[{"t":0}]}}}]}`)
		if len(errs) == 0 {
			t.Fatal("keyframe list accepted as static value")
		}
	})
	t.Run("unknown flag errors", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"a":2,"k":[]}}}]}`)
		if len(errs) != 1 || errs[0].Warning {
			t.Fatalf("got %+v", errs)
		}
		if !strings.Contains(errs[0].Message, "unknown 'a' value 2") {
			t.Errorf("message = %q", errs[0].Message)
		}
	})
}

func TestSplitPositionDispatch(t *testing.T) {
	t.Run("split true routes to split-position", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"s":true,"x":{"a":0,"k":[1]}}}}]}`)
		if len(errs) != 1 || errs[0].Message != "must have required property 'y'" {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("missing flag defaults to plain position", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"a":0,"k":[1,2]}}}]}`)
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("non-boolean flag warns and defaults", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{"p":{"s":1,"a":0,"k":[1,2]}}}]}`)
		if len(errs) != 1 || !errs[0].Warning {
			t.Fatalf("got %+v", errs)
		}
	})
}

func TestAssetDispatchByShape(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[],"assets":[{"u":"img/"}]}`)
		if len(errs) != 1 || errs[0].Message != "must have required property 'id'" {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("precomposition", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[],"assets":[{"layers":[]}]}`)
		if len(errs) != 1 || errs[0].Message != "must have required property 'id'" {
			t.Fatalf("got %v", messages(errs))
		}
		if errs[0].Schema.Required[1] != "layers" {
			t.Errorf("dispatched to wrong asset schema: %+v", errs[0].Schema.Required)
		}
	})
}

func TestReferenceAsset(t *testing.T) {
	t.Run("valid reference", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":0,"refId":"img_0"}],"assets":[{"id":"img_0"}]}`)
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("dangling reference", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":0,"refId":"missing"}],"assets":[{"id":"other"}]}`)
		if len(errs) != 1 || errs[0].Message != `"missing" is not a valid asset id` {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("no assets list", func(t *testing.T) {
		errs := validateDoc(t, `{"layers":[{"ty":0,"refId":"img_0"}]}`)
		if len(errs) != 1 {
			t.Fatalf("got %v", messages(errs))
		}
	})
}

func TestEnumOneOf(t *testing.T) {
	doc := testDocument()
	doc.Defs["helpers"]["transform"].Properties["bm"] = &jsonschema.Schema{
		Ref: "#/$defs/constants/blend-mode",
	}
	e := engine.New(doc)
	Register(e)

	errs, err := e.Validate(mustDecode(t, `{"layers":[{"ty":4,"ks":{"bm":1}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 0 {
		t.Fatalf("valid enum value rejected: %v", messages(errs))
	}

	errs, err = e.Validate(mustDecode(t, `{"layers":[{"ty":4,"ks":{"bm":99}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 1 || errs[0].Message != "'99' is not a valid enumeration value" {
		t.Fatalf("got %v", messages(errs))
	}
}

func TestWarnExtraProps(t *testing.T) {
	errs := validateDoc(t, `{"layers":[{"ty":4,"ks":{},"bogus":1,"also":2}]}`)
	if len(errs) != 2 {
		t.Fatalf("got %v", messages(errs))
	}
	// Sorted by property name.
	if errs[0].Message != "has unknown property 'also'" || errs[1].Message != "has unknown property 'bogus'" {
		t.Errorf("got %v", messages(errs))
	}
	for _, e := range errs {
		if !e.Warning || e.Kind != "property" {
			t.Errorf("not a property warning: %+v", e)
		}
	}
}

func animated(k string) string {
	return `{"layers":[{"ty":4,"ks":{"p":{"a":1,"k":` + k + `}}}]}`
}

func TestKeyframeTangents(t *testing.T) {
	t.Run("non-trailing keyframe requires tangents", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":0},{"t":10}]`))
		if len(errs) != 2 {
			t.Fatalf("got %v", messages(errs))
		}
		if errs[0].Message != "keyframe is missing 'i'" || errs[1].Message != "keyframe is missing 'o'" {
			t.Errorf("got %v", messages(errs))
		}
		if errs[0].InstancePath != "/layers/0/ks/p/k/0" {
			t.Errorf("instance path = %q", errs[0].InstancePath)
		}
	})
	t.Run("hold keyframe is exempt", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":0,"h":1},{"t":10}]`))
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("last keyframe is exempt", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":0,"i":{},"o":{}},{"t":10}]`))
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
}

func TestKeyframeOrdering(t *testing.T) {
	t.Run("descending times", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":10,"i":{},"o":{}},{"t":5}]`))
		if len(errs) != 1 || errs[0].Message != "keyframe 't' must be in ascending order" {
			t.Fatalf("got %v", messages(errs))
		}
		if errs[0].InstancePath != "/layers/0/ks/p/k/1" {
			t.Errorf("instance path = %q", errs[0].InstancePath)
		}
	})
	t.Run("two coincident times allowed", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":0,"i":{},"o":{}},{"t":0}]`))
		if len(errs) != 0 {
			t.Fatalf("got %v", messages(errs))
		}
	})
	t.Run("three coincident times rejected", func(t *testing.T) {
		errs := validateDoc(t, animated(`[{"t":0,"i":{},"o":{}},{"t":0,"i":{},"o":{}},{"t":0}]`))
		if len(errs) != 1 {
			t.Fatalf("got %v", messages(errs))
		}
		if errs[0].Message != "there can be at most 2 keyframes with the same 't' value" {
			t.Errorf("message = %q", errs[0].Message)
		}
		if errs[0].InstancePath != "/layers/0/ks/p/k/2" {
			t.Errorf("instance path = %q", errs[0].InstancePath)
		}
	})
}
