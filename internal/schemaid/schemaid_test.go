// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package schemaid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const root = "https://example.com/lottie.schema.json"

func TestBuild(t *testing.T) {
	got := Build(root, "layers", "shape-layer")
	want := root + "#/$defs/layers/shape-layer"
	if got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestAbsolutize(t *testing.T) {
	tests := []struct{ ref, want string }{
		{"#/$defs/layers/shape-layer", root + "#/$defs/layers/shape-layer"},
		{root + "#/$defs/layers/shape-layer", root + "#/$defs/layers/shape-layer"},
	}
	for _, tt := range tests {
		if got := Absolutize(root, tt.ref); got != tt.want {
			t.Errorf("Absolutize(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestCategoryObject(t *testing.T) {
	cat, obj, ok := CategoryObject(root + "#/$defs/properties/position-property/oneOf/1")
	if !ok || cat != "properties" || obj != "position-property" {
		t.Errorf("CategoryObject = %q, %q, %t", cat, obj, ok)
	}
	if _, _, ok := CategoryObject(root); ok {
		t.Error("CategoryObject accepted an id with no $defs fragment")
	}
}

func TestTail(t *testing.T) {
	got := Tail(root + "#/$defs/properties/gradient-property/properties/k")
	if diff := cmp.Diff([]string{"properties", "k"}, got); diff != "" {
		t.Errorf("Tail mismatch (-want +got):\n%s", diff)
	}
	if got := Tail(root + "#/$defs/layers/shape-layer"); got != nil {
		t.Errorf("Tail of object id = %v, want nil", got)
	}
}

func TestSplit(t *testing.T) {
	r, frag := Split(root + "#/$defs/layers/shape-layer")
	if r != root || frag != "/$defs/layers/shape-layer" {
		t.Errorf("Split = %q, %q", r, frag)
	}
}
