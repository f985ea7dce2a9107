// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonschema

import "testing"

func TestAllVisitsEveryReachableNode(t *testing.T) {
	leaf := &Schema{Type: "string"}
	s := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"a": leaf,
			"b": {Type: "integer"},
		},
		Items: &Schema{Type: "boolean"},
	}

	var types []string
	for child := range s.All() {
		types = append(types, child.Type)
	}
	if len(types) != 4 {
		t.Fatalf("got %d nodes, want 4: %v", len(types), types)
	}
}

func TestChildrenIsOneLevelOnly(t *testing.T) {
	s := &Schema{
		Properties: map[string]*Schema{
			"a": {Items: &Schema{Type: "never-visited"}},
		},
	}
	var got []*Schema
	for c := range s.Children() {
		got = append(got, c)
	}
	if len(got) != 1 {
		t.Fatalf("got %d children, want 1", len(got))
	}
	if got[0].Items.Type != "never-visited" {
		t.Fatalf("child schema lost its own subtree")
	}
}

func TestWalkStopsEarly(t *testing.T) {
	s := &Schema{
		Properties: map[string]*Schema{
			"a": {Type: "string"},
			"b": {Type: "integer"},
		},
	}
	n := 0
	s.Walk(func(*Schema) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("Walk visited %d nodes before stopping, want 2", n)
	}
}

func TestWalkReachesDispatchVariants(t *testing.T) {
	variant := &Schema{Type: "object"}
	s := &Schema{PropOneOf: []*Schema{variant}}
	found := false
	s.Walk(func(n *Schema) bool {
		if n == variant {
			found = true
		}
		return true
	})
	if !found {
		t.Fatal("Walk did not reach a PropOneOf variant")
	}
}
