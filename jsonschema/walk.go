// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonschema

import "iter"

// All returns a preorder iterator over s and every schema reachable from it
// through a field of the Schema struct (properties, items, allOf, $defs, ...).
// It does not follow $ref.
func (s *Schema) All() iter.Seq[*Schema] {
	return s.all()
}

// Children returns an iterator over the immediate child schemas of s.
func (s *Schema) Children() iter.Seq[*Schema] {
	return s.children()
}

// Walk calls f for s and every schema reachable from it, stopping early if f
// returns false. It returns the final value of f.
func (s *Schema) Walk(f func(*Schema) bool) bool {
	return s.every(f)
}
