// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package diagnostic defines the consumer-facing validation diagnostic:
// a documentation-linked, human-readable message anchored to a JSON
// Pointer into the validated document.
package diagnostic

import "sort"

// Type distinguishes hard specification violations from soft issues.
type Type string

const (
	Error   Type = "error"
	Warning Type = "warning"
)

// Warning kinds.
const (
	// WarningProperty marks an unknown property on a closed object.
	WarningProperty = "property"
	// WarningType marks an unrecognized discriminator value.
	WarningType = "type"
)

// A Diagnostic is one validation finding.
type Diagnostic struct {
	// Type is "error" or "warning".
	Type Type `json:"type"`
	// Warning is the warning kind, set only when Type is "warning".
	Warning string `json:"warning,omitempty"`
	// Message is the human-readable description, prefixed with the
	// offending node's display name.
	Message string `json:"message"`
	// Path is the JSON Pointer to the offending value.
	Path string `json:"path"`
	// Name is the display name of the schema node that produced the
	// finding, or "Value" when unknown.
	Name string `json:"name"`
	// Docs links into the format documentation.
	Docs string `json:"docs,omitempty"`
	// PathNames lists, in order from the root, the "nm" of every object
	// along Path (the offending value included) that carries a "ty".
	// Entries are nil for such objects without a string "nm". Present
	// only when name-paths mode is enabled.
	PathNames []*string `json:"path_names,omitempty"`
}

// Sort orders diagnostics lexicographically by path, keeping the original
// order of diagnostics that share a path.
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Path < ds[j].Path })
}
