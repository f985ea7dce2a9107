// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package schemaid builds and parses the identifiers used to address
// sub-schemas: "<rootID>#/$defs/<category>/<object>" plus an optional
// JSON-Pointer tail ("/properties/k", "/oneOf/0", ...).
package schemaid

import "strings"

const defsPrefix = "#/$defs/"

// Build returns the identifier of an object schema inside a category.
func Build(rootID, category, object string) string {
	return rootID + defsPrefix + category + "/" + object
}

// Absolutize resolves ref against rootID. A ref that already names a root
// ("...#...") is returned unchanged; a fragment-only ref ("#/$defs/...")
// is prefixed with rootID.
func Absolutize(rootID, ref string) string {
	if strings.Contains(ref, "#") && !strings.HasPrefix(ref, "#") {
		return ref
	}
	return rootID + strings.TrimPrefix(ref, rootID)
}

// Split separates an identifier into its root id and fragment pointer.
// For "root#/$defs/layers/shape-layer" it returns ("root",
// "/$defs/layers/shape-layer").
func Split(id string) (rootID, fragment string) {
	root, frag, found := strings.Cut(id, "#")
	if !found {
		return id, ""
	}
	return root, frag
}

// CategoryObject extracts the category and object names from an
// identifier's "#/$defs/<category>/<object>[...]" fragment.
// ok is false when the identifier has no such fragment.
func CategoryObject(id string) (category, object string, ok bool) {
	_, frag, found := strings.Cut(id, defsPrefix)
	if !found {
		return "", "", false
	}
	parts := strings.SplitN(frag, "/", 3)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Tail returns the pointer segments past "#/$defs/<category>/<object>",
// e.g. ["properties", "k"] for ".../gradient-property/properties/k".
func Tail(id string) []string {
	_, frag, found := strings.Cut(id, defsPrefix)
	if !found {
		return nil
	}
	parts := strings.Split(frag, "/")
	if len(parts) <= 2 {
		return nil
	}
	return parts[2:]
}
