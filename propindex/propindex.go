// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package propindex computes, for each named schema node, the closed set
// of property names it recognizes, following $ref chains transitively.
// The closed set is written back onto the schema node's KnownProps field
// so that validation can warn about properties the schema does not know.
package propindex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lottie/schema-go/internal/schemaid"
	"github.com/lottie/schema-go/jsonschema"
)

// An Entry is the property list accumulated for one schema identifier.
type Entry struct {
	// Props are the property names declared directly on the node.
	Props map[string]bool
	// Refs are the identifiers of schemas the node references; their
	// closed sets are inherited.
	Refs map[string]bool
	// Skip marks nodes that declare additionalProperties and are therefore
	// open: they never receive a closed set.
	Skip bool

	node     *jsonschema.Schema
	resolved bool
	closed   map[string]bool
}

// valid reports whether the entry is worth closing: it must not be open,
// and a node whose sole content is a single $ref is a pass-through whose
// target carries the closed set already.
func (e *Entry) valid() bool {
	return !e.Skip && (len(e.Props) >= 1 || len(e.Refs) >= 2)
}

// An Index maps schema identifiers to their property lists.
type Index struct {
	Entries map[string]*Entry

	// ReferencedAsBase holds every identifier that appears as a $ref
	// directly under an allOf. Such identifiers are mix-in bases: their
	// closed set is inherited by the referencing schema, not warned about
	// independently.
	ReferencedAsBase map[string]bool

	rootID string
}

// Build extracts property lists for every object schema in the document
// (pass 1) and writes the transitive property closure onto each valid,
// non-base node as its known-property set (pass 2).
func Build(doc *jsonschema.Document) *Index {
	ix := &Index{
		Entries:          make(map[string]*Entry),
		ReferencedAsBase: make(map[string]bool),
		rootID:           doc.ID,
	}
	for category, objects := range doc.Defs {
		for object, s := range objects {
			id := schemaid.Build(doc.ID, category, object)
			ix.extract(s, id, ix.entry(id, s))
		}
	}
	ix.finalize()
	return ix
}

func (ix *Index) entry(id string, s *jsonschema.Schema) *Entry {
	e, ok := ix.Entries[id]
	if !ok {
		e = &Entry{
			Props: make(map[string]bool),
			Refs:  make(map[string]bool),
			node:  s,
		}
		ix.Entries[id] = e
	}
	return e
}

// extract is pass 1: walk s accumulating into cur, spawning fresh entries
// at the points where a new property scope begins.
func (ix *Index) extract(s *jsonschema.Schema, id string, cur *Entry) {
	if s == nil {
		return
	}
	for prop, child := range s.Properties {
		cur.Props[prop] = true
		childID := id + "/properties/" + prop
		ix.extract(child, childID, ix.entry(childID, child))
	}
	for i, variant := range s.OneOf {
		variantID := id + "/oneOf/" + strconv.Itoa(i)
		// Animated properties share one conceptual identity across their
		// two shapes; their variants contribute to the same closed set.
		if strings.HasSuffix(id, "-property") {
			ix.extract(variant, variantID, cur)
		} else {
			ix.extract(variant, variantID, ix.entry(variantID, variant))
		}
	}
	for i, variant := range s.AllOf {
		if variant != nil && variant.Ref != "" {
			ix.ReferencedAsBase[schemaid.Absolutize(ix.rootID, variant.Ref)] = true
		}
		ix.extract(variant, id+"/allOf/"+strconv.Itoa(i), cur)
	}
	if s.AdditionalProperties != nil {
		cur.Skip = true
	}
	if s.Ref != "" {
		cur.Refs[schemaid.Absolutize(ix.rootID, s.Ref)] = true
	}
	// not is ignored: a negated schema recognizes nothing.
	for i, variant := range s.AnyOf {
		ix.extract(variant, id+"/anyOf/"+strconv.Itoa(i), cur)
	}
	if s.Items != nil {
		ix.extract(s.Items, id+"/items", cur)
	}
	for i, variant := range s.PrefixItems {
		ix.extract(variant, id+"/prefixItems/"+strconv.Itoa(i), cur)
	}
	if s.If != nil {
		ix.extract(s.If, id+"/if", cur)
	}
	if s.Then != nil {
		ix.extract(s.Then, id+"/then", cur)
	}
	if s.Else != nil {
		ix.extract(s.Else, id+"/else", cur)
	}
}

// finalize is pass 2: close every valid, non-base entry over its refs and
// write the result to the schema node.
func (ix *Index) finalize() {
	for id, e := range ix.Entries {
		if !e.valid() || ix.ReferencedAsBase[id] {
			continue
		}
		props := ix.resolve(e)
		names := make([]string, 0, len(props))
		for p := range props {
			names = append(names, p)
		}
		sort.Strings(names)
		e.node.KnownProps = names
	}
}

// resolve returns e's transitive property closure. An entry already in
// progress (a $ref cycle) contributes only the properties gathered so far,
// which resolves the cycle to its fixpoint.
func (ix *Index) resolve(e *Entry) map[string]bool {
	if e.resolved {
		return e.closed
	}
	e.resolved = true
	e.closed = make(map[string]bool, len(e.Props))
	for p := range e.Props {
		e.closed[p] = true
	}
	for ref := range e.Refs {
		target, ok := ix.Entries[ref]
		if !ok {
			continue
		}
		for p := range ix.resolve(target) {
			e.closed[p] = true
		}
	}
	return e.closed
}
