// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// A Document is the root of a schema file whose $defs are organized in two
// levels: a category name mapping to the named object schemas in that
// category. The animation interchange schema is laid out this way, with
// categories like "layers", "shapes", "assets" and "constants".
//
// Sub-schemas are addressed by identifiers of the form
// "<ID>#/$defs/<category>/<object>" optionally followed by a JSON-Pointer
// tail into the object schema ("/properties/k", "/oneOf/1", ...).
type Document struct {
	Schema string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	ID     string `json:"$id,omitempty" yaml:"$id,omitempty"`
	Ref    string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Version is the schema's own version marker; the published schema
	// stores it as a bare number.
	Version any `json:"$version,omitempty" yaml:"$version,omitempty"`

	Defs map[string]map[string]*Schema `json:"$defs,omitempty" yaml:"$defs,omitempty"`
}

// Lookup returns the object schema at $defs/<category>/<object>, or nil.
func (d *Document) Lookup(category, object string) *Schema {
	return d.Defs[category][object]
}

// Resolve returns the sub-schema addressed by id. The id may carry the
// document's root id ("<ID>#/$defs/...") or be fragment-only ("#/$defs/...").
// An empty fragment, or the bare root id, resolves to the schema named by
// the document's own $ref.
func (d *Document) Resolve(id string) (*Schema, error) {
	frag := id
	if i := strings.Index(id, "#"); i >= 0 {
		if root := id[:i]; root != "" && root != d.ID {
			return nil, fmt.Errorf("jsonschema: id %q does not belong to document %q", id, d.ID)
		}
		frag = id[i+1:]
	} else if id == d.ID {
		frag = ""
	}
	if frag == "" {
		if d.Ref == "" {
			return nil, fmt.Errorf("jsonschema: document %q has no root $ref", d.ID)
		}
		return d.Resolve(d.Ref)
	}

	segs := strings.Split(strings.TrimPrefix(frag, "/"), "/")
	if len(segs) < 3 || segs[0] != "$defs" {
		return nil, fmt.Errorf("jsonschema: unsupported pointer %q in id %q", frag, id)
	}
	s := d.Lookup(segs[1], segs[2])
	if s == nil {
		return nil, fmt.Errorf("jsonschema: no schema at $defs/%s/%s", segs[1], segs[2])
	}
	return resolveTail(s, segs[3:], id)
}

// resolveTail walks the remaining pointer segments through a schema value.
func resolveTail(s *Schema, segs []string, id string) (*Schema, error) {
	for len(segs) > 0 {
		if s == nil {
			return nil, fmt.Errorf("jsonschema: dangling pointer in id %q", id)
		}
		seg := segs[0]
		segs = segs[1:]
		switch seg {
		case "properties", "patternProperties", "$defs", "definitions", "dependentSchemas":
			if len(segs) == 0 {
				return nil, fmt.Errorf("jsonschema: pointer in id %q ends at %q", id, seg)
			}
			key := segs[0]
			segs = segs[1:]
			switch seg {
			case "properties":
				s = s.Properties[key]
			case "patternProperties":
				s = s.PatternProperties[key]
			case "$defs":
				s = s.Defs[key]
			case "definitions":
				s = s.Definitions[key]
			case "dependentSchemas":
				s = s.DependentSchemas[key]
			}
		case "oneOf", "anyOf", "allOf", "prefixItems":
			if len(segs) == 0 {
				return nil, fmt.Errorf("jsonschema: pointer in id %q ends at %q", id, seg)
			}
			i, err := strconv.Atoi(segs[0])
			if err != nil {
				return nil, fmt.Errorf("jsonschema: bad index %q in id %q", segs[0], id)
			}
			segs = segs[1:]
			var list []*Schema
			switch seg {
			case "oneOf":
				list = s.OneOf
			case "anyOf":
				list = s.AnyOf
			case "allOf":
				list = s.AllOf
			case "prefixItems":
				list = s.PrefixItems
			}
			if i < 0 || i >= len(list) {
				return nil, fmt.Errorf("jsonschema: index %d out of range in id %q", i, id)
			}
			s = list[i]
		case "items":
			s = s.Items
		case "not":
			s = s.Not
		case "additionalProperties":
			s = s.AdditionalProperties
		case "if":
			s = s.If
		case "then":
			s = s.Then
		case "else":
			s = s.Else
		case "contains":
			s = s.Contains
		default:
			return nil, fmt.Errorf("jsonschema: unsupported pointer segment %q in id %q", seg, id)
		}
	}
	if s == nil {
		return nil, fmt.Errorf("jsonschema: dangling pointer in id %q", id)
	}
	return s, nil
}
