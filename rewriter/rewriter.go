// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rewriter replaces the schema's generic oneOf constructs with
// the schema model's tagged dispatch fields wherever the variant is
// selected by a sibling value: the "ty" tag, the animated flag "a", the
// split flag "s", or the shape of the document itself. A plain schema
// validator tries every variant and reports the union of their failures;
// the tagged forms pick the one variant that applies and report only its
// diagnostics.
//
// The rewrites mutate the schema document in place and must run before
// the document is compiled.
package rewriter

import (
	"strings"

	"github.com/lottie/schema-go/internal/schemaid"
	"github.com/lottie/schema-go/jsonschema"
)

// Rewrite applies all four rewrites to doc.
func Rewrite(doc *jsonschema.Document) {
	rewriteTyUnions(doc)
	rewriteAnimatedProperties(doc)
	rewriteEnums(doc)
	seedAssetDispatch(doc)
}

// rewriteTyUnions replaces each "all-*" union schema with a TyOneOf table
// over its category siblings. Siblings without a "ty" constant are left
// out of the table.
func rewriteTyUnions(doc *jsonschema.Document) {
	for category, objects := range doc.Defs {
		for object, s := range objects {
			if !strings.HasPrefix(object, "all-") || object == "all-assets" {
				continue
			}
			table := make(jsonschema.TyOneOf)
			for sibling, siblingSchema := range objects {
				if strings.HasPrefix(sibling, "all-") {
					continue
				}
				ty, ok := tyConst(siblingSchema)
				if !ok {
					continue
				}
				key, ok := jsonschema.DiscriminatorKey(ty)
				if !ok {
					continue
				}
				table[key] = schemaid.Build(doc.ID, category, sibling)
			}
			s.OneOf = nil
			s.TyOneOf = table
		}
	}
}

// tyConst extracts a schema's "ty" constant: from properties.ty.const if
// declared directly, otherwise from the first oneOf/anyOf/allOf child that
// yields one.
func tyConst(s *jsonschema.Schema) (any, bool) {
	if s == nil {
		return nil, false
	}
	if ty := s.Properties["ty"]; ty != nil && ty.Const != nil {
		return *ty.Const, true
	}
	for _, list := range [][]*jsonschema.Schema{s.OneOf, s.AnyOf, s.AllOf} {
		for _, child := range list {
			if v, ok := tyConst(child); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// rewriteAnimatedProperties rewrites every schema in the "properties"
// category whose name ends in "-property", plus "gradient-stops".
func rewriteAnimatedProperties(doc *jsonschema.Document) {
	for object, s := range doc.Defs["properties"] {
		switch {
		case object == "splittable-position-property":
			s.OneOf = nil
			s.SplitPosOneOf = &jsonschema.SplitPosOneOf{
				True:  schemaid.Build(doc.ID, "properties", "split-position"),
				False: schemaid.Build(doc.ID, "properties", "position-property"),
			}
		case object == "gradient-property":
			// The animated part of a gradient lives under k; the wrapper
			// object itself is not a oneOf.
			if k := s.Properties["k"]; k != nil && k.Ref == "" {
				rewriteProperty(k)
			}
		case strings.HasSuffix(object, "-property") || object == "gradient-stops":
			rewriteProperty(s)
		}
	}
}

// rewriteProperty replaces a property's oneOf with the PropOneOf variant
// list, wrapping each variant as an object schema.
func rewriteProperty(s *jsonschema.Schema) {
	if len(s.OneOf) == 0 {
		return
	}
	variants := make([]*jsonschema.Schema, len(s.OneOf))
	for i, variant := range s.OneOf {
		if variant.Type == "" && len(variant.Types) == 0 {
			variant.Type = "object"
		}
		variants[i] = variant
	}
	s.OneOf = nil
	s.PropOneOf = variants
}

// rewriteEnums applies NormalizeEnum to every schema in the "constants"
// category and to the "int-boolean" schema.
func rewriteEnums(doc *jsonschema.Document) {
	for _, s := range doc.Defs["constants"] {
		NormalizeEnum(s)
	}
	for _, objects := range doc.Defs {
		if s, ok := objects["int-boolean"]; ok {
			NormalizeEnum(s)
		}
	}
}

// NormalizeEnum swaps a oneOf of const values for an EnumOneOf list.
// Schemas whose oneOf contains a non-const variant are left alone.
func NormalizeEnum(s *jsonschema.Schema) {
	if len(s.OneOf) == 0 {
		return
	}
	values := make([]jsonschema.EnumValue, 0, len(s.OneOf))
	for _, variant := range s.OneOf {
		if variant == nil || variant.Const == nil {
			return
		}
		values = append(values, jsonschema.EnumValue{Value: *variant.Const, Title: variant.Title})
	}
	s.OneOf = nil
	s.EnumOneOf = values
}

// seedAssetDispatch installs the synthetic assets/all-assets schema, marks
// the asset-referencing refId fields, and tags the base keyframe schema.
func seedAssetDispatch(doc *jsonschema.Document) {
	if doc.Defs == nil {
		doc.Defs = make(map[string]map[string]*jsonschema.Schema)
	}
	if doc.Defs["assets"] == nil {
		doc.Defs["assets"] = make(map[string]*jsonschema.Schema)
	}
	doc.Defs["assets"]["all-assets"] = &jsonschema.Schema{AssetOneOf: doc.ID}

	for _, layer := range []string{"image-layer", "precomposition-layer"} {
		if refID := findProperty(doc.Defs["layers"][layer], "refId"); refID != nil {
			refID.ReferenceAsset = true
		}
	}

	for _, objects := range doc.Defs {
		if s, ok := objects["base-keyframe"]; ok {
			s.Keyframe = true
		}
	}
}

// findProperty locates a named property schema, looking through allOf,
// oneOf and anyOf composition.
func findProperty(s *jsonschema.Schema, name string) *jsonschema.Schema {
	if s == nil {
		return nil
	}
	if p, ok := s.Properties[name]; ok {
		return p
	}
	for _, list := range [][]*jsonschema.Schema{s.AllOf, s.OneOf, s.AnyOf} {
		for _, child := range list {
			if p := findProperty(child, name); p != nil {
				return p
			}
		}
	}
	return nil
}
