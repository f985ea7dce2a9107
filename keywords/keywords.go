// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package keywords implements the semantic rules of the animation format
// as custom engine keywords: tagged-union dispatch on "ty", animated
// property dispatch on "a", split-position dispatch on "s", asset dispatch
// on document shape, enumerated constants, keyframe sequencing, asset
// cross-references, and unknown-property warnings.
//
// Whether a rule reports an error or a warning is fixed here, at
// registration time: an unknown "ty" is a warning (new object types may
// postdate the schema), an unknown "a" is an error (the animated flag is
// strictly 0 or 1), and unknown properties are warnings.
package keywords

import (
	"sort"

	"github.com/lottie/schema-go/engine"
	"github.com/lottie/schema-go/internal/jsonptr"
	"github.com/lottie/schema-go/jsonschema"
)

// Register installs every custom keyword on e. Keywords run in the order
// given here; the unknown-property check runs last so its warnings follow
// the node's structural diagnostics.
func Register(e *engine.Engine) {
	e.RegisterKeyword(jsonschema.KeywordTyOneOf, tyOneOf)
	e.RegisterKeyword(jsonschema.KeywordPropOneOf, propOneOf)
	e.RegisterKeyword(jsonschema.KeywordSplitPosOneOf, splitPosOneOf)
	e.RegisterKeyword(jsonschema.KeywordAssetOneOf, assetOneOf)
	e.RegisterKeyword(jsonschema.KeywordEnumOneOf, enumOneOf)
	e.RegisterKeyword(jsonschema.KeywordKeyframe, keyframe)
	e.RegisterKeyword(jsonschema.KeywordReferenceAsset, referenceAsset)
	e.RegisterKeyword(jsonschema.KeywordWarnExtraProps, warnExtraProps)
}

// delegate compiles id and validates data against it within ctx.
func delegate(id string, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	fn, err := ctx.Engine.Compile(id)
	if err != nil {
		ctx.Errorf(parent, "$ref", "references unresolvable schema %q", id)
		return false
	}
	return fn(data, ctx)
}

// tyOneOf dispatches on the "ty" tag. A missing tag is left to the outer
// schema's required list; an unrecognized one produces a warning and
// otherwise passes.
func tyOneOf(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	table, ok := val.(jsonschema.TyOneOf)
	if !ok {
		return true
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return true
	}
	raw, present := obj["ty"]
	if !present {
		return true
	}
	key, keyOK := jsonschema.DiscriminatorKey(raw)
	id, known := table[key]
	if !keyOK || !known {
		ctx.Warnf(parent, jsonschema.KeywordTyOneOf, "type", "unknown 'ty' value %v", raw)
		return true
	}
	return delegate(id, data, parent, ctx)
}

// propOneOf dispatches an animated property on its "a" flag. The flag is
// strictly 0 or 1, so an unrecognized value is an error.
func propOneOf(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	variants, ok := val.([]*jsonschema.Schema)
	if !ok {
		return true
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return true
	}
	raw, present := obj["a"]
	if !present {
		return true
	}
	key, keyOK := jsonschema.DiscriminatorKey(raw)
	if keyOK {
		for _, variant := range variants {
			a := variant.Properties["a"]
			if a == nil || a.Const == nil {
				continue
			}
			variantKey, ok := jsonschema.DiscriminatorKey(*a.Const)
			if ok && variantKey == key {
				return ctx.Engine.ValidateSchema(variant, data, ctx)
			}
		}
	}
	ctx.Errorf(parent, jsonschema.KeywordPropOneOf, "unknown 'a' value %v", raw)
	return false
}

// splitPosOneOf dispatches a position property on its "s" flag. A missing
// flag means not split; a non-boolean flag is warned about and treated as
// not split.
func splitPosOneOf(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	dispatch, ok := val.(*jsonschema.SplitPosOneOf)
	if !ok {
		return true
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return true
	}
	split := false
	if raw, present := obj["s"]; present {
		b, isBool := raw.(bool)
		if !isBool {
			ctx.Warnf(parent, jsonschema.KeywordSplitPosOneOf, "type", "unknown 's' value %v", raw)
		} else {
			split = b
		}
	}
	id := dispatch.False
	if split {
		id = dispatch.True
	}
	return delegate(id, data, parent, ctx)
}

// assetOneOf routes an asset to the precomposition or image schema by
// inspecting its shape: only precompositions carry layers.
func assetOneOf(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	rootID, ok := val.(string)
	if !ok {
		return true
	}
	kind := "image"
	if obj, isObject := data.(map[string]any); isObject {
		if _, hasLayers := obj["layers"]; hasLayers {
			kind = "precomposition"
		}
	}
	return delegate(rootID+"#/$defs/assets/"+kind, data, parent, ctx)
}

// enumOneOf accepts data equal to any of the listed constants.
func enumOneOf(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	values, ok := val.([]jsonschema.EnumValue)
	if !ok {
		return true
	}
	for _, v := range values {
		if engine.EqualValues(data, v.Value) {
			return true
		}
	}
	ctx.Errorf(parent, jsonschema.KeywordEnumOneOf, "'%v' is not a valid enumeration value", data)
	return false
}

// referenceAsset checks that data names an asset declared in the
// document's top-level assets list.
func referenceAsset(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	id, ok := data.(string)
	if !ok {
		return true
	}
	root, _ := ctx.RootData.(map[string]any)
	assets, _ := root["assets"].([]any)
	for _, a := range assets {
		asset, isObject := a.(map[string]any)
		if isObject && asset["id"] == id {
			return true
		}
	}
	ctx.Errorf(parent, jsonschema.KeywordReferenceAsset, "%q is not a valid asset id", id)
	return false
}

// warnExtraProps warns about every property of data outside the node's
// closed property set. It never fails validation.
func warnExtraProps(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	known, ok := val.([]string)
	if !ok {
		return true
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return true
	}
	set := make(map[string]bool, len(known))
	for _, name := range known {
		set[name] = true
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		if !set[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		ctx.Warnf(parent, jsonschema.KeywordWarnExtraProps, "property", "has unknown property '%s'", name)
	}
	return true
}

// keyframe enforces the sequencing rules of a keyframe within its
// enclosing list: tangents are required except on hold and trailing
// keyframes, times ascend, and at most two consecutive keyframes may
// share a time (an instantaneous jump).
func keyframe(val any, data any, parent *jsonschema.Schema, ctx *engine.Context) bool {
	obj, ok := data.(map[string]any)
	if !ok {
		return true
	}
	seq, ok := ctx.ParentData.([]any)
	if !ok {
		return true
	}
	index, ok := jsonptr.LastIndex(ctx.InstancePath)
	if !ok || index < 0 || index >= len(seq) {
		return true
	}

	valid := true
	if !truthy(obj["h"]) && index != len(seq)-1 {
		for _, tangent := range []string{"i", "o"} {
			if _, present := obj[tangent]; !present {
				ctx.Errorf(parent, jsonschema.KeywordKeyframe, "keyframe is missing '%s'", tangent)
				valid = false
			}
		}
	}

	if index > 0 {
		prev, _ := seq[index-1].(map[string]any)
		t, hasT := obj["t"].(float64)
		prevT, hasPrevT := prev["t"].(float64)
		if hasT && hasPrevT {
			switch {
			case t < prevT:
				ctx.Errorf(parent, jsonschema.KeywordKeyframe, "keyframe 't' must be in ascending order")
				valid = false
			case t == prevT && index > 1:
				prevPrev, _ := seq[index-2].(map[string]any)
				if prevPrevT, hasIt := prevPrev["t"].(float64); hasIt && prevPrevT == t {
					ctx.Errorf(parent, jsonschema.KeywordKeyframe,
						"there can be at most 2 keyframes with the same 't' value")
					valid = false
				}
			}
		}
	}
	return valid
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	}
	return false
}
