// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/lottie/schema-go/jsonschema"
)

// validateSchema runs the built-in keywords of s over data, then any
// registered custom keywords that s carries (see jsonschema.Schema.Keyword).
// All violations found are reported through ctx; the return value is the
// conjunction of every check.
func (e *Engine) validateSchema(s *jsonschema.Schema, data any, ctx *Context) bool {
	if s == nil {
		return true
	}

	ok := true
	if s.Ref != "" {
		fn, err := e.Compile(s.Ref)
		if err != nil {
			ctx.Errorf(s, "$ref", "references unresolvable schema %q", s.Ref)
			ok = false
		} else {
			ok = fn(data, ctx) && ok
		}
	}
	ok = e.checkType(s, data, ctx) && ok
	ok = e.checkConst(s, data, ctx) && ok
	ok = e.checkEnum(s, data, ctx) && ok
	ok = e.checkNumber(s, data, ctx) && ok
	ok = e.checkString(s, data, ctx) && ok
	ok = e.checkObject(s, data, ctx) && ok
	ok = e.checkArray(s, data, ctx) && ok
	ok = e.checkLogic(s, data, ctx) && ok
	ok = e.checkConditional(s, data, ctx) && ok
	for _, kw := range e.keywords {
		val, present := s.Keyword(kw.name)
		if !present {
			continue
		}
		ok = kw.fn(val, data, s, ctx) && ok
	}
	return ok
}

func (e *Engine) checkType(s *jsonschema.Schema, data any, ctx *Context) bool {
	types := s.Types
	if s.Type != "" {
		types = []string{s.Type}
	}
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if hasType(data, t) {
			return true
		}
	}
	if len(types) == 1 {
		ctx.Errorf(s, "type", "must be of type '%s'", types[0])
	} else {
		ctx.Errorf(s, "type", "must be one of the types %v", types)
	}
	return false
}

func hasType(data any, t string) bool {
	switch t {
	case "null":
		return data == nil
	case "boolean":
		_, ok := data.(bool)
		return ok
	case "string":
		_, ok := data.(string)
		return ok
	case "number":
		_, ok := data.(float64)
		return ok
	case "integer":
		f, ok := data.(float64)
		return ok && f == math.Trunc(f)
	case "object":
		_, ok := data.(map[string]any)
		return ok
	case "array":
		_, ok := data.([]any)
		return ok
	}
	return false
}

func (e *Engine) checkConst(s *jsonschema.Schema, data any, ctx *Context) bool {
	if s.Const == nil {
		return true
	}
	if EqualValues(data, *s.Const) {
		return true
	}
	ctx.Errorf(s, "const", "must be equal to the constant %v", jsonText(*s.Const))
	return false
}

func (e *Engine) checkEnum(s *jsonschema.Schema, data any, ctx *Context) bool {
	if s.Enum == nil {
		return true
	}
	for _, v := range s.Enum {
		if EqualValues(data, v) {
			return true
		}
	}
	ctx.Errorf(s, "enum", "must be one of the allowed values")
	return false
}

func (e *Engine) checkNumber(s *jsonschema.Schema, data any, ctx *Context) bool {
	n, isNumber := data.(float64)
	if !isNumber {
		return true
	}
	ok := true
	if s.Minimum != nil && n < *s.Minimum {
		ctx.Errorf(s, "minimum", "must be greater than or equal to %v", *s.Minimum)
		ok = false
	}
	if s.Maximum != nil && n > *s.Maximum {
		ctx.Errorf(s, "maximum", "must be less than or equal to %v", *s.Maximum)
		ok = false
	}
	if s.ExclusiveMinimum != nil && n <= *s.ExclusiveMinimum {
		ctx.Errorf(s, "exclusiveMinimum", "must be greater than %v", *s.ExclusiveMinimum)
		ok = false
	}
	if s.ExclusiveMaximum != nil && n >= *s.ExclusiveMaximum {
		ctx.Errorf(s, "exclusiveMaximum", "must be less than %v", *s.ExclusiveMaximum)
		ok = false
	}
	if s.MultipleOf != nil && *s.MultipleOf != 0 && math.Mod(n, *s.MultipleOf) != 0 {
		ctx.Errorf(s, "multipleOf", "must be a multiple of %v", *s.MultipleOf)
		ok = false
	}
	return ok
}

func (e *Engine) checkString(s *jsonschema.Schema, data any, ctx *Context) bool {
	str, isString := data.(string)
	if !isString {
		return true
	}
	ok := true
	if s.MinLength != nil && len([]rune(str)) < *s.MinLength {
		ctx.Errorf(s, "minLength", "must be at least %d characters long", *s.MinLength)
		ok = false
	}
	if s.MaxLength != nil && len([]rune(str)) > *s.MaxLength {
		ctx.Errorf(s, "maxLength", "must be at most %d characters long", *s.MaxLength)
		ok = false
	}
	if s.Pattern != "" {
		re, err := e.pattern(s.Pattern)
		// An unsupported pattern syntax is a schema problem, not a
		// document problem; skip the check rather than fail the value.
		if err == nil && !re.MatchString(str) {
			ctx.Errorf(s, "pattern", "must match pattern %q", s.Pattern)
			ok = false
		}
	}
	return ok
}

func (e *Engine) checkObject(s *jsonschema.Schema, data any, ctx *Context) bool {
	obj, isObject := data.(map[string]any)
	if !isObject {
		return true
	}
	ok := true
	for _, required := range s.Required {
		if _, present := obj[required]; !present {
			ctx.Errorf(s, "required", "must have required property '%s'", required)
			ok = false
		}
	}
	if len(s.Properties) > 0 {
		// Deterministic diagnostic order.
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value, present := obj[name]
			if !present {
				continue
			}
			ok = e.validateSchema(s.Properties[name], value, ctx.child(name, obj)) && ok
		}
	}
	return ok
}

func (e *Engine) checkArray(s *jsonschema.Schema, data any, ctx *Context) bool {
	arr, isArray := data.([]any)
	if !isArray {
		return true
	}
	ok := true
	if s.MinItems != nil && len(arr) < *s.MinItems {
		ctx.Errorf(s, "minItems", "must have at least %d items", *s.MinItems)
		ok = false
	}
	if s.MaxItems != nil && len(arr) > *s.MaxItems {
		ctx.Errorf(s, "maxItems", "must have at most %d items", *s.MaxItems)
		ok = false
	}
	for i, prefix := range s.PrefixItems {
		if i >= len(arr) {
			break
		}
		ok = e.validateSchema(prefix, arr[i], ctx.child(strconv.Itoa(i), arr)) && ok
	}
	if s.Items != nil {
		for i := len(s.PrefixItems); i < len(arr); i++ {
			ok = e.validateSchema(s.Items, arr[i], ctx.child(strconv.Itoa(i), arr)) && ok
		}
	}
	return ok
}

func (e *Engine) checkLogic(s *jsonschema.Schema, data any, ctx *Context) bool {
	ok := true
	for _, sub := range s.AllOf {
		ok = e.validateSchema(sub, data, ctx) && ok
	}
	if len(s.AnyOf) > 0 {
		matched := false
		for _, sub := range s.AnyOf {
			if e.validateSchema(sub, data, ctx.quiet()) {
				matched = true
				break
			}
		}
		if !matched {
			ctx.Errorf(s, "anyOf", "must match at least one of the expected schemas")
			ok = false
		}
	}
	if len(s.OneOf) > 0 {
		matches := 0
		for _, sub := range s.OneOf {
			if e.validateSchema(sub, data, ctx.quiet()) {
				matches++
			}
		}
		if matches != 1 {
			ctx.Errorf(s, "oneOf", "must match exactly one of the expected schemas")
			ok = false
		}
	}
	if s.Not != nil {
		if e.validateSchema(s.Not, data, ctx.quiet()) {
			ctx.Errorf(s, "not", "must not be valid against the given schema")
			ok = false
		}
	}
	return ok
}

// checkConditional evaluates if/then/else. The "if" diagnostic mirrors the
// chosen branch's failures; post-processing suppresses it in favor of the
// branch's own messages.
func (e *Engine) checkConditional(s *jsonschema.Schema, data any, ctx *Context) bool {
	if s.If == nil {
		return true
	}
	branch, name := s.Else, "else"
	if e.validateSchema(s.If, data, ctx.quiet()) {
		branch, name = s.Then, "then"
	}
	if branch == nil {
		return true
	}
	q := ctx.quiet()
	if e.validateSchema(branch, data, q) {
		return true
	}
	ctx.drain(q)
	ctx.Errorf(s, "if", "must match %q schema", name)
	return false
}

// EqualValues compares two decoded JSON values. Numbers compare by value.
func EqualValues(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string, bool, nil:
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func jsonText(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case nil:
		return "null"
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", v)
}
