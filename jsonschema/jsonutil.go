// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
)

// jsonFieldInfo describes how a struct field participates in JSON encoding.
type jsonFieldInfo struct {
	name string
	omit bool
}

// fieldJSONInfo reports the JSON name for sf, and whether it is excluded
// from JSON entirely (tag "-").
func fieldJSONInfo(sf reflect.StructField) jsonFieldInfo {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return jsonFieldInfo{name: sf.Name}
	}
	if tag == "-" {
		return jsonFieldInfo{omit: true}
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return jsonFieldInfo{name: name}
}

// knownJSONNames returns the set of JSON object keys that v's own fields
// already account for, so that unmarshalStructWithMap can tell which keys
// in the input belong in the catch-all map field instead.
func knownJSONNames(v any) map[string]bool {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]bool)
	for _, sf := range reflect.VisibleFields(t) {
		info := fieldJSONInfo(sf)
		if !info.omit && info.name != "" {
			names[info.name] = true
		}
	}
	return names
}

// marshalStructWithMap marshals v as a struct, then splices the entries of
// its map field named mapField (if any) in as additional top-level keys.
// v's own fields are expected to already omit mapField from its JSON tags
// (e.g. via `json:"-"`), since this function supplies those keys itself.
func marshalStructWithMap(v any, mapField string) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	fv := rv.FieldByName(mapField)
	if !fv.IsValid() || fv.IsNil() || fv.Len() == 0 {
		return base, nil
	}
	extra, ok := fv.Interface().(map[string]any)
	if !ok {
		return base, nil
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1]) // drop trailing '}'
	for i, k := range keys {
		// No separator before the first key when the base object is empty.
		if i > 0 || len(base) > 2 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(extra[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalStructWithMap unmarshals data into v's own fields, then collects
// every object key that none of v's fields claimed into v's map field named
// mapField, creating it if needed.
func unmarshalStructWithMap(data []byte, v any, mapField string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	known := knownJSONNames(v)
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	fv := rv.FieldByName(mapField)
	if !fv.IsValid() {
		return nil
	}

	var extra map[string]any
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if known[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(raw[k], &val); err != nil {
			return err
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = val
	}
	if extra != nil {
		fv.Set(reflect.ValueOf(extra))
	}
	return nil
}
