// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package validate assembles the full validation pipeline: metadata
// annotation, property indexing and union rewriting at construction time,
// then compiled validation with diagnostic post-processing at query time.
package validate

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/lottie/schema-go/diagnostic"
	"github.com/lottie/schema-go/docmeta"
	"github.com/lottie/schema-go/engine"
	"github.com/lottie/schema-go/internal/jsonptr"
	"github.com/lottie/schema-go/jsonschema"
	"github.com/lottie/schema-go/keywords"
	"github.com/lottie/schema-go/propindex"
	"github.com/lottie/schema-go/rewriter"
)

// DefaultDocsURL is the canonical documentation site diagnostics link to
// when no other prefix is configured.
const DefaultDocsURL = "https://lottiefiles.github.io/lottie-docs"

// Config carries the validator's construction options.
type Config struct {
	// NamePaths enables collecting the "nm" of every object along a
	// diagnostic's path that carries a "ty" into its PathNames.
	NamePaths bool
	// DocsURL overrides the documentation URL prefix.
	DocsURL string
}

// A Validator validates animation documents against a prepared schema.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	doc  *jsonschema.Document
	eng  *engine.Engine
	root engine.ValidateFunc
	cfg  Config
}

// New prepares doc for validation and compiles it. The document is
// mutated in place by the preparation stages and must not be shared with
// another Validator.
func New(doc *jsonschema.Document, cfg Config) (*Validator, error) {
	if doc.ID == "" {
		return nil, errors.New("validate: schema document has no $id")
	}
	if cfg.DocsURL == "" {
		cfg.DocsURL = DefaultDocsURL
	}

	docmeta.Annotate(doc, cfg.DocsURL)
	propindex.Build(doc)
	rewriter.Rewrite(doc)

	eng := engine.New(doc)
	keywords.Register(eng)
	root, err := eng.CompileRoot()
	if err != nil {
		return nil, errors.Wrap(err, "validate: compiling root schema")
	}
	return &Validator{doc: doc, eng: eng, root: root, cfg: cfg}, nil
}

// Validate checks input, which is either a JSON string ([]byte and string
// both work) or an already-decoded document, and returns the diagnostics
// sorted by path.
func (v *Validator) Validate(input any, showWarnings bool) []diagnostic.Diagnostic {
	switch input := input.(type) {
	case string:
		return v.ValidateString(input, showWarnings)
	case []byte:
		return v.ValidateString(string(input), showWarnings)
	default:
		return v.ValidateObject(input, showWarnings)
	}
}

// ValidateString parses input as JSON and validates it. A parse failure
// yields two error diagnostics: a fixed first message and the parser's
// own.
func (v *Validator) ValidateString(input string, showWarnings bool) []diagnostic.Diagnostic {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return []diagnostic.Diagnostic{
			{Type: diagnostic.Error, Message: "Document is not a valid JSON file", Name: "Value"},
			{Type: diagnostic.Error, Message: err.Error(), Name: "Value"},
		}
	}
	return v.ValidateObject(data, showWarnings)
}

// ValidateObject validates an already-decoded document.
func (v *Validator) ValidateObject(data any, showWarnings bool) []diagnostic.Diagnostic {
	raw := v.eng.Run(v.root, data)
	out := make([]diagnostic.Diagnostic, 0, len(raw))
	for _, re := range raw {
		if re.Warning && !showWarnings {
			continue
		}
		// An "if" failure duplicates the guarded branch's own errors.
		if re.Keyword == "if" {
			continue
		}
		out = append(out, v.rewriteError(re, data))
	}
	diagnostic.Sort(out)
	return out
}

// rewriteError turns a raw engine error into a documented diagnostic.
func (v *Validator) rewriteError(re engine.Error, data any) diagnostic.Diagnostic {
	message := re.Message
	if re.Keyword == "pattern" {
		message = "doesn't match the pattern"
	}
	name, docs := "Value", ""
	if re.Schema != nil {
		if re.Schema.DisplayName != "" {
			name = re.Schema.DisplayName
		}
		docs = re.Schema.DocsURL
	}
	d := diagnostic.Diagnostic{
		Type:    diagnostic.Error,
		Message: name + " " + message,
		Path:    re.InstancePath,
		Name:    name,
		Docs:    docs,
	}
	if re.Warning {
		d.Type = diagnostic.Warning
		d.Warning = re.Kind
	}
	if v.cfg.NamePaths {
		d.PathNames = namePath(data, re.InstancePath)
	}
	return d
}

// namePath walks the document along path and collects the "nm" of every
// node that carries a "ty", nil when the node is unnamed.
func namePath(data any, path string) []*string {
	var names []*string
	for _, step := range jsonptr.Walk(data, path) {
		obj, ok := step.(map[string]any)
		if !ok {
			continue
		}
		if _, hasTy := obj["ty"]; !hasTy {
			continue
		}
		if nm, ok := obj["nm"].(string); ok {
			names = append(names, &nm)
		} else {
			names = append(names, nil)
		}
	}
	return names
}
