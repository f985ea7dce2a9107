// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package engine is a small JSON-Schema validation engine over the
// jsonschema document model. It exists because the semantic rules of the
// animation format need custom keywords spliced into the schema graph:
// the engine exposes keyword registration with a callback that sees the
// data, the owning schema node and the validation context, compiles
// sub-schemas addressable by identifier, and collects every violation
// instead of failing fast.
//
// An Engine is immutable once keywords are registered and is safe for
// concurrent Validate calls.
package engine

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/pkg/errors"

	"github.com/lottie/schema-go/internal/jsonptr"
	"github.com/lottie/schema-go/internal/schemaid"
	"github.com/lottie/schema-go/jsonschema"
)

// An Error is one raw validation diagnostic. The post-processing layer
// turns Errors into consumer-facing diagnostics.
type Error struct {
	// Keyword names the schema keyword that failed ("required", "type",
	// "pattern", or a custom keyword).
	Keyword string
	// InstancePath is the JSON Pointer to the offending document value.
	InstancePath string
	// Message describes the violation without the node's display name,
	// which the post-processor prefixes.
	Message string
	// Schema is the node whose keyword failed; it carries the display
	// annotations.
	Schema *jsonschema.Schema
	// Warning marks soft diagnostics, with Kind one of "property" or
	// "type".
	Warning bool
	Kind    string
}

// A KeywordFunc validates data against one custom keyword. val is the
// keyword's value in the schema, parent the schema node carrying it. The
// function reports violations through ctx and returns whether validation
// of this node may be considered successful.
type KeywordFunc func(val any, data any, parent *jsonschema.Schema, ctx *Context) bool

// A ValidateFunc validates data within a context and reports whether it
// conforms.
type ValidateFunc func(data any, ctx *Context) bool

type keywordEntry struct {
	name string
	fn   KeywordFunc
}

// An Engine validates documents against one schema document.
type Engine struct {
	doc      *jsonschema.Document
	keywords []keywordEntry

	mu       sync.Mutex
	compiled map[string]ValidateFunc
	patterns map[string]*regexp.Regexp
}

// New returns an engine over doc. Register all custom keywords before the
// first Compile or Validate call.
func New(doc *jsonschema.Document) *Engine {
	return &Engine{
		doc:      doc,
		compiled: make(map[string]ValidateFunc),
		patterns: make(map[string]*regexp.Regexp),
	}
}

// RegisterKeyword adds a custom keyword. Keywords run after the built-in
// checks, in registration order, on every schema node that carries the
// keyword (see jsonschema.Schema.Keyword).
func (e *Engine) RegisterKeyword(name string, fn KeywordFunc) {
	e.keywords = append(e.keywords, keywordEntry{name, fn})
}

// GetSchema resolves a sub-schema by identifier.
func (e *Engine) GetSchema(id string) (*jsonschema.Schema, error) {
	return e.doc.Resolve(id)
}

// Compile resolves id and returns a validator for the schema it names.
// Compiled validators are cached per identifier.
func (e *Engine) Compile(id string) (ValidateFunc, error) {
	id = schemaid.Absolutize(e.doc.ID, id)
	e.mu.Lock()
	fn, ok := e.compiled[id]
	e.mu.Unlock()
	if ok {
		return fn, nil
	}
	s, err := e.doc.Resolve(id)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling %q", id)
	}
	fn = func(data any, ctx *Context) bool {
		return e.validateSchema(s, data, ctx)
	}
	e.mu.Lock()
	e.compiled[id] = fn
	e.mu.Unlock()
	return fn, nil
}

// CompileRoot returns a validator for the schema named by the document's
// own $ref.
func (e *Engine) CompileRoot() (ValidateFunc, error) {
	if e.doc.Ref == "" {
		return nil, errors.Errorf("engine: document %q has no root $ref", e.doc.ID)
	}
	return e.Compile(e.doc.Ref)
}

// Validate runs the root validator over data and returns every collected
// diagnostic. It never fails fast.
func (e *Engine) Validate(data any) ([]Error, error) {
	root, err := e.CompileRoot()
	if err != nil {
		return nil, err
	}
	return e.Run(root, data), nil
}

// Run executes a compiled validator over data with a fresh collector and
// returns the diagnostics it gathered.
func (e *Engine) Run(fn ValidateFunc, data any) []Error {
	ctx := &Context{Engine: e, RootData: data, errs: &[]Error{}}
	fn(data, ctx)
	return *ctx.errs
}

// ValidateSchema validates data against an in-memory schema node within
// ctx. Custom keywords use it to run inline variant schemas.
func (e *Engine) ValidateSchema(s *jsonschema.Schema, data any, ctx *Context) bool {
	return e.validateSchema(s, data, ctx)
}

func (e *Engine) pattern(expr string) (*regexp.Regexp, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if re, ok := e.patterns[expr]; ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	e.patterns[expr] = re
	return re, nil
}

// A Context carries the state of one validation run: where we are in the
// document, the enclosing container, the document root, and the shared
// diagnostic collector.
type Context struct {
	Engine       *Engine
	InstancePath string
	ParentData   any
	RootData     any

	errs *[]Error
}

// Report appends a raw diagnostic.
func (ctx *Context) Report(err Error) {
	*ctx.errs = append(*ctx.errs, err)
}

// Errorf reports an error-level diagnostic against s.
func (ctx *Context) Errorf(s *jsonschema.Schema, keyword, format string, args ...any) {
	ctx.Report(Error{
		Keyword:      keyword,
		InstancePath: ctx.InstancePath,
		Message:      fmt.Sprintf(format, args...),
		Schema:       s,
	})
}

// Warnf reports a warning-level diagnostic of the given kind against s.
func (ctx *Context) Warnf(s *jsonschema.Schema, keyword, kind, format string, args ...any) {
	ctx.Report(Error{
		Keyword:      keyword,
		InstancePath: ctx.InstancePath,
		Message:      fmt.Sprintf(format, args...),
		Schema:       s,
		Warning:      true,
		Kind:         kind,
	})
}

// child returns a context one step deeper into the document.
func (ctx *Context) child(token string, parentData any) *Context {
	return &Context{
		Engine:       ctx.Engine,
		InstancePath: jsonptr.Append(ctx.InstancePath, token),
		ParentData:   parentData,
		RootData:     ctx.RootData,
		errs:         ctx.errs,
	}
}

// quiet returns a copy of ctx with a private collector, for trial
// validation whose diagnostics may be discarded.
func (ctx *Context) quiet() *Context {
	c := *ctx
	c.errs = &[]Error{}
	return &c
}

// drain moves the quiet context's diagnostics into ctx.
func (ctx *Context) drain(q *Context) {
	*ctx.errs = append(*ctx.errs, *q.errs...)
}
