// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package docmeta annotates every schema node with the display name and
// documentation URL its diagnostics will carry, written to the schema
// model's DocsURL, DocsName and DisplayName fields.
package docmeta

import (
	"strings"

	"github.com/lottie/schema-go/jsonschema"
)

// Annotate walks every schema reachable from the document's $defs and
// assigns DocsURL, DocsName and DisplayName. It is idempotent: a second
// run overwrites each annotation with the same value.
func Annotate(doc *jsonschema.Document, docsURL string) {
	base := strings.TrimSuffix(docsURL, "/")
	for category, objects := range doc.Defs {
		docsName := categoryTitle(category)
		categoryURL := base + "/" + category + "/"
		for object, s := range objects {
			url := categoryURL
			if s.Type != "" {
				// Top-level typed objects get their own anchor on the
				// category page.
				url += "#" + object
			}
			name := s.Title
			if name == "" {
				name = objectTitle(object)
			}
			annotate(s, url, docsName, name)
		}
	}
}

// annotate sets the three annotations on s, derives per-field names for its
// properties, and recurses into every other child with the ambient name.
func annotate(s *jsonschema.Schema, url, docsName, name string) {
	if s == nil {
		return
	}
	s.DocsURL = url
	s.DocsName = docsName
	s.DisplayName = name

	for prop, child := range s.Properties {
		childName := name + "." + prop
		if child != nil && child.Title != "" {
			childName = name + " " + strings.ToLower(child.Title)
		}
		annotate(child, url, docsName, childName)
	}
	for child := range s.Children() {
		if isProperty(s, child) {
			continue
		}
		childName := name
		if child.Title != "" {
			childName = child.Title
		}
		annotate(child, url, docsName, childName)
	}
}

func isProperty(parent, child *jsonschema.Schema) bool {
	for _, p := range parent.Properties {
		if p == child {
			return true
		}
	}
	return false
}

// categoryTitle turns a kebab-case category into its human title:
// "layers" becomes "Layer", "animated-properties" becomes
// "Animated Propertie" (the trailing "s" is stripped before casing).
func categoryTitle(category string) string {
	return titleWords(strings.TrimSuffix(category, "s"))
}

// objectTitle is the fallback display name for an object with no title.
func objectTitle(object string) string {
	return titleWords(object)
}

func titleWords(kebab string) string {
	words := strings.Split(kebab, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
