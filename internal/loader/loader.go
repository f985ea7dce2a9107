// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package loader reads the schema document the pipeline is constructed
// from. The format is determined by file extension: YAML for .yaml/.yml,
// JSON otherwise.
package loader

import (
	"encoding/json"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lottie/schema-go/jsonschema"
)

// SchemaFileName is the canonical name of the published schema file.
const SchemaFileName = "lottie.schema.json"

// URL returns the canonical schema location under a CDN prefix.
func URL(cdnPrefix string) string {
	return strings.TrimSuffix(cdnPrefix, "/") + "/" + SchemaFileName
}

// Load reads and parses the schema document at path.
func Load(path string) (*jsonschema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema document")
	}
	return Parse(data, path)
}

// LoadFS is Load over an fs.FS, for embedded schema files.
func LoadFS(fsys fs.FS, path string) (*jsonschema.Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema document")
	}
	return Parse(data, path)
}

// Parse decodes a schema document, choosing the decoder from the file
// extension of path.
func Parse(data []byte, path string) (*jsonschema.Document, error) {
	var doc jsonschema.Document
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parsing schema document %s", path)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parsing schema document %s", path)
		}
	}
	if doc.ID == "" {
		return nil, errors.Errorf("schema document %s has no $id", path)
	}
	return &doc, nil
}
