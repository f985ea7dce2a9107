// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lottie/schema-go/diagnostic"
	"github.com/lottie/schema-go/internal/loader"
	"github.com/lottie/schema-go/validate"
)

// fileConfig is the optional YAML config file; flags override its values.
type fileConfig struct {
	DocsURL      string `yaml:"docs_url"`
	NamePaths    bool   `yaml:"name_paths"`
	ShowWarnings *bool  `yaml:"show_warnings"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "validate <document>...",
		Short: "Validate one or more animation documents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().String("schema", loader.SchemaFileName, "path to the schema document")
	cmd.Flags().String("docs-url", "", "documentation URL prefix for diagnostics")
	cmd.Flags().Bool("name-paths", false, "collect layer names along each diagnostic path")
	cmd.Flags().Bool("no-warnings", false, "suppress warning diagnostics")
	cmd.Flags().Bool("json", false, "print diagnostics as JSON")
	cmd.Flags().String("config", "", "YAML config file with docs_url, name_paths, show_warnings")
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath, _ := cmd.Flags().GetString("schema")
	docsURL, _ := cmd.Flags().GetString("docs-url")
	namePaths, _ := cmd.Flags().GetBool("name-paths")
	noWarnings, _ := cmd.Flags().GetBool("no-warnings")
	asJSON, _ := cmd.Flags().GetBool("json")
	configPath, _ := cmd.Flags().GetString("config")

	showWarnings := !noWarnings
	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		if docsURL == "" {
			docsURL = fc.DocsURL
		}
		if !cmd.Flags().Changed("name-paths") {
			namePaths = fc.NamePaths
		}
		if !cmd.Flags().Changed("no-warnings") && fc.ShowWarnings != nil {
			showWarnings = *fc.ShowWarnings
		}
	}

	doc, err := loader.Load(schemaPath)
	if err != nil {
		return err
	}
	slog.Debug("schema loaded", "path", schemaPath, "id", doc.ID)

	v, err := validate.New(doc, validate.Config{NamePaths: namePaths, DocsURL: docsURL})
	if err != nil {
		return err
	}

	failed := false
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "reading document")
		}
		diags := v.ValidateString(string(data), showWarnings)
		slog.Debug("document validated", "path", path, "diagnostics", len(diags))
		if printDiagnostics(cmd, path, diags, asJSON) {
			failed = true
		}
	}
	if failed {
		return errors.New("validation failed")
	}
	return nil
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return &fc, nil
}

// printDiagnostics writes diags for one document and reports whether any
// of them is an error.
func printDiagnostics(cmd *cobra.Command, path string, diags []diagnostic.Diagnostic, asJSON bool) bool {
	out := cmd.OutOrStdout()
	hasError := false
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]any{"file": path, "diagnostics": diags})
		for _, d := range diags {
			if d.Type == diagnostic.Error {
				hasError = true
			}
		}
		return hasError
	}
	for _, d := range diags {
		if d.Type == diagnostic.Error {
			hasError = true
		}
		fmt.Fprintf(out, "%s: %s: %s (%s)", path, d.Type, d.Message, d.Path)
		if d.Docs != "" {
			fmt.Fprintf(out, "\n    see %s", d.Docs)
		}
		fmt.Fprintln(out)
	}
	return hasError
}
