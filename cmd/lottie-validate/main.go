// Copyright 2025 The JSON Schema Go Project Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command lottie-validate checks animation documents against the format
// schema and prints documentation-linked diagnostics.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lottie-validate",
	Short:         "Validate animation documents against the format schema",
	SilenceUsage:  true,
	SilenceErrors: false,
	Long: `lottie-validate prepares the animation format schema, augments it with
the format's semantic rules (tagged unions, animated properties, keyframe
ordering, asset references, unknown-property detection) and validates one
or more documents against it.

The exit code is non-zero when any document produced an error-level
diagnostic.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
