// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-cli R2 (analyze command, output formatting).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/commitgen/pkg/commitmsg"
)

// newAnalyzeCmd creates the "analyze" command: classify raw diff text
// from a file or stdin.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify raw diff text",
		Long:  "Analyze reads unified-diff text from --diff-file or stdin and prints the derived conventional commit message.",
		RunE:  runAnalyze,
	}

	cmd.Flags().String("diff-file", "", "Read the diff from this file instead of stdin")

	return cmd
}

// runAnalyze classifies the provided diff text.
func runAnalyze(cmd *cobra.Command, args []string) error {
	raw, err := readDiff(cmd)
	if err != nil {
		return err
	}

	result, err := commitmsg.FromDiff(raw, options())
	if err != nil {
		return err
	}

	charmlog.Debug("classified diff", "type", result.Type, "scope", result.Scope)
	return printResult(result)
}

// readDiff returns the diff text from --diff-file, or from stdin when
// it is a pipe. A terminal stdin with no file is a usage error.
func readDiff(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("diff-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading diff file: %w", err)
		}
		return string(data), nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no diff provided: pipe a diff via stdin or use --diff-file")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// printResult writes the classification to stdout in the configured
// format.
func printResult(result *commitmsg.Result) error {
	if viper.GetString("format") == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(result.Message)
	return nil
}
