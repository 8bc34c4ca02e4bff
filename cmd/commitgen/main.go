// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command commitgen generates conventional commit messages from diffs or
// staged changes using deterministic heuristics.
// Implements: prd007-cli R1;
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gitpkg "github.com/petar-djukic/commitgen/internal/git"
	"github.com/petar-djukic/commitgen/pkg/commitmsg"
)

const version = "0.1.0"

// Exit codes: 1 for operational failures (empty diff, nothing staged),
// 2 when the work directory is not a git repository.
func main() {
	rootCmd := &cobra.Command{
		Use:   "commitgen",
		Short: "Heuristic conventional commit message generator",
		Long:  "commitgen inspects a diff or the staged changes of a repository and derives a conventional commit message (type, scope, subject) from file paths, change statistics, and line content. No model, no network.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				charmlog.SetLevel(charmlog.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Repository root directory")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text or json")
	rootCmd.PersistentFlags().Bool("body", false, "Include a per-file body in the message")
	rootCmd.PersistentFlags().String("type", "", "Override the detected commit type")
	rootCmd.PersistentFlags().String("scope", "", "Override the detected scope ('-' for none)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("body", rootCmd.PersistentFlags().Lookup("body"))
	viper.BindPFlag("type", rootCmd.PersistentFlags().Lookup("type"))
	viper.BindPFlag("scope", rootCmd.PersistentFlags().Lookup("scope"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: COMMITGEN_FORMAT, COMMITGEN_WORKDIR, etc.
	viper.SetEnvPrefix("COMMITGEN")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".commitgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newStagedCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps sentinel errors to the documented exit codes.
func exitCode(err error) int {
	if errors.Is(err, gitpkg.ErrNoGit) {
		return 2
	}
	return 1
}

// options builds commitmsg.Options from the resolved configuration.
func options() commitmsg.Options {
	return commitmsg.Options{
		TypeOverride:  viper.GetString("type"),
		ScopeOverride: viper.GetString("scope"),
		IncludeBody:   viper.GetBool("body"),
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print commitgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("commitgen %s\n", version)
		},
	}
}
