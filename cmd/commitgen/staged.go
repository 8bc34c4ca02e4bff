// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-cli R3 (staged/commit/undo commands).
package main

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gitpkg "github.com/petar-djukic/commitgen/internal/git"
	"github.com/petar-djukic/commitgen/pkg/commitmsg"
)

// newStagedCmd creates the "staged" command: classify the staged changes
// of a repository without committing.
func newStagedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staged",
		Short: "Classify the staged changes",
		Long:  "Staged reads the repository index and prints the conventional commit message derived from the staged changes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			coarse, _ := cmd.Flags().GetBool("coarse")
			result, err := classifyStaged(coarse)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().Bool("coarse", false, "Use the status+diff-text detector instead of per-file voting")

	return cmd
}

// newCommitCmd creates the "commit" command: classify the staged changes
// and create the commit.
func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the staged changes with a generated message",
		RunE: func(cmd *cobra.Command, args []string) error {
			coarse, _ := cmd.Flags().GetBool("coarse")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := classifyStaged(coarse)
			if err != nil {
				return err
			}

			if dryRun {
				return printResult(result)
			}

			repo, err := gitpkg.Open(gitpkg.Config{WorkDir: viper.GetString("workdir")})
			if err != nil {
				return err
			}

			hash, err := repo.Commit(result.Message)
			if err != nil {
				return err
			}

			fmt.Printf("[%s] %s\n", hash.String()[:7], result.Message)
			return nil
		},
	}

	cmd.Flags().Bool("coarse", false, "Use the status+diff-text detector instead of per-file voting")
	cmd.Flags().Bool("dry-run", false, "Print the message without committing")

	return cmd
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last commitgen commit",
		Long:  "Undo performs a soft reset of the last commit if it was made by commitgen.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := gitpkg.Open(gitpkg.Config{WorkDir: viper.GetString("workdir")})
			if err != nil {
				return err
			}

			if err := repo.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			fmt.Println("Successfully reverted last commitgen commit.")
			return nil
		},
	}
}

// classifyStaged opens the repository and classifies its staged changes
// with either the fine-grained or the coarse detector.
func classifyStaged(coarse bool) (*commitmsg.Result, error) {
	repo, err := gitpkg.Open(gitpkg.Config{WorkDir: viper.GetString("workdir")})
	if err != nil {
		return nil, err
	}

	if coarse {
		entries, err := repo.StagedStatus()
		if err != nil {
			return nil, err
		}
		diffText, err := repo.StagedDiff()
		if err != nil {
			return nil, err
		}
		charmlog.Debug("classifying staged changes", "strategy", "coarse", "files", len(entries))
		return commitmsg.FromStatus(entries, diffText, options())
	}

	changes, err := repo.StagedChanges()
	if err != nil {
		return nil, err
	}
	charmlog.Debug("classifying staged changes", "strategy", "voting", "files", len(changes))
	return commitmsg.FromChanges(changes, options())
}
