// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git reads staged changes from a repository and creates or
// reverts commitgen-authored commits.
// Implements: prd006-git-integration R1, R2, R4;
//
//	docs/ARCHITECTURE § Git Integration.
package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/petar-djukic/commitgen/pkg/types"
)

const trailer = "Generated-by: commitgen"

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrNoStagedChanges is returned when the index holds nothing to classify.
var ErrNoStagedChanges = errors.New("no staged changes")

// ErrNotCommitgenCommit is returned when undo targets a commit not made
// by commitgen.
var ErrNotCommitgenCommit = errors.New("not a commitgen commit")

// Config configures repository access.
type Config struct {
	WorkDir string // Repository working directory
}

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
	cfg  Config
}

// Open opens an existing git repository at the configured work directory.
// Returns ErrNoGit if the directory is not a git repository.
//
// Implements: prd006-git-integration R1.1.
func Open(cfg Config) (*Repo, error) {
	r, err := gogit.PlainOpen(cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r, cfg: cfg}, nil
}

// StagedStatus returns one entry per staged file, sorted by path for
// deterministic output. Returns ErrNoStagedChanges when the index is
// clean.
//
// Implements: prd006-git-integration R1.2, R1.3.
func (r *Repo) StagedStatus() ([]types.StatusEntry, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	paths := make([]string, 0, len(status))
	for p := range status {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var entries []types.StatusEntry
	for _, p := range paths {
		code := status[p].Staging
		if code == gogit.Unmodified || code == gogit.Untracked {
			continue
		}
		entries = append(entries, types.StatusEntry{
			Path:   p,
			Status: types.FileStatus(code),
		})
	}

	if len(entries) == 0 {
		return nil, ErrNoStagedChanges
	}
	return entries, nil
}

// IsCommitgenCommit checks whether the HEAD commit was made by commitgen
// by looking for the Generated-by trailer.
//
// Implements: prd006-git-integration R4.2.
func (r *Repo) IsCommitgenCommit() (bool, error) {
	head, err := r.repo.Head()
	if err != nil {
		return false, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return false, fmt.Errorf("getting commit: %w", err)
	}

	return strings.Contains(commit.Message, trailer), nil
}
