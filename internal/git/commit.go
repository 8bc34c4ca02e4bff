// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-git-integration R3 (commit), R4 (undo);
//
//	docs/ARCHITECTURE § Git Integration.
package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	authorName  = "commitgen"
	authorEmail = "noreply@commitgen"
)

// Commit creates a commit from the currently staged changes with the
// given message and a Generated-by trailer, so the commit can later be
// identified and reverted by Undo.
//
// Implements: prd006-git-integration R3.1-R3.3.
func (r *Repo) Commit(msg string) (plumbing.Hash, error) {
	if _, err := r.StagedStatus(); err != nil {
		return plumbing.ZeroHash, err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting worktree: %w", err)
	}

	hash, err := wt.Commit(msg+"\n\n"+trailer, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing: %w", err)
	}

	return hash, nil
}

// Undo reverts the last commit if it was made by commitgen (identified
// by the Generated-by trailer). Uses a soft reset to the parent so the
// changes stay staged in the working tree.
//
// Implements: prd006-git-integration R4.1-R4.4.
func (r *Repo) Undo() error {
	ours, err := r.IsCommitgenCommit()
	if err != nil {
		return err
	}
	if !ours {
		return ErrNotCommitgenCommit
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("getting commit: %w", err)
	}

	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = wt.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}

	return nil
}
