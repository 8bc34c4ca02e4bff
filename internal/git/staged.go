// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-git-integration R2 (staged content reconstruction);
//
//	docs/ARCHITECTURE § Git Integration.
package git

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// StagedChanges returns full per-file change records for everything in
// the index, with added/deleted line content reconstructed by diffing
// the HEAD blob against the staged blob. go-git has no index-vs-HEAD
// patch API, so the line lists are computed here with a line-mode diff.
//
// Implements: prd006-git-integration R2.1-R2.4.
func (r *Repo) StagedChanges() ([]types.FileChange, error) {
	entries, err := r.StagedStatus()
	if err != nil {
		return nil, err
	}

	changes := make([]types.FileChange, 0, len(entries))
	for _, e := range entries {
		fc := types.ChangeFromStatus(e)
		fc.OldPath = e.Path

		oldText, inHead, err := r.headContents(e.Path)
		if err != nil {
			return nil, err
		}
		newText, inIndex, err := r.stagedContents(e.Path)
		if err != nil {
			return nil, err
		}

		if !inHead {
			fc.OldPath = ""
		}
		fc.AddedLines, fc.DeletedLines = diffLines(oldText, newText)

		// Status codes can lag the index on fresh repositories; trust
		// blob presence over the reported letter.
		if !inHead && inIndex {
			fc.IsNew = true
		}
		if inHead && !inIndex {
			fc.IsDeleted = true
		}
		changes = append(changes, fc)
	}

	return changes, nil
}

// StagedDiff synthesizes unified-diff-style text for the staged changes,
// suitable for keyword scans and for the raw-diff parser.
//
// Implements: prd006-git-integration R2.5.
func (r *Repo) StagedDiff() (string, error) {
	changes, err := r.StagedChanges()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, fc := range changes {
		old := fc.OldPath
		if old == "" {
			old = fc.NewPath
		}
		fmt.Fprintf(&buf, "diff --git a/%s b/%s\n", old, fc.NewPath)
		if fc.IsNew {
			buf.WriteString("new file mode 100644\n")
		}
		if fc.IsDeleted {
			buf.WriteString("deleted file mode 100644\n")
		}
		fmt.Fprintf(&buf, "--- a/%s\n", old)
		fmt.Fprintf(&buf, "+++ b/%s\n", fc.NewPath)
		for _, l := range fc.DeletedLines {
			buf.WriteString("-" + l + "\n")
		}
		for _, l := range fc.AddedLines {
			buf.WriteString("+" + l + "\n")
		}
	}
	return buf.String(), nil
}

// headContents returns the file's content in the HEAD commit. The second
// return is false when HEAD is unborn or the file does not exist there.
func (r *Repo) headContents(path string) (string, bool, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", false, nil // unborn HEAD: nothing committed yet
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return "", false, fmt.Errorf("getting HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", false, fmt.Errorf("getting HEAD tree: %w", err)
	}

	f, err := tree.File(path)
	if err == object.ErrFileNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s from HEAD: %w", path, err)
	}

	content, err := f.Contents()
	if err != nil {
		return "", false, fmt.Errorf("reading %s from HEAD: %w", path, err)
	}
	return content, true, nil
}

// stagedContents returns the file's content in the index. The second
// return is false when the file has no index entry (staged deletion).
func (r *Repo) stagedContents(path string) (string, bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return "", false, fmt.Errorf("reading index: %w", err)
	}

	entry, err := idx.Entry(path)
	if err == index.ErrEntryNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading index entry %s: %w", path, err)
	}

	blob, err := object.GetBlob(r.repo.Storer, entry.Hash)
	if err != nil {
		return "", false, fmt.Errorf("reading staged blob %s: %w", path, err)
	}

	rd, err := blob.Reader()
	if err != nil {
		return "", false, fmt.Errorf("opening staged blob %s: %w", path, err)
	}
	defer rd.Close()

	content, err := io.ReadAll(rd)
	if err != nil {
		return "", false, fmt.Errorf("reading staged blob %s: %w", path, err)
	}
	return string(content), true, nil
}

// diffLines computes added and deleted lines between two file versions
// using a line-mode diff, preserving document order.
func diffLines(oldText, newText string) (added, deleted []string) {
	if oldText == newText {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added = append(added, splitDiffChunk(d.Text)...)
		case diffmatchpatch.DiffDelete:
			deleted = append(deleted, splitDiffChunk(d.Text)...)
		}
	}
	return added, deleted
}

// splitDiffChunk splits a diff chunk into lines, dropping the empty
// trailing element left by a terminal newline.
func splitDiffChunk(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
