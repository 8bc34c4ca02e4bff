// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types contains the shared data model for diff analysis and
// commit message classification.
// Implements: prd001-analyzer-interface R5 (FileChange, StatusEntry);
//
//	docs/ARCHITECTURE § Data Model.
package types

import (
	"path"
	"strings"
)

// FileStatus is the single-letter staging status of a changed file, as
// reported by a name-status listing. Zero means the status is unknown
// (e.g. the record was parsed from raw diff text).
type FileStatus byte

const (
	StatusAdded    FileStatus = 'A'
	StatusModified FileStatus = 'M'
	StatusDeleted  FileStatus = 'D'
	StatusRenamed  FileStatus = 'R'
)

// Word returns the past-tense word used for this status in commit bodies.
// Unknown letters map to "changed".
func (s FileStatus) Word() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	default:
		return "changed"
	}
}

// StatusEntry is a coarse per-file change record: path plus staging status.
// This is the input shape for the whole-diff type detector, used when full
// line content is not available.
type StatusEntry struct {
	Path   string     // File path relative to the repository root
	Status FileStatus // Single-letter staging status
}

// FileChange is one file touched by a diff, with its added and deleted
// line content. Exactly one FileChange is produced per "diff --git"
// header block. IsNew and IsDeleted are mutually exclusive.
type FileChange struct {
	OldPath      string     // Path before the change (empty for new files)
	NewPath      string     // Path after the change; the canonical path
	IsNew        bool       // File was created by this change
	IsDeleted    bool       // File was removed by this change
	Status       FileStatus // Staging status when built from a name-status listing; zero when parsed from diff text
	AddedLines   []string   // "+" lines in diff order, without the leading "+"
	DeletedLines []string   // "-" lines in diff order, without the leading "-"
}

// Name returns the base filename of the canonical path.
func (f FileChange) Name() string {
	return path.Base(f.NewPath)
}

// ChangedLines returns the total number of added and deleted lines.
func (f FileChange) ChangedLines() int {
	return len(f.AddedLines) + len(f.DeletedLines)
}

// StatusWord returns the body word for this change. The explicit Status
// takes precedence; otherwise the word is derived from the flags.
func (f FileChange) StatusWord() string {
	if f.Status != 0 {
		return f.Status.Word()
	}
	switch {
	case f.IsNew:
		return "added"
	case f.IsDeleted:
		return "deleted"
	case f.OldPath != "" && f.OldPath != f.NewPath:
		return "renamed"
	default:
		return "modified"
	}
}

// ChangeFromStatus converts a coarse status entry into a FileChange with
// no line content, for use with the heuristics that only need paths and
// new/deleted flags.
func ChangeFromStatus(e StatusEntry) FileChange {
	return FileChange{
		NewPath:   e.Path,
		IsNew:     e.Status == StatusAdded,
		IsDeleted: e.Status == StatusDeleted,
		Status:    e.Status,
	}
}

// ChangesFromStatus converts a name-status listing into FileChange records,
// preserving input order.
func ChangesFromStatus(entries []StatusEntry) []FileChange {
	changes := make([]FileChange, 0, len(entries))
	for _, e := range entries {
		changes = append(changes, ChangeFromStatus(e))
	}
	return changes
}

// Stem returns name without its last extension, e.g. "old_helper.py" ->
// "old_helper".
func Stem(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext)
}
