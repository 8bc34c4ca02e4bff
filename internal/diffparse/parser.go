// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diffparse converts raw unified-diff text into per-file change
// records.
// Implements: prd002-diff-parser R1, R2;
//
//	docs/ARCHITECTURE § Diff Parser.
package diffparse

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// headerRe matches the start of a per-file block and captures the old
// and new paths.
var headerRe = regexp.MustCompile(`^diff --git a/(.*) b/(.*)$`)

// Parse scans raw unified-diff text line by line and returns one
// FileChange per "diff --git" header block, in input order. Lines before
// the first header are ignored; "+"/"-" content lines are collected
// without their prefix, excluding the "+++"/"---" file markers. Parse is
// total: malformed input never fails, and input with no headers yields an
// empty slice, which callers must treat as "no changes detected".
//
// Implements: prd002-diff-parser R1.1-R1.6.
func Parse(raw string) []types.FileChange {
	var files []types.FileChange
	var current *types.FileChange

	for _, line := range strings.Split(raw, "\n") {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			files = append(files, types.FileChange{
				OldPath: m[1],
				NewPath: m[2],
			})
			current = &files[len(files)-1]
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "new file mode"):
			current.IsNew = true
		case strings.HasPrefix(line, "deleted file mode"):
			current.IsDeleted = true
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			current.AddedLines = append(current.AddedLines, line[1:])
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			current.DeletedLines = append(current.DeletedLines, line[1:])
		}
	}

	return files
}
