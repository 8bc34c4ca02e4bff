// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-scope-detection R1;
//
//	docs/ARCHITECTURE § Scope Detection.
package classify

import (
	"strings"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// scopeCandidate derives a file's scope token: its first path segment,
// or its extension-stripped filename for root-level files. Lowercased.
func scopeCandidate(p string) string {
	segments := strings.Split(p, "/")
	if len(segments) == 1 {
		return strings.ToLower(types.Stem(segments[0]))
	}
	return strings.ToLower(segments[0])
}

// DetectScope derives a single scope token from the changed files. An
// empty set has no scope. A single file scopes to its first path segment
// (or its extension-stripped name when at the root). With multiple files,
// a unanimous candidate wins; otherwise the candidate of the file with
// the most changed lines wins, ties going to the earliest file in input
// order. Status-only records carry zero line counts, so for them the
// tie-break degrades to first occurrence.
//
// Implements: prd004-scope-detection R1.1-R1.4.
func DetectScope(files []types.FileChange) string {
	if len(files) == 0 {
		return ""
	}
	if len(files) == 1 {
		return scopeCandidate(files[0].NewPath)
	}

	first := scopeCandidate(files[0].NewPath)
	unanimous := true

	mostChanged := 0
	for i, f := range files {
		if scopeCandidate(f.NewPath) != first {
			unanimous = false
		}
		if f.ChangedLines() > files[mostChanged].ChangedLines() {
			mostChanged = i
		}
	}

	if unanimous {
		return first
	}
	return scopeCandidate(files[mostChanged].NewPath)
}
