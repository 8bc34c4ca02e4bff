// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd005-summary-generation R1 (subject), R2 (body);
//
//	docs/ARCHITECTURE § Summary Generation.
package classify

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// Subject produces the human-readable subject for a change set and its
// chosen commit type. A single file gets a type-specific phrase; multiple
// files get counted add/remove/update clauses in that fixed order, except
// small docs changes, which list the filenames.
//
// Implements: prd005-summary-generation R1.1-R1.5.
func Subject(files []types.FileChange, commitType types.CommitType) string {
	if len(files) == 0 {
		return "empty change"
	}

	if len(files) == 1 {
		return singleFileSubject(files[0], commitType)
	}

	if commitType == types.TypeDocs && len(files) <= 3 {
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name()
		}
		return "update " + joinNames(names)
	}

	var newCount, delCount int
	for _, f := range files {
		switch {
		case f.IsNew:
			newCount++
		case f.IsDeleted:
			delCount++
		}
	}
	modCount := len(files) - newCount - delCount

	var parts []string
	if newCount > 0 {
		parts = append(parts, fmt.Sprintf("add %d %s", newCount, plural("file", newCount)))
	}
	if delCount > 0 {
		parts = append(parts, fmt.Sprintf("remove %d %s", delCount, plural("file", delCount)))
	}
	if modCount > 0 {
		parts = append(parts, fmt.Sprintf("update %d %s", modCount, plural("file", modCount)))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("update %d files", len(files))
	}
	return strings.Join(parts, ", ")
}

// singleFileSubject phrases a one-file change.
func singleFileSubject(f types.FileChange, commitType types.CommitType) string {
	name := f.Name()
	switch {
	case f.IsNew:
		return "add " + name
	case f.IsDeleted:
		return "remove " + name
	}

	switch commitType {
	case types.TypeFix:
		return "fix issue in " + name
	case types.TypeRefactor:
		return "refactor " + name
	case types.TypeStyle:
		return "format " + name
	case types.TypeTest:
		return "update tests in " + name
	default:
		return "update " + name
	}
}

// Body produces the optional commit body: one line per file with its
// status word, in input order.
//
// Implements: prd005-summary-generation R2.1-R2.3.
func Body(files []types.FileChange) string {
	if len(files) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("Files changed:\n")
	for _, f := range files {
		buf.WriteString(fmt.Sprintf("\n- %s (%s)", f.NewPath, f.StatusWord()))
	}
	return buf.String()
}

// joinNames joins filenames with commas and a final "and".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// plural appends "s" to word when n is not 1.
func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
