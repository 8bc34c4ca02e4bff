// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package classify implements the heuristic stages that turn parsed file
// changes into a conventional-commit classification: per-file predicates,
// type detection, scope detection, and subject/body generation.
// Implements: prd003-type-detection R2 (file predicates);
//
//	docs/ARCHITECTURE § Classification Engine.
package classify

import (
	"path"
	"regexp"
	"strings"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// Keyword and pattern tables are compiled once at init. All matching is
// case-insensitive; keyword matches are whole-word.
var (
	bugKeywordsRe  = regexp.MustCompile(`(?i)\b(fix|bug|error|issue|patch|crash|fault|defect|broken|wrong|incorrect)\b`)
	perfKeywordsRe = regexp.MustCompile(`(?i)\b(perf|optimize|cache|speed|fast|slow|memory)\b`)

	testPathRe = regexp.MustCompile(`(?i)(test_|_test\.|\.test\.|\.spec\.|/tests?/|/__tests__/|^tests?/|^__tests__/)`)
	docPathRe  = regexp.MustCompile(`(?i)(\.(md|txt|rst|adoc)$|^README|^CHANGELOG|^LICENSE|^CONTRIBUTING|^docs/)`)

	chorePathRe = regexp.MustCompile(`^(\.gitignore$|Makefile$|Dockerfile$|docker-compose|\.github/|\.circleci/|\.gitlab-ci` +
		`|Jenkinsfile$|package\.json$|package-lock\.json$|yarn\.lock$|Gemfile$|Gemfile\.lock$` +
		`|\.eslintrc|\.prettierrc|tsconfig|setup\.cfg$|setup\.py$|pyproject\.toml$` +
		`|Cargo\.toml$|Cargo\.lock$|go\.mod$|go\.sum$|\.env)`)

	// Leading tokens that introduce a function/type/export declaration.
	// Language-agnostic by design: covers Go, Python, JS/TS, and friends.
	constructRe = regexp.MustCompile(`^\s*(func |def |function |class |type \w+ (struct|interface)|const \w+ = |export )`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// configExts are extensions that mark configuration files regardless of name.
var configExts = map[string]bool{
	".json": true, ".yml": true, ".yaml": true, ".toml": true,
	".ini": true, ".cfg": true, ".conf": true, ".env": true,
}

// isTestPath reports whether p looks like a test file or lives under a
// test directory.
func isTestPath(p string) bool {
	return testPathRe.MatchString(p)
}

// isDocPath reports whether p is documentation (by extension or by
// conventional name/location).
func isDocPath(p string) bool {
	return docPathRe.MatchString(p)
}

// isChorePath reports whether p is a build, CI, or package-manifest file,
// or has a configuration extension.
func isChorePath(p string) bool {
	if configExts[strings.ToLower(path.Ext(p))] {
		return true
	}
	return chorePathRe.MatchString(p)
}

// containsBugKeyword reports whether text contains a bug-related keyword
// as a whole word, case-insensitive.
func containsBugKeyword(text string) bool {
	return bugKeywordsRe.MatchString(text)
}

// containsPerfKeyword reports whether text contains a performance-related
// keyword as a whole word, case-insensitive.
func containsPerfKeyword(text string) bool {
	return perfKeywordsRe.MatchString(text)
}

// stripWhitespace removes every whitespace character from s.
func stripWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, "")
}

// isStyleOnly reports whether a change is formatting-only: both sides
// non-empty, counts within max(1, added/3) of each other, and each added
// line equal to the deleted line at the same position once all whitespace
// is removed. The comparison is elementwise and order-sensitive.
func isStyleOnly(f types.FileChange) bool {
	added, deleted := f.AddedLines, f.DeletedLines
	if len(added) == 0 || len(deleted) == 0 {
		return false
	}

	diff := len(added) - len(deleted)
	if diff < 0 {
		diff = -diff
	}
	limit := len(added) / 3
	if limit < 1 {
		limit = 1
	}
	if diff > limit {
		return false
	}

	n := len(added)
	if len(deleted) < n {
		n = len(deleted)
	}
	for i := 0; i < n; i++ {
		if stripWhitespace(added[i]) != stripWhitespace(deleted[i]) {
			return false
		}
	}
	return true
}

// isRefactorLike reports whether a modification replaces roughly as many
// lines as it adds: not a new or deleted file, both counts positive,
// min/max ratio above 0.5, and at least 3 added lines.
func isRefactorLike(f types.FileChange) bool {
	if f.IsNew || f.IsDeleted {
		return false
	}
	a, d := len(f.AddedLines), len(f.DeletedLines)
	if a == 0 || d == 0 {
		return false
	}
	lo, hi := a, d
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo)/float64(hi) > 0.5 && a >= 3
}

// addsNewConstruct reports whether any added line introduces a function,
// type, class, or export declaration.
func addsNewConstruct(f types.FileChange) bool {
	for _, line := range f.AddedLines {
		if constructRe.MatchString(line) {
			return true
		}
	}
	return false
}
