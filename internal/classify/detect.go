// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-type-detection R3 (per-file voting), R4 (whole-diff
// heuristic);
//
//	docs/ARCHITECTURE § Type Detection.
package classify

import (
	"path"
	"strings"

	"github.com/petar-djukic/commitgen/pkg/types"
)

// fileRules is the per-file classification chain, evaluated in order;
// the first matching rule wins and later rules are not evaluated. The
// order is load-bearing: path categories outrank content heuristics.
var fileRules = []struct {
	match func(types.FileChange) bool
	vote  types.CommitType
}{
	{func(f types.FileChange) bool { return isTestPath(f.NewPath) }, types.TypeTest},
	{func(f types.FileChange) bool { return isDocPath(f.NewPath) }, types.TypeDocs},
	{func(f types.FileChange) bool { return isChorePath(f.NewPath) }, types.TypeChore},
	{func(f types.FileChange) bool { return f.IsNew }, types.TypeFeat},
	{func(f types.FileChange) bool { return containsBugKeyword(strings.Join(f.AddedLines, "\n")) }, types.TypeFix},
	{isStyleOnly, types.TypeStyle},
	{isRefactorLike, types.TypeRefactor},
	{addsNewConstruct, types.TypeFeat},
}

// DetectType picks a commit type by per-file voting: each file casts
// exactly one vote for the first rule in the chain that matches it
// (falling back to chore), and the type with the most votes wins. Ties
// are broken by the fixed order of types.CommitTypes; an empty file set
// or all-zero tally yields chore.
//
// Implements: prd003-type-detection R3.1-R3.4.
func DetectType(files []types.FileChange) types.CommitType {
	if len(files) == 0 {
		return types.TypeChore
	}

	signals := map[types.CommitType]int{}
	for _, f := range files {
		signals[voteFor(f)]++
	}

	best := types.TypeChore
	bestCount := 0
	for _, t := range types.CommitTypes {
		if signals[t] > bestCount {
			best = t
			bestCount = signals[t]
		}
	}
	if bestCount == 0 {
		return types.TypeChore
	}
	return best
}

// voteFor returns the single vote a file casts.
func voteFor(f types.FileChange) types.CommitType {
	for _, r := range fileRules {
		if r.match(f) {
			return r.vote
		}
	}
	return types.TypeChore
}

// docExts are the documentation extensions recognized by the coarse
// detector's all-docs check.
var docExts = map[string]bool{
	".md": true, ".txt": true, ".rst": true, ".adoc": true,
}

// loosePathHasTest reports whether p contains a test marker as a bare
// substring. The coarse detector deliberately matches looser than
// isTestPath: with no line content to cross-check, a unanimous substring
// hit is the strongest signal available.
func loosePathHasTest(p string) bool {
	lower := strings.ToLower(p)
	for _, marker := range []string{"test", "spec", "__tests__", "tests"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// DetectTypeCoarse picks a commit type from path+status records and the
// aggregate diff text, for callers without per-file line content. The
// checks run in fixed order: unanimous path categories first (all new →
// feat, all test → test, all docs → docs, all config → chore), then
// keyword scans over the whole diff text (fix, perf), then a
// deletion-heavy check (refactor), defaulting to feat.
//
// Implements: prd003-type-detection R4.1-R4.8.
func DetectTypeCoarse(entries []types.StatusEntry, diffText string) types.CommitType {
	if len(entries) == 0 {
		return types.TypeChore
	}

	allNew, allTest, allDoc, allConfig := true, true, true, true
	for _, e := range entries {
		if e.Status != types.StatusAdded {
			allNew = false
		}
		if !loosePathHasTest(e.Path) {
			allTest = false
		}
		ext := strings.ToLower(path.Ext(e.Path))
		if !docExts[ext] {
			allDoc = false
		}
		if !configExts[ext] {
			allConfig = false
		}
	}

	switch {
	case allNew:
		return types.TypeFeat
	case allTest:
		return types.TypeTest
	case allDoc:
		return types.TypeDocs
	case allConfig:
		return types.TypeChore
	}

	if containsBugKeyword(diffText) {
		return types.TypeFix
	}
	if containsPerfKeyword(diffText) {
		return types.TypePerf
	}

	added, removed := countDiffLines(diffText)
	if removed > added+5 {
		return types.TypeRefactor
	}

	return types.TypeFeat
}

// countDiffLines counts "+" and "-" content lines in diff text,
// excluding the "+++"/"---" file markers.
func countDiffLines(diffText string) (added, removed int) {
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}
