// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/commitgen/pkg/types"
)

func TestDetectType_Voting(t *testing.T) {
	tests := []struct {
		name  string
		files []types.FileChange
		want  types.CommitType
	}{
		{
			name:  "empty set falls back to chore",
			files: nil,
			want:  types.TypeChore,
		},
		{
			name: "new source file is feat",
			files: []types.FileChange{
				{NewPath: "src/login.ts", IsNew: true, AddedLines: []string{"export const login = {}"}},
			},
			want: types.TypeFeat,
		},
		{
			name: "deleted root file with no other signal is chore",
			files: []types.FileChange{
				{NewPath: "old_helper.py", IsDeleted: true, DeletedLines: []string{"def helper():", "    pass"}},
			},
			want: types.TypeChore,
		},
		{
			name: "readme only is docs",
			files: []types.FileChange{
				{NewPath: "README.md", AddedLines: []string{"## Usage"}},
			},
			want: types.TypeDocs,
		},
		{
			name: "fix keyword in added lines",
			files: []types.FileChange{
				{NewPath: "src/handler.go", AddedLines: []string{"// fix nil deref when body is empty", "if body == nil {"}},
			},
			want: types.TypeFix,
		},
		{
			name: "whitespace only change is style",
			files: []types.FileChange{
				{
					NewPath:      "src/util.go",
					AddedLines:   []string{"a=1", "b  =  2"},
					DeletedLines: []string{"a = 1", "b = 2"},
				},
			},
			want: types.TypeStyle,
		},
		{
			name: "balanced rewrite is refactor",
			files: []types.FileChange{
				{
					NewPath:      "src/engine.go",
					AddedLines:   []string{"one", "two", "three", "four"},
					DeletedLines: []string{"alpha", "beta", "gamma"},
				},
			},
			want: types.TypeRefactor,
		},
		{
			name: "new construct in existing file is feat",
			files: []types.FileChange{
				{NewPath: "src/api.go", AddedLines: []string{"func NewEndpoint() {}"}},
			},
			want: types.TypeFeat,
		},
		{
			name: "test path outranks new file",
			files: []types.FileChange{
				{NewPath: "pkg/calc/calc_test.go", IsNew: true, AddedLines: []string{"func TestAdd(t *testing.T) {}"}},
			},
			want: types.TypeTest,
		},
		{
			name: "majority wins across files",
			files: []types.FileChange{
				{NewPath: "a_test.go"},
				{NewPath: "b_test.go"},
				{NewPath: "README.md"},
			},
			want: types.TypeTest,
		},
		{
			name: "tie breaks by enumeration order",
			files: []types.FileChange{
				{NewPath: "docs/guide.md"},
				{NewPath: "pkg/x/x_test.go"},
			},
			want: types.TypeTest, // test precedes docs in the fixed order
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.files))
		})
	}
}

func TestDetectType_Deterministic(t *testing.T) {
	files := []types.FileChange{
		{NewPath: "src/a.go", AddedLines: []string{"func A() {}"}},
		{NewPath: "src/b_test.go"},
	}
	first := DetectType(files)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectType(files))
	}
}

func TestDetectTypeCoarse(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.StatusEntry
		diff    string
		want    types.CommitType
	}{
		{
			name:    "empty set is chore",
			entries: nil,
			want:    types.TypeChore,
		},
		{
			name: "all new files is feat",
			entries: []types.StatusEntry{
				{Path: "src/a.go", Status: types.StatusAdded},
				{Path: "src/b.go", Status: types.StatusAdded},
			},
			want: types.TypeFeat,
		},
		{
			name: "all test paths is test",
			entries: []types.StatusEntry{
				{Path: "pkg/a_test.go", Status: types.StatusModified},
				{Path: "tests/b.py", Status: types.StatusModified},
			},
			want: types.TypeTest,
		},
		{
			name: "all doc extensions is docs",
			entries: []types.StatusEntry{
				{Path: "README.md", Status: types.StatusModified},
				{Path: "docs/guide.rst", Status: types.StatusModified},
			},
			want: types.TypeDocs,
		},
		{
			name: "all config extensions is chore",
			entries: []types.StatusEntry{
				{Path: "app.yaml", Status: types.StatusModified},
				{Path: "settings.toml", Status: types.StatusModified},
			},
			want: types.TypeChore,
		},
		{
			name: "fix keyword in diff text",
			entries: []types.StatusEntry{
				{Path: "src/a.go", Status: types.StatusModified},
				{Path: "src/b.go", Status: types.StatusAdded},
			},
			diff: "+// fix the race in shutdown\n",
			want: types.TypeFix,
		},
		{
			name: "perf keyword in diff text",
			entries: []types.StatusEntry{
				{Path: "src/a.go", Status: types.StatusModified},
				{Path: "src/b.go", Status: types.StatusAdded},
			},
			diff: "+// memoize results to speed up lookups\n",
			want: types.TypePerf,
		},
		{
			name: "deletion heavy is refactor",
			entries: []types.StatusEntry{
				{Path: "src/a.go", Status: types.StatusModified},
				{Path: "src/b.go", Status: types.StatusDeleted},
			},
			diff: strings.Repeat("-gone\n", 9) + "+kept\n",
			want: types.TypeRefactor,
		},
		{
			name: "default is feat",
			entries: []types.StatusEntry{
				{Path: "src/a.go", Status: types.StatusModified},
				{Path: "src/b.go", Status: types.StatusAdded},
			},
			diff: "+plain addition\n",
			want: types.TypeFeat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTypeCoarse(tt.entries, tt.diff))
		})
	}
}

func TestCountDiffLines(t *testing.T) {
	diff := "--- a/x\n+++ b/x\n+one\n+two\n-gone\n context\n"
	added, removed := countDiffLines(diff)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}
