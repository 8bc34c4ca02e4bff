// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/commitgen/pkg/types"
)

func TestSubject_SingleFile(t *testing.T) {
	tests := []struct {
		name       string
		file       types.FileChange
		commitType types.CommitType
		want       string
	}{
		{
			name:       "new file",
			file:       types.FileChange{NewPath: "src/login.ts", IsNew: true},
			commitType: types.TypeFeat,
			want:       "add login.ts",
		},
		{
			name:       "deleted file",
			file:       types.FileChange{NewPath: "old_helper.py", IsDeleted: true},
			commitType: types.TypeChore,
			want:       "remove old_helper.py",
		},
		{
			name:       "fix phrase",
			file:       types.FileChange{NewPath: "src/handler.go"},
			commitType: types.TypeFix,
			want:       "fix issue in handler.go",
		},
		{
			name:       "refactor phrase",
			file:       types.FileChange{NewPath: "src/engine.go"},
			commitType: types.TypeRefactor,
			want:       "refactor engine.go",
		},
		{
			name:       "style phrase",
			file:       types.FileChange{NewPath: "src/util.go"},
			commitType: types.TypeStyle,
			want:       "format util.go",
		},
		{
			name:       "test phrase",
			file:       types.FileChange{NewPath: "pkg/calc/calc_test.go"},
			commitType: types.TypeTest,
			want:       "update tests in calc_test.go",
		},
		{
			name:       "docs default phrase",
			file:       types.FileChange{NewPath: "README.md"},
			commitType: types.TypeDocs,
			want:       "update README.md",
		},
		{
			name:       "chore default phrase",
			file:       types.FileChange{NewPath: "Makefile"},
			commitType: types.TypeChore,
			want:       "update Makefile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subject([]types.FileChange{tt.file}, tt.commitType))
		})
	}
}

func TestSubject_MultiFile(t *testing.T) {
	files := []types.FileChange{
		{NewPath: "a.go", IsNew: true},
		{NewPath: "b.go", IsNew: true},
		{NewPath: "c.go", IsDeleted: true},
		{NewPath: "d.go"},
		{NewPath: "e.go"},
		{NewPath: "f.go"},
	}
	assert.Equal(t, "add 2 files, remove 1 file, update 3 files", Subject(files, types.TypeFeat))
}

func TestSubject_MultiFileClauseOrder(t *testing.T) {
	// Deletions only: no add/update clauses appear.
	files := []types.FileChange{
		{NewPath: "a.go", IsDeleted: true},
		{NewPath: "b.go", IsDeleted: true},
	}
	assert.Equal(t, "remove 2 files", Subject(files, types.TypeChore))
}

func TestSubject_DocsListsFilenames(t *testing.T) {
	files := []types.FileChange{
		{NewPath: "README.md"},
		{NewPath: "docs/install.md"},
	}
	assert.Equal(t, "update README.md and install.md", Subject(files, types.TypeDocs))

	three := append(files, types.FileChange{NewPath: "docs/usage.md"})
	assert.Equal(t, "update README.md, install.md and usage.md", Subject(three, types.TypeDocs))

	four := append(three, types.FileChange{NewPath: "docs/faq.md"})
	assert.Equal(t, "update 4 files", Subject(four, types.TypeDocs))
}

func TestSubject_EmptySet(t *testing.T) {
	assert.Equal(t, "empty change", Subject(nil, types.TypeChore))
}

func TestBody(t *testing.T) {
	files := []types.FileChange{
		{NewPath: "src/new.go", IsNew: true},
		{NewPath: "src/changed.go"},
		{NewPath: "src/gone.go", IsDeleted: true},
		{NewPath: "src/after.go", OldPath: "src/before.go"},
		{NewPath: "weird.bin", Status: types.FileStatus('X')},
	}

	body := Body(files)
	assert.Equal(t, "Files changed:\n"+
		"\n- src/new.go (added)"+
		"\n- src/changed.go (modified)"+
		"\n- src/gone.go (deleted)"+
		"\n- src/after.go (renamed)"+
		"\n- weird.bin (changed)", body)
}

func TestBody_Empty(t *testing.T) {
	assert.Empty(t, Body(nil))
}
