// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analyzer-interface R5.3, R5.4 (CommitType, Classification);
//
//	prd003-type-detection R1 (type vocabulary and tie-break order).
package types

import "fmt"

// CommitType is a conventional-commit type. Exactly one is chosen per
// classification; types are never combined.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeTest     CommitType = "test"
	TypeDocs     CommitType = "docs"
	TypeChore    CommitType = "chore"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
)

// CommitTypes is the fixed enumeration order. Vote ties in the type
// detector are broken by the first type in this order.
var CommitTypes = []CommitType{
	TypeFeat, TypeFix, TypeTest, TypeDocs,
	TypeChore, TypeStyle, TypeRefactor, TypePerf,
}

// ValidType reports whether s is one of the known commit types.
func ValidType(s string) bool {
	for _, t := range CommitTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Classification is the result of analyzing a change set: the chosen
// commit type, an optional scope token, the subject line, and an
// optional body. Immutable once produced.
type Classification struct {
	Type    CommitType `json:"type"`
	Scope   string     `json:"scope"`
	Subject string     `json:"subject"`
	Body    string     `json:"body,omitempty"`
}

// Header renders the conventional-commit first line: "type(scope): subject",
// omitting the parenthesized scope when it is empty.
func (c Classification) Header() string {
	if c.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", c.Type, c.Scope, c.Subject)
	}
	return fmt.Sprintf("%s: %s", c.Type, c.Subject)
}

// Message renders the full commit message: the header, plus the body
// separated by a blank line when present.
func (c Classification) Message() string {
	msg := c.Header()
	if c.Body != "" {
		msg += "\n\n" + c.Body
	}
	return msg
}
