// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commitmsg defines the public interface for commitgen, a
// heuristic conventional-commit message generator. It classifies a change
// set into a commit type, scope, subject, and optional body, using either
// raw unified-diff text or a coarse path+status listing as input.
// Implements: prd001-analyzer-interface R1, R2, R3;
//
//	docs/ARCHITECTURE § Analyzer Interface.
package commitmsg

import (
	"errors"
	"fmt"

	"github.com/petar-djukic/commitgen/internal/classify"
	"github.com/petar-djukic/commitgen/internal/diffparse"
	"github.com/petar-djukic/commitgen/pkg/types"
)

// Error types for the analyzer API.
//
// Implements: prd001-analyzer-interface R3.4, R3.5.
var (
	ErrNoChanges   = errors.New("no file changes found")
	ErrInvalidType = errors.New("invalid commit type override")
)

// Options adjusts how a classification is produced. The zero value asks
// for full auto-detection without a body.
type Options struct {
	TypeOverride  string // Force this commit type instead of detecting one
	ScopeOverride string // Force this scope; "-" forces no scope
	IncludeBody   bool   // Produce the per-file body listing
}

// Result is the externally visible classification plus the rendered
// message. JSON field names match the tool's machine-readable output.
type Result struct {
	Type    string `json:"type"`
	Scope   string `json:"scope"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
	Message string `json:"message"`
}

// FromDiff classifies raw unified-diff text with the fine-grained
// per-file voting detector. Returns ErrNoChanges when the text contains
// no file headers.
//
// Implements: prd001-analyzer-interface R2.1.
func FromDiff(raw string, opts Options) (*Result, error) {
	files := diffparse.Parse(raw)
	if len(files) == 0 {
		return nil, ErrNoChanges
	}

	return build(files, classify.DetectType(files), opts)
}

// FromStatus classifies a coarse path+status listing plus aggregate diff
// text with the whole-diff detector. Returns ErrNoChanges when the
// listing is empty.
//
// Implements: prd001-analyzer-interface R2.2.
func FromStatus(entries []types.StatusEntry, diffText string, opts Options) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrNoChanges
	}

	files := types.ChangesFromStatus(entries)
	return build(files, classify.DetectTypeCoarse(entries, diffText), opts)
}

// FromChanges classifies already-parsed change records with the
// fine-grained detector. This is the entry point for callers that build
// FileChange records themselves (e.g. from repository blobs).
//
// Implements: prd001-analyzer-interface R2.3.
func FromChanges(files []types.FileChange, opts Options) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrNoChanges
	}

	return build(files, classify.DetectType(files), opts)
}

// build assembles the classification, applies overrides, and renders the
// final message.
func build(files []types.FileChange, detected types.CommitType, opts Options) (*Result, error) {
	commitType := detected
	if opts.TypeOverride != "" {
		if !types.ValidType(opts.TypeOverride) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, opts.TypeOverride)
		}
		commitType = types.CommitType(opts.TypeOverride)
	}

	scope := classify.DetectScope(files)
	switch opts.ScopeOverride {
	case "":
	case "-":
		scope = ""
	default:
		scope = opts.ScopeOverride
	}

	c := types.Classification{
		Type:    commitType,
		Scope:   scope,
		Subject: classify.Subject(files, commitType),
	}
	if opts.IncludeBody {
		c.Body = classify.Body(files)
	}

	return &Result{
		Type:    string(c.Type),
		Scope:   c.Scope,
		Subject: c.Subject,
		Body:    c.Body,
		Message: c.Message(),
	}, nil
}
