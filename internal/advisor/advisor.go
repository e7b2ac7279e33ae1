// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package advisor composes the rule engine, scaffold validator and
// scaffold generator into a single advisory call. It adds no decision
// logic of its own: it sequences the sub-calls, propagates the first
// failure, and assembles the combined report.
package advisor

import (
	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/moddiags"
	"github.com/hashicorp/terraform-module-advisor/internal/rules"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

// Request carries everything one advisory invocation needs. Facts is
// required; the rest is optional and enables the corresponding section of
// the report.
type Request struct {
	Facts facts.ProjectFacts

	// Tree, when non-nil, enables scaffold validation against Profile.
	Tree    scaffold.FileTreeDescription
	Profile scaffold.Profile

	// Checks selects the naming-convention checks for validation.
	Checks scaffold.ValidateOptions

	// Generate, when non-nil, enables scaffold generation against the
	// same tree snapshot (or an empty tree if none was supplied).
	Generate *scaffold.GenerationOptions

	// StaticAnalysis, when non-nil, is merged into the report verbatim.
	// The advisor consumes external analysis results; it never runs the
	// tools itself.
	StaticAnalysis *StaticAnalysisResult
}

// Report is the combined outcome of one advisory invocation.
type Report struct {
	Recommendation rules.Recommendation
	Compliance     *scaffold.ComplianceReport
	Rendered       []scaffold.RenderedArtifact
	StaticAnalysis *StaticAnalysisResult

	// Warnings carries the non-fatal diagnostics accumulated along the
	// way, such as defaulted facts.
	Warnings moddiags.Diagnostics
}

// Advise runs the advisory pipeline: rule evaluation, then validation if
// a tree was supplied, then generation if options were supplied. The
// first failing sub-call aborts the whole invocation with its error;
// warnings accumulate onto the successful result instead.
func Advise(engine *rules.Engine, req Request) (*Report, error) {
	var warnings moddiags.Diagnostics

	recommendation, diags := engine.Evaluate(req.Facts)
	if diags.HasErrors() {
		return nil, diags.Err()
	}
	warnings = warnings.Append(diags.Warnings())

	report := &Report{
		Recommendation: recommendation,
		StaticAnalysis: req.StaticAnalysis,
	}

	if req.Tree != nil {
		report.Compliance = scaffold.Validate(req.Tree, req.Profile, req.Checks)
	}

	if req.Generate != nil {
		existing := req.Tree
		if existing == nil {
			existing = scaffold.FileTreeDescription{}
		}
		rendered, err := scaffold.Generate(*req.Generate, existing)
		if err != nil {
			return nil, err
		}
		report.Rendered = rendered
	}

	report.Warnings = warnings
	return report, nil
}
