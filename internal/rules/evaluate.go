// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package rules

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/moddiags"
)

// Evaluate normalizes the given facts and runs them through the rule
// table, returning the recommendation of the first rule whose condition
// holds. No match is not an error: the result is then a static-analysis-
// only recommendation with the reserved rule name "".
//
// The returned diagnostics carry the normalization warnings for any
// defaulted facts; an error-severity diagnostic means the recommendation
// is unusable (for example a matched rule recommending a feature the
// declared version doesn't support).
func (e *Engine) Evaluate(f facts.ProjectFacts) (Recommendation, moddiags.Diagnostics) {
	f, diags := f.Normalize()
	if diags.HasErrors() {
		return Recommendation{}, diags
	}

	ctx := evalContext(f)

	matched := false
	var winner rule
	for _, r := range e.rules {
		ok, condDiags := evalCondition(r, ctx)
		diags = diags.Append(condDiags)
		if condDiags.HasErrors() {
			return Recommendation{}, diags
		}
		if ok {
			matched = true
			winner = r
			break
		}
	}

	var rec Recommendation
	if matched {
		rec = Recommendation{
			RuleName:  winner.name,
			Tools:     append([]Tool(nil), winner.tools...),
			Rationale: winner.rationale,
		}
	} else {
		rec = Recommendation{
			Tools:     []Tool{ToolStaticAnalysis},
			Rationale: "Insufficient information to recommend a testing approach; run static analysis (format, validate, lint) only until more facts are known.",
		}
	}

	// A matched rule must never hand out a feature the declared version
	// can't use. This is a defect in the rule's condition, not a
	// downgrade opportunity.
	for _, tool := range rec.Tools {
		gate := knownTools[tool]
		if gate != nil && !gate(f) {
			diags = diags.Append(&UnsupportedFeatureError{
				Tool:        tool,
				ToolVersion: f.ToolVersion.String(),
				MinVersion:  toolMinVersions[tool],
			})
			return Recommendation{}, diags
		}
	}

	rec = applyOverlays(rec, f)
	return rec, diags
}

func evalCondition(r rule, ctx *hcl.EvalContext) (bool, moddiags.Diagnostics) {
	var diags moddiags.Diagnostics

	val, hclDiags := r.condition.Value(ctx)
	if hclDiags.HasErrors() {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Invalid rule condition",
			fmt.Sprintf("The condition of rule %q could not be evaluated: %s.", r.name, hclDiags.Error()),
		))
		return false, diags
	}
	val, err := convert.Convert(val, cty.Bool)
	if err != nil || val.IsNull() {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Invalid rule condition",
			fmt.Sprintf("The condition of rule %q must produce a boolean.", r.name),
		))
		return false, diags
	}
	return val.True(), nil
}

// evalContext exposes the fact snapshot to rule conditions as cty values.
func evalContext(f facts.ProjectFacts) *hcl.EvalContext {
	skills := make([]cty.Value, 0, len(f.TeamSkillset))
	for _, tag := range f.TeamSkillset {
		skills = append(skills, cty.StringVal(tag))
	}
	skillsVal := cty.ListValEmpty(cty.String)
	if len(skills) > 0 {
		skillsVal = cty.ListVal(skills)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"engine":                  cty.StringVal(string(f.Engine)),
			"version":                 cty.StringVal(f.ToolVersion.String()),
			"supports_native_tests":   cty.BoolVal(f.SupportsNativeTests()),
			"supports_mock_providers": cty.BoolVal(f.SupportsMockProviders()),
			"logic_complexity":        cty.StringVal(string(f.LogicComplexity)),
			"cost_sensitivity":        cty.StringVal(string(f.CostSensitivity)),
			"visibility":              cty.StringVal(string(f.Visibility)),
			"team_skills":             skillsVal,
			"requires_compliance":     cty.BoolVal(f.RequiresCompliance),
			"ci_branch":               cty.StringVal(f.CIBranch),
			"ci_event":                cty.StringVal(f.CIEvent),
		},
		Functions: map[string]function.Function{
			"contains": stdlib.ContainsFunc,
			"length":   stdlib.LengthFunc,
		},
	}
}

// applyOverlays appends the advice that is orthogonal to which rule fired:
// test mode and indexing strategy from the block shapes, the compliance
// scanning requirement, and the CI branch restriction for integration
// suites. Overlay order is fixed so identical facts render identically.
func applyOverlays(rec Recommendation, f facts.ProjectFacts) Recommendation {
	// Plan-mode tests whenever the facts argue against creating real
	// infrastructure; apply otherwise.
	if f.CostSensitivity == facts.CostSensitivityHigh || rec.Includes(ToolMockProviders) {
		rec.TestMode = TestModePlan
	} else {
		rec.TestMode = TestModeApply
	}

	if len(f.BlockShapes) > 0 {
		names := make([]string, 0, len(f.BlockShapes))
		for name := range f.BlockShapes {
			names = append(names, name)
		}
		sort.Strings(names)

		rec.Indexing = make(map[string]IndexStrategy)
		hasSet := false
		for _, name := range names {
			switch f.BlockShapes[name] {
			case facts.ShapeSet:
				rec.Indexing[name] = IndexByKey
				hasSet = true
			case facts.ShapeList:
				rec.Indexing[name] = IndexByPosition
			}
		}
		if hasSet {
			rec.Notes = append(rec.Notes, "Set-shaped attributes have no stable ordering between plans; address their instances by for_each key in assertions rather than by position.")
		}
	}

	if f.RequiresCompliance {
		rec.Tools = append(rec.Tools, ToolTrivy, ToolCheckov)
		rec.Notes = append(rec.Notes, "Security/compliance obligations apply: run trivy and checkov as part of every pipeline regardless of test outcome.")
	}

	if rec.Includes(ToolTerratest) && f.CIBranch != "" {
		note := "Run Terratest integration suites only on the main branch; other branches should stop after unit tests and static analysis."
		if f.CIBranch != "main" {
			note += fmt.Sprintf(" This advisory was produced for branch %q, so skip integration runs here.", f.CIBranch)
		}
		rec.Notes = append(rec.Notes, note)
	}

	return rec
}
