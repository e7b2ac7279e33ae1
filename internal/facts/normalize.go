// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package facts

import (
	"fmt"
	"sort"

	"github.com/hashicorp/terraform-module-advisor/internal/moddiags"
)

// Normalize validates the required fields and fills defaults for every
// optional field that the caller left unset, returning the completed
// snapshot.
//
// Missing optional fields are not errors: each one produces a warning
// diagnostic so the final report can disclose which parts of the
// recommendation rest on defaults rather than on declared facts. Only an
// absent ToolVersion or Engine makes the snapshot unusable.
func (f ProjectFacts) Normalize() (ProjectFacts, moddiags.Diagnostics) {
	var diags moddiags.Diagnostics

	if f.ToolVersion == nil {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Missing tool version",
			"The project facts must declare which terraform or tofu version the project is pinned to, because the available testing features depend on it.",
		))
	}
	switch f.Engine {
	case EngineTerraform, EngineOpenTofu:
		// ok
	case "":
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Missing engine",
			"The project facts must declare whether the project uses Terraform or OpenTofu.",
		))
	default:
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Invalid engine",
			fmt.Sprintf("The engine must be either %q or %q, not %q.", EngineTerraform, EngineOpenTofu, f.Engine),
		))
	}
	if diags.HasErrors() {
		return f, diags
	}

	defaulted := func(field, value string) {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Warning,
			"Incomplete project facts",
			fmt.Sprintf("No %s was declared, so the recommendation assumes %q.", field, value),
		))
	}

	if f.LogicComplexity == "" {
		f.LogicComplexity = ComplexitySimple
		defaulted("logic complexity", string(ComplexitySimple))
	}
	if f.CostSensitivity == "" {
		f.CostSensitivity = CostSensitivityMedium
		defaulted("cost sensitivity", string(CostSensitivityMedium))
	}
	if f.Visibility == "" {
		f.Visibility = VisibilityPrivate
		defaulted("visibility", string(VisibilityPrivate))
	}

	// Sort the skillset so that identical fact sets compare and render
	// identically regardless of how the caller ordered the tags.
	if len(f.TeamSkillset) > 0 {
		tags := make([]string, len(f.TeamSkillset))
		copy(tags, f.TeamSkillset)
		sort.Strings(tags)
		f.TeamSkillset = tags
	}

	return f, diags
}
