// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package facts

import (
	version "github.com/hashicorp/go-version"
)

// Engine identifies which of the two compatible tools the project under
// advisement is pinned to.
type Engine string

const (
	EngineTerraform Engine = "terraform"
	EngineOpenTofu  Engine = "opentofu"
)

// Command returns the CLI command name for the engine, for substitution
// into rendered command examples.
func (e Engine) Command() string {
	if e == EngineOpenTofu {
		return "tofu"
	}
	return "terraform"
}

// LogicComplexity is a coarse rating of how much conditional and
// transformational logic the module's configuration contains.
type LogicComplexity string

const (
	ComplexitySimple   LogicComplexity = "simple"
	ComplexityModerate LogicComplexity = "moderate"
	ComplexityComplex  LogicComplexity = "complex"
)

// CostSensitivity rates how strongly the project needs to avoid creating
// real (billable) infrastructure during testing.
type CostSensitivity string

const (
	CostSensitivityLow    CostSensitivity = "low"
	CostSensitivityMedium CostSensitivity = "medium"
	CostSensitivityHigh   CostSensitivity = "high"
)

// Visibility describes whether the module is published for general
// consumption or kept inside one organization.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// BlockShape classifies how a logical attribute of the module's main
// resources is structured, which drives indexing-strategy advice and the
// plan-versus-apply test mode decision.
type BlockShape string

const (
	ShapeSet    BlockShape = "set"
	ShapeList   BlockShape = "list"
	ShapeScalar BlockShape = "scalar"
)

// Capability tags describing the authoring team's prior experience. Free
// text is allowed; these are the tags the built-in rules refer to.
const (
	SkillNativeTests = "has-native-test-experience"
	SkillGo          = "has-go-experience"
)

// ProjectFacts is an immutable snapshot of everything the advisory engine
// knows about one project. Construct it once per advisory invocation from
// caller-supplied input; the engine never mutates it.
//
// ToolVersion and Engine are required. Everything else defaults during
// Normalize, with a warning diagnostic for each defaulted field.
type ProjectFacts struct {
	// ToolVersion is the semantic version of the terraform or tofu binary
	// the project is pinned to. Together with Engine it determines the
	// available feature set, so rules must never recommend a feature this
	// version doesn't support.
	ToolVersion *version.Version

	Engine Engine

	LogicComplexity LogicComplexity
	CostSensitivity CostSensitivity
	Visibility      Visibility

	// TeamSkillset is a set of capability tags such as SkillNativeTests.
	TeamSkillset []string

	// BlockShapes maps logical attribute names to their shape, used to
	// choose between plan and apply test modes and to advise an indexing
	// strategy per attribute.
	BlockShapes map[string]BlockShape

	// RequiresCompliance indicates a security or compliance obligation.
	// It is orthogonal to the testing-approach decision: when set, static
	// scanning is appended to whatever recommendation fires.
	RequiresCompliance bool

	// CIBranch and CIEvent describe the CI/CD trigger context, when the
	// advisory runs inside a pipeline. Both are optional.
	CIBranch string
	CIEvent  string
}

// Feature-gate thresholds. The native test framework shipped in 1.6 and
// mock providers in 1.7, for both engines.
var (
	nativeTestsMinVersion   = version.Must(version.NewVersion("1.6.0"))
	mockProvidersMinVersion = version.Must(version.NewVersion("1.7.0"))
)

// SupportsNativeTests returns true if the declared tool version includes
// the built-in declarative test framework.
func (f ProjectFacts) SupportsNativeTests() bool {
	return f.ToolVersion != nil && f.ToolVersion.GreaterThanOrEqual(nativeTestsMinVersion)
}

// SupportsMockProviders returns true if the declared tool version can mock
// providers in native tests.
func (f ProjectFacts) SupportsMockProviders() bool {
	return f.ToolVersion != nil && f.ToolVersion.GreaterThanOrEqual(mockProvidersMinVersion)
}

// HasSkill returns true if the given capability tag is in the team
// skillset.
func (f ProjectFacts) HasSkill(tag string) bool {
	for _, have := range f.TeamSkillset {
		if have == tag {
			return true
		}
	}
	return false
}
