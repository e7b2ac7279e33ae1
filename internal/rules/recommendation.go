// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package rules

// Tool identifies one item of testing or scanning tooling that a
// recommendation can include.
type Tool string

const (
	// ToolNativeTests is the built-in declarative test framework.
	// Requires tool version 1.6 or later.
	ToolNativeTests Tool = "native-tests"

	// ToolMockProviders is native-test provider mocking. Requires tool
	// version 1.7 or later.
	ToolMockProviders Tool = "mock-providers"

	// ToolTerratest is the Go-based integration test harness.
	ToolTerratest Tool = "terratest"

	// ToolTrivy and ToolCheckov are static security scanners, appended by
	// the compliance overlay rather than picked by any rule.
	ToolTrivy   Tool = "trivy"
	ToolCheckov Tool = "checkov"

	// ToolStaticAnalysis stands for the plain fmt/validate/lint pipeline,
	// recommended on its own when no rule matches.
	ToolStaticAnalysis Tool = "static-analysis"
)

// TestMode says whether recommended tests should assert against a plan or
// against applied infrastructure.
type TestMode string

const (
	TestModePlan  TestMode = "plan"
	TestModeApply TestMode = "apply"
)

// IndexStrategy advises how test assertions should address instances of a
// multi-instance attribute.
type IndexStrategy string

const (
	// IndexByKey addresses instances by for_each key. Set-shaped
	// attributes need this: their ordering is not stable across plans.
	IndexByKey IndexStrategy = "for_each-key"

	// IndexByPosition addresses instances by count index, safe for
	// list-shaped attributes with stable ordering.
	IndexByPosition IndexStrategy = "count-index"
)

// Recommendation is the outcome of rule evaluation: the tooling to adopt,
// why, and the supporting advice derived from the fact snapshot.
//
// Identical fact snapshots always produce identical Recommendations.
type Recommendation struct {
	// RuleName is the name of the rule that fired, or "" for the
	// no-match default.
	RuleName string `json:"rule,omitempty"`

	Tools     []Tool `json:"tools"`
	Rationale string `json:"rationale"`

	// TestMode is plan when the facts argue against creating real
	// infrastructure (high cost sensitivity, or mocking recommended),
	// apply otherwise.
	TestMode TestMode `json:"test_mode"`

	// Indexing maps each multi-instance attribute from the fact
	// snapshot's block shapes to the strategy its assertions should use.
	// Scalar attributes are omitted.
	Indexing map[string]IndexStrategy `json:"indexing,omitempty"`

	// Notes carries supplementary advice appended by the orthogonal
	// overlays (compliance scanning, CI branch restrictions, shape
	// warnings), in a fixed order.
	Notes []string `json:"notes,omitempty"`
}

// Includes returns true if the recommendation's tool set contains the
// given tool.
func (r Recommendation) Includes(tool Tool) bool {
	for _, t := range r.Tools {
		if t == tool {
			return true
		}
	}
	return false
}
