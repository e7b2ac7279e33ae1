// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package advisor

// StaticAnalysisRunner is the external collaborator that runs the
// format/validate/lint/security pipeline. The advisory core only consumes
// its result; implementations live at the edges (CI wrappers, CLI).
type StaticAnalysisRunner interface {
	Run(dir string) (*StaticAnalysisResult, error)
}

// StaticAnalysisResult is the merged pass/fail outcome of an external
// static-analysis run.
type StaticAnalysisResult struct {
	Passed bool         `json:"passed"`
	Steps  []StepResult `json:"steps,omitempty"`
}

// StepResult is the outcome of one analysis step, such as "fmt" or
// "trivy".
type StepResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}
