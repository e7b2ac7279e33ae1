// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package advisor

import (
	"errors"
	"testing"

	version "github.com/hashicorp/go-version"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/rules"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

func testEngine(t *testing.T) *rules.Engine {
	t.Helper()
	engine, err := rules.LoadBuiltin()
	if err != nil {
		t.Fatalf("loading built-in rules: %s", err)
	}
	return engine
}

func testFacts(t *testing.T) facts.ProjectFacts {
	t.Helper()
	return facts.ProjectFacts{
		ToolVersion: version.Must(version.NewVersion("1.7.0")),
		Engine:      facts.EngineTerraform,
	}
}

func TestAdviseRecommendationOnly(t *testing.T) {
	report, err := Advise(testEngine(t), Request{Facts: testFacts(t)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(report.Recommendation.Tools) == 0 {
		t.Error("empty recommendation")
	}
	if report.Compliance != nil {
		t.Error("compliance section present without a tree")
	}
	if report.Rendered != nil {
		t.Error("rendered section present without generation options")
	}
	if len(report.Warnings) == 0 {
		t.Error("expected defaulted-fact warnings on the report")
	}
}

func TestAdviseWithTree(t *testing.T) {
	req := Request{
		Facts:   testFacts(t),
		Tree:    scaffold.FileTreeDescription{"main.tf": {}},
		Profile: scaffold.ProfilePrivateModule,
		Checks:  scaffold.AllChecks(),
	}
	report, err := Advise(testEngine(t), req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if report.Compliance == nil {
		t.Fatal("no compliance section despite a supplied tree")
	}
	if report.Compliance.Passed() {
		t.Error("a bare main.tf should not pass the private profile")
	}
}

func TestAdviseWithGeneration(t *testing.T) {
	req := Request{
		Facts: testFacts(t),
		Tree:  scaffold.FileTreeDescription{"main.tf": {}},
		Generate: &scaffold.GenerationOptions{
			Engine:     facts.EngineTerraform,
			Visibility: facts.VisibilityPrivate,
			License:    scaffold.LicenseNone,
		},
	}
	report, err := Advise(testEngine(t), req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(report.Rendered) == 0 {
		t.Fatal("nothing rendered for an incomplete tree")
	}
	for _, artifact := range report.Rendered {
		if artifact.Path == "main.tf" {
			t.Error("generation touched an existing artifact")
		}
	}
}

func TestAdviseErrorPropagation(t *testing.T) {
	t.Run("invalid generation options", func(t *testing.T) {
		req := Request{
			Facts: testFacts(t),
			Generate: &scaffold.GenerationOptions{
				Engine:     facts.EngineTerraform,
				Visibility: facts.VisibilityPublic,
				License:    scaffold.LicenseNone,
			},
		}
		_, err := Advise(testEngine(t), req)
		if err == nil {
			t.Fatal("expected InvalidConfiguration to propagate")
		}
		var invalid *scaffold.InvalidConfigurationError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidConfigurationError, got %T: %s", err, err)
		}
	})

	t.Run("unusable facts", func(t *testing.T) {
		_, err := Advise(testEngine(t), Request{Facts: facts.ProjectFacts{}})
		if err == nil {
			t.Fatal("expected error for facts without version and engine")
		}
	})
}

func TestAdviseMergesStaticAnalysis(t *testing.T) {
	result := &StaticAnalysisResult{
		Passed: false,
		Steps: []StepResult{
			{Name: "fmt", Passed: true},
			{Name: "tflint", Passed: false, Detail: "deprecated syntax"},
		},
	}
	report, err := Advise(testEngine(t), Request{
		Facts:          testFacts(t),
		StaticAnalysis: result,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if report.StaticAnalysis != result {
		t.Error("static-analysis result not carried into the report")
	}
}
