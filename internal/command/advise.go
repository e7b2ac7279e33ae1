// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/advisor"
	"github.com/hashicorp/terraform-module-advisor/internal/command/views"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold/treescan"
)

// AdviseCommand runs the full advisory pipeline: testing-strategy
// recommendation plus, when a directory is given, scaffold validation.
type AdviseCommand struct {
	Meta
}

func (c *AdviseCommand) Help() string {
	return adviseCommandHelp
}

func (c *AdviseCommand) Synopsis() string {
	return "Recommend a testing approach for a module"
}

func (c *AdviseCommand) Run(args []string) int {
	f := c.defaultFlagSet("advise")
	buildFacts := c.factsFlags(f)
	dir := f.String("dir", "", "module directory to validate alongside the recommendation")
	profileFlag := f.String("profile", "", "scaffold profile: public-module or private-module")
	analysisPath := f.String("analysis-result", "", "path to a JSON static-analysis result to merge into the report")
	jsonOut := f.Bool("json", false, "machine-readable output")
	noColor := f.Bool("no-color", false, "disable colored output")

	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	view := views.NewView(c.UI, !*noColor, *jsonOut)

	projectFacts, err := buildFacts()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	req := advisor.Request{
		Facts:  projectFacts,
		Checks: scaffold.AllChecks(),
	}

	if *dir != "" {
		profile, err := parseProfile(*profileFlag)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		tree, diags := treescan.Scan(c.FS, *dir)
		view.Diagnostics(diags)
		if diags.HasErrors() {
			return 1
		}
		req.Tree = tree
		req.Profile = profile
	}

	if *analysisPath != "" {
		result, err := readAnalysisResult(c.FS, *analysisPath)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		req.StaticAnalysis = result
	}

	c.Logger.Debug("running advisory", "dir", *dir)
	report, err := advisor.Advise(c.Engine, req)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	view.Diagnostics(report.Warnings)
	return views.NewAdvise(view).Display(report)
}

// readAnalysisResult loads an externally produced static-analysis result.
// The advisor never runs the analysis tools itself; CI runs them and
// hands the merged outcome in through this file.
func readAnalysisResult(fsys afero.Fs, path string) (*advisor.StaticAnalysisResult, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis result: %w", err)
	}
	var result advisor.StaticAnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid analysis result %s: %w", path, err)
	}
	return &result, nil
}

const adviseCommandHelp = `
Usage: terraform-module-advisor advise [options]

  Recommends a testing approach for an infrastructure module from declared
  project facts, and optionally validates the module's scaffold when a
  directory is given.

  The tool version and engine are required facts; everything else defaults
  with a warning.

Options:

  -tool-version=1.6.2      Pinned terraform/tofu version (required).
  -engine=terraform        terraform or opentofu (required).
  -complexity=simple       Logic complexity: simple, moderate, complex.
  -cost-sensitivity=low    Cost sensitivity: low, medium, high.
  -visibility=private      Module visibility: public, private.
  -skills=tag,tag          Team capability tags.
  -block-shapes=a=set,b=list
                           Attribute shapes for indexing advice.
  -compliance              Security/compliance obligations apply.
  -ci-branch=name          CI trigger branch, if running in CI.
  -ci-event=name           CI trigger event, if running in CI.
  -dir=path                Module directory to validate.
  -profile=private-module  Scaffold profile for validation.
  -analysis-result=path    JSON static-analysis result to merge.
  -json                    Machine-readable output.
  -no-color                Disable colored output.
`
