// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/hashicorp/terraform-module-advisor/internal/advisor"
	"github.com/hashicorp/terraform-module-advisor/internal/rules"
)

const rationaleWrapWidth = 76

// Advise renders the combined advisory report.
type Advise struct {
	view *View
}

func NewAdvise(view *View) *Advise {
	return &Advise{view: view}
}

// Display renders the report and returns a process exit status: nonzero
// when a supplied tree failed compliance or a merged static-analysis run
// failed, since the advisory itself succeeded but the project didn't.
// The status is the same in both output modes.
func (v *Advise) Display(report *advisor.Report) int {
	if v.view.json {
		if code := v.displayJSON(report); code != 0 {
			return code
		}
	} else {
		v.displayHuman(report)
	}

	failed := report.Compliance != nil && !report.Compliance.Passed()
	if report.StaticAnalysis != nil && !report.StaticAnalysis.Passed {
		failed = true
	}
	if failed {
		return 1
	}
	return 0
}

func (v *Advise) displayHuman(report *advisor.Report) {
	v.displayRecommendation(report.Recommendation)

	if report.Compliance != nil {
		v.view.output("")
		displayCompliance(v.view, report.Compliance)
	}
	if len(report.Rendered) > 0 {
		v.view.output("")
		v.view.output("[bold]Rendered scaffold artifacts[reset]")
		for _, artifact := range report.Rendered {
			v.view.output(fmt.Sprintf("  [green]+[reset] %s", artifact.Path))
		}
	}
	if report.StaticAnalysis != nil {
		v.view.output("")
		displayAnalysis(v.view, report.StaticAnalysis)
	}
}

func (v *Advise) displayRecommendation(rec rules.Recommendation) {
	tools := make([]string, len(rec.Tools))
	for i, t := range rec.Tools {
		tools[i] = string(t)
	}
	v.view.output(fmt.Sprintf("[bold]Recommended testing approach:[reset] %s", strings.Join(tools, ", ")))
	v.view.output(fmt.Sprintf("Test mode: %s", rec.TestMode))
	v.view.output("")
	v.view.output(wordwrap.WrapString(rec.Rationale, rationaleWrapWidth))

	if len(rec.Indexing) > 0 {
		v.view.output("")
		v.view.output("[bold]Indexing strategy[reset]")
		names := make([]string, 0, len(rec.Indexing))
		for name := range rec.Indexing {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			v.view.output(fmt.Sprintf("  %s: %s", name, rec.Indexing[name]))
		}
	}

	for _, note := range rec.Notes {
		v.view.output("")
		v.view.output(v.wrapNote(note))
	}
}

func (v *Advise) wrapNote(note string) string {
	wrapped := wordwrap.WrapString(note, rationaleWrapWidth-2)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = v.view.colorize.Color("[yellow]![reset] ") + line
		} else {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

func (v *Advise) displayJSON(report *advisor.Report) int {
	doc := map[string]interface{}{
		"recommendation": report.Recommendation,
	}
	if report.Compliance != nil {
		doc["compliance"] = complianceJSON(report.Compliance)
	}
	if len(report.Rendered) > 0 {
		paths := make([]string, len(report.Rendered))
		for i, artifact := range report.Rendered {
			paths[i] = artifact.Path
		}
		doc["rendered"] = paths
	}
	if report.StaticAnalysis != nil {
		doc["static_analysis"] = report.StaticAnalysis
	}
	if warnings := report.Warnings.Warnings(); len(warnings) > 0 {
		msgs := make([]string, len(warnings))
		for i, w := range warnings {
			msgs[i] = w.Description().Summary + ": " + w.Description().Detail
		}
		doc["warnings"] = msgs
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		v.view.ui.Error(fmt.Sprintf("error marshalling report: %s", err))
		return 1
	}
	v.view.ui.Output(string(out))
	return 0
}

func displayAnalysis(view *View, result *advisor.StaticAnalysisResult) {
	if result.Passed {
		view.output("[bold]Static analysis:[reset] [green]passed[reset]")
	} else {
		view.output("[bold]Static analysis:[reset] [red]failed[reset]")
	}
	for _, step := range result.Steps {
		mark := "[green]ok[reset]"
		if !step.Passed {
			mark = "[red]fail[reset]"
		}
		line := fmt.Sprintf("  %s: %s", step.Name, mark)
		if step.Detail != "" {
			line += " (" + step.Detail + ")"
		}
		view.output(line)
	}
}
