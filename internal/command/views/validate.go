// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	"encoding/json"
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

// Validate renders a standalone compliance report.
type Validate struct {
	view *View
}

func NewValidate(view *View) *Validate {
	return &Validate{view: view}
}

func (v *Validate) Display(report *scaffold.ComplianceReport) int {
	if v.view.json {
		out, err := json.MarshalIndent(complianceJSON(report), "", "  ")
		if err != nil {
			v.view.ui.Error(fmt.Sprintf("error marshalling report: %s", err))
			return 1
		}
		v.view.ui.Output(string(out))
	} else {
		displayCompliance(v.view, report)
	}

	if !report.Passed() {
		return 1
	}
	return 0
}

func displayCompliance(view *View, report *scaffold.ComplianceReport) {
	view.output(fmt.Sprintf("[bold]Scaffold compliance (%s)[reset]", report.Profile))
	tree := treeprint.New()
	for _, entry := range report.Entries {
		var label string
		switch entry.Status {
		case scaffold.StatusPresent:
			label = view.colorize.Color(fmt.Sprintf("%s [green]present[reset]", entry.Artifact))
		case scaffold.StatusMissing:
			label = view.colorize.Color(fmt.Sprintf("%s [red]missing[reset]", entry.Artifact))
		case scaffold.StatusMalformed:
			label = view.colorize.Color(fmt.Sprintf("%s [red]malformed[reset]: %s", entry.Artifact, entry.Detail))
		}
		tree.AddNode(label)
	}
	view.ui.Output(tree.String())

	for _, finding := range report.Findings {
		view.output(fmt.Sprintf("[yellow]%s[reset] %s: %s", finding.Kind, finding.Subject, finding.Detail))
	}

	if report.Passed() {
		view.output("[bold][green]Scaffold compliant.[reset]")
	} else {
		view.output("[bold][red]Scaffold has gaps.[reset]")
	}
}

// complianceJSON flattens a report into plain serializable shapes, so the
// JSON format doesn't depend on internal struct layout.
func complianceJSON(report *scaffold.ComplianceReport) map[string]interface{} {
	entries := make([]map[string]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		m := map[string]string{
			"artifact": entry.Artifact.String(),
			"kind":     string(entry.Artifact.Kind),
			"status":   string(entry.Status),
		}
		if entry.Detail != "" {
			m["detail"] = entry.Detail
		}
		entries = append(entries, m)
	}

	findings := make([]map[string]string, 0, len(report.Findings))
	for _, finding := range report.Findings {
		findings = append(findings, map[string]string{
			"kind":    string(finding.Kind),
			"subject": finding.Subject,
			"detail":  finding.Detail,
		})
	}

	return map[string]interface{}{
		"profile":  string(report.Profile),
		"passed":   report.Passed(),
		"entries":  entries,
		"findings": findings,
	}
}
