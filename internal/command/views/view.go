// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package views renders advisory results for humans and machines. Command
// logic decides what to report; views decide how it looks.
package views

import (
	"fmt"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/colorstring"

	"github.com/hashicorp/terraform-module-advisor/internal/moddiags"
)

// View carries the output streams and rendering settings shared by the
// per-command views.
type View struct {
	ui       cli.Ui
	colorize *colorstring.Colorize
	json     bool
}

// NewView constructs a View writing through the given UI. Color is
// stripped when disabled rather than left as raw codes.
func NewView(ui cli.Ui, color, json bool) *View {
	return &View{
		ui: ui,
		colorize: &colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
		json: json,
	}
}

// Diagnostics renders accumulated warnings and errors. In JSON mode
// diagnostics go to the error stream so they don't corrupt the document
// on stdout.
func (v *View) Diagnostics(diags moddiags.Diagnostics) {
	for _, diag := range diags {
		desc := diag.Description()
		var line string
		switch diag.Severity() {
		case moddiags.Error:
			line = v.colorize.Color(fmt.Sprintf("[red]Error:[reset] %s", desc.Summary))
		default:
			line = v.colorize.Color(fmt.Sprintf("[yellow]Warning:[reset] %s", desc.Summary))
		}
		if desc.Detail != "" {
			line += "\n  " + desc.Detail
		}
		v.ui.Error(line)
	}
}

func (v *View) output(s string) {
	v.ui.Output(v.colorize.Color(s))
}
