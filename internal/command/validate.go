// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"github.com/hashicorp/terraform-module-advisor/internal/command/views"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold/treescan"
)

// ValidateCommand checks a module directory against a scaffold profile
// without producing a testing recommendation.
type ValidateCommand struct {
	Meta
}

func (c *ValidateCommand) Help() string {
	return validateCommandHelp
}

func (c *ValidateCommand) Synopsis() string {
	return "Check a module directory against the scaffold spec"
}

func (c *ValidateCommand) Run(args []string) int {
	f := c.defaultFlagSet("validate")
	dir := f.String("dir", ".", "module directory to validate")
	profileFlag := f.String("profile", "", "scaffold profile: public-module or private-module")
	noSingleton := f.Bool("no-singleton-check", false, "skip the singleton \"this\" naming check")
	noIdentifier := f.Bool("no-identifier-check", false, "skip the generic-identifier naming check")
	jsonOut := f.Bool("json", false, "machine-readable output")
	noColor := f.Bool("no-color", false, "disable colored output")

	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	view := views.NewView(c.UI, !*noColor, *jsonOut)

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

	checks := scaffold.ValidateOptions{
		SingletonNames:  !*noSingleton,
		IdentifierNames: !*noIdentifier,
	}
	report := scaffold.Validate(tree, profile, checks)
	return views.NewValidate(view).Display(report)
}

const validateCommandHelp = `
Usage: terraform-module-advisor validate [options]

  Checks a module directory against the scaffold specification for the
  selected profile, reporting each required artifact as present, missing
  or malformed, followed by any naming-convention findings.

  Naming findings are advisory; only missing or malformed artifacts fail
  the check.

Options:

  -dir=.                   Module directory to validate.
  -profile=private-module  public-module or private-module.
  -no-singleton-check      Skip the singleton "this" naming check.
  -no-identifier-check     Skip the generic-identifier naming check.
  -json                    Machine-readable output.
  -no-color                Disable colored output.
`
