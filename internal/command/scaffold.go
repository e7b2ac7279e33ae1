// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"fmt"
	"path"

	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/command/views"
	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold/treescan"
)

// ScaffoldCommand renders the missing scaffold artifacts for a module
// directory and writes them to disk. The core produces content in memory;
// this command is the persistence collaborator.
type ScaffoldCommand struct {
	Meta
}

func (c *ScaffoldCommand) Help() string {
	return scaffoldCommandHelp
}

func (c *ScaffoldCommand) Synopsis() string {
	return "Generate missing scaffold files for a module"
}

func (c *ScaffoldCommand) Run(args []string) int {
	f := c.defaultFlagSet("scaffold")
	dir := f.String("dir", ".", "module directory to scaffold")
	engine := f.String("engine", "terraform", "terraform or opentofu")
	visibility := f.String("visibility", "private", "public or private")
	license := f.String("license", "none", "license kind: mit, apache2 or none")
	moduleName := f.String("module-name", "", "module name used in rendered headings")
	preCommit := f.Bool("pre-commit", false, "include the pre-commit config for private modules")
	dryRun := f.Bool("dry-run", false, "show what would be written without writing")
	noColor := f.Bool("no-color", false, "disable colored output")

	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	view := views.NewView(c.UI, !*noColor, false)

	tree, diags := treescan.Scan(c.FS, *dir)
	view.Diagnostics(diags)
	if diags.HasErrors() {
		return 1
	}

	opts := scaffold.GenerationOptions{
		Engine:           facts.Engine(*engine),
		Visibility:       facts.Visibility(*visibility),
		License:          scaffold.LicenseKind(*license),
		IncludePreCommit: *preCommit,
		ModuleName:       *moduleName,
	}
	if opts.ModuleName == "" {
		opts.ModuleName = path.Base(*dir)
	}
	if opts.Visibility != facts.VisibilityPublic && opts.License != scaffold.LicenseNone && opts.License != "" {
		c.UI.Warn(fmt.Sprintf("Warning: -license=%s has no effect for a private module; only public modules include a LICENSE file.", opts.License))
	}

	rendered, err := scaffold.Generate(opts, tree)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if len(rendered) == 0 {
		c.UI.Output("Scaffold already complete; nothing to generate.")
		return 0
	}

	for _, artifact := range rendered {
		target := path.Join(*dir, artifact.Path)
		if *dryRun {
			c.UI.Output(fmt.Sprintf("would write %s", target))
			continue
		}
		if err := afero.WriteFile(c.FS, target, artifact.Content, 0o644); err != nil {
			c.UI.Error(fmt.Sprintf("writing %s: %s", target, err))
			return 1
		}
		c.Logger.Debug("wrote scaffold artifact", "path", target)
		c.UI.Output(fmt.Sprintf("wrote %s", target))
	}
	return 0
}

const scaffoldCommandHelp = `
Usage: terraform-module-advisor scaffold [options]

  Renders the scaffold artifacts the module directory is missing, from the
  profile matching its visibility: standard configuration files, README
  with the expected sections, license text and pre-commit configuration.

  Files that already exist are never touched, so rerunning the command is
  always safe.

Options:

  -dir=.              Module directory to scaffold.
  -engine=terraform   Engine substituted into command examples.
  -visibility=private public modules must also pick a -license.
  -license=none       mit, apache2 or none.
  -module-name=name   Name used in rendered headings; defaults to the
                      directory name.
  -pre-commit         Include the pre-commit config for private modules.
  -dry-run            Show what would be written without writing.
  -no-color           Disable colored output.
`
