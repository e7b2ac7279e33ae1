// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"fmt"

	"github.com/hashicorp/terraform-module-advisor/version"
)

// VersionCommand prints the advisor's own version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Help() string {
	return "Usage: terraform-module-advisor version\n\n  Prints the advisor version."
}

func (c *VersionCommand) Synopsis() string {
	return "Print the advisor version"
}

func (c *VersionCommand) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("terraform-module-advisor v%s", version.String()))
	return 0
}
