// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/command"
	"github.com/hashicorp/terraform-module-advisor/internal/rules"
)

func initCommands(ui cli.Ui, engine *rules.Engine, fsys afero.Fs, logger hclog.Logger) map[string]cli.CommandFactory {
	meta := command.Meta{
		UI:     ui,
		Engine: engine,
		FS:     fsys,
		Logger: logger,
	}

	return map[string]cli.CommandFactory{
		"advise": func() (cli.Command, error) {
			return &command.AdviseCommand{Meta: meta}, nil
		},
		"validate": func() (cli.Command, error) {
			return &command.ValidateCommand{Meta: meta}, nil
		},
		"scaffold": func() (cli.Command, error) {
			return &command.ScaffoldCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{Meta: meta}, nil
		},
	}
}
