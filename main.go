// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/rules"
	"github.com/hashicorp/terraform-module-advisor/version"
)

// EnvLog is the environment variable that sets the log level.
const EnvLog = "TF_MODULE_ADVISOR_LOG"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "module-advisor",
		Level:  logLevel(),
		Output: os.Stderr,
	})

	// The rule table is static configuration: a conflict in it means the
	// binary itself is defective, so refuse to start at all.
	engine, err := rules.LoadBuiltin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load built-in rules: %s\n", err)
		return 1
	}

	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("terraform-module-advisor", version.String())
	c.Args = os.Args[1:]
	c.Commands = initCommands(ui, engine, afero.NewOsFs(), logger)

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return exitStatus
}

func logLevel() hclog.Level {
	raw := os.Getenv(EnvLog)
	if raw == "" {
		return hclog.Warn
	}
	if level := hclog.LevelFromString(raw); level != hclog.NoLevel {
		return level
	}
	return hclog.Warn
}
