// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package command implements the CLI subcommands over the advisory core.
package command

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	version "github.com/hashicorp/go-version"
	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/rules"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

// Meta holds the dependencies shared by all commands: the UI to write to,
// the loaded rule engine, and the filesystem the scaffold commands
// operate on (swapped for an in-memory one in tests).
type Meta struct {
	UI     cli.Ui
	Engine *rules.Engine
	FS     afero.Fs
	Logger hclog.Logger
}

// defaultFlagSet creates the flag set for a command, silencing the
// default output so errors render through the UI instead.
func (m *Meta) defaultFlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return f
}

// factsFlags registers the project-fact flags on a flag set and returns a
// builder that assembles the ProjectFacts after parsing.
func (m *Meta) factsFlags(f *flag.FlagSet) func() (facts.ProjectFacts, error) {
	toolVersion := f.String("tool-version", "", "semantic version of the pinned terraform/tofu binary")
	engine := f.String("engine", "", "terraform or opentofu")
	complexity := f.String("complexity", "", "logic complexity: simple, moderate or complex")
	cost := f.String("cost-sensitivity", "", "cost sensitivity: low, medium or high")
	visibility := f.String("visibility", "", "module visibility: public or private")
	skills := f.String("skills", "", "comma-separated team capability tags")
	shapes := f.String("block-shapes", "", "comma-separated attr=shape pairs, shape one of set, list, scalar")
	compliance := f.Bool("compliance", false, "project has security/compliance obligations")
	ciBranch := f.String("ci-branch", "", "branch name of the CI trigger context, if any")
	ciEvent := f.String("ci-event", "", "event type of the CI trigger context, if any")

	return func() (facts.ProjectFacts, error) {
		pf := facts.ProjectFacts{
			Engine:             facts.Engine(*engine),
			LogicComplexity:    facts.LogicComplexity(*complexity),
			CostSensitivity:    facts.CostSensitivity(*cost),
			Visibility:         facts.Visibility(*visibility),
			RequiresCompliance: *compliance,
			CIBranch:           *ciBranch,
			CIEvent:            *ciEvent,
		}
		if *toolVersion != "" {
			v, err := version.NewVersion(*toolVersion)
			if err != nil {
				return pf, fmt.Errorf("invalid -tool-version %q: %w", *toolVersion, err)
			}
			pf.ToolVersion = v
		}
		if *skills != "" {
			for _, tag := range strings.Split(*skills, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					pf.TeamSkillset = append(pf.TeamSkillset, tag)
				}
			}
		}
		if *shapes != "" {
			pf.BlockShapes = make(map[string]facts.BlockShape)
			for _, pair := range strings.Split(*shapes, ",") {
				name, shape, ok := strings.Cut(strings.TrimSpace(pair), "=")
				if !ok {
					return pf, fmt.Errorf("invalid -block-shapes entry %q: want attr=shape", pair)
				}
				switch facts.BlockShape(shape) {
				case facts.ShapeSet, facts.ShapeList, facts.ShapeScalar:
					pf.BlockShapes[name] = facts.BlockShape(shape)
				default:
					return pf, fmt.Errorf("invalid block shape %q for %q: want set, list or scalar", shape, name)
				}
			}
		}
		return pf, nil
	}
}

// parseProfile maps a -profile flag value to a scaffold profile.
func parseProfile(raw string) (scaffold.Profile, error) {
	switch raw {
	case "", "private", string(scaffold.ProfilePrivateModule):
		return scaffold.ProfilePrivateModule, nil
	case "public", string(scaffold.ProfilePublicModule):
		return scaffold.ProfilePublicModule, nil
	default:
		return "", fmt.Errorf("invalid -profile %q: want public-module or private-module", raw)
	}
}
