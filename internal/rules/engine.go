// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package rules implements the testing-strategy rule engine: an ordered
// table of condition/recommendation pairs evaluated against a project
// fact snapshot with first-match-wins semantics.
//
// The table is static configuration, loaded once at startup and immutable
// afterwards, so a single Engine may be shared freely between concurrent
// callers.
package rules

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
)

//go:embed rules.hcl
var builtinRulesSrc []byte

// knownTools is the vocabulary a rule's tools list may draw from, with
// the minimum tool version each entry requires. Entries without a gate
// map to nil.
var knownTools = map[Tool]func(facts.ProjectFacts) bool{
	ToolNativeTests:    facts.ProjectFacts.SupportsNativeTests,
	ToolMockProviders:  facts.ProjectFacts.SupportsMockProviders,
	ToolTerratest:      nil,
	ToolTrivy:          nil,
	ToolCheckov:        nil,
	ToolStaticAnalysis: nil,
}

// toolMinVersions is used only for error messages; the gate functions
// above are authoritative.
var toolMinVersions = map[Tool]string{
	ToolNativeTests:   "1.6.0",
	ToolMockProviders: "1.7.0",
}

// Engine holds a loaded, conflict-checked rule table.
type Engine struct {
	rules []rule
}

type rule struct {
	name      string
	priority  int
	condition hcl.Expression
	tools     []Tool
	rationale string
}

type ruleConfig struct {
	Name      string         `hcl:"name,label"`
	Priority  int            `hcl:"priority"`
	Condition hcl.Expression `hcl:"condition"`
	Tools     []string       `hcl:"tools"`
	Rationale string         `hcl:"rationale"`
}

type tableConfig struct {
	Rules []ruleConfig `hcl:"rule,block"`
}

// Load parses and checks a rule table from HCL source. It returns a
// *RuleConflictError if two rules share a priority, and a plain error for
// syntax problems or unknown tool names. A table that fails to load must
// not be used.
func Load(src []byte, filename string) (*Engine, error) {
	file, hclDiags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if hclDiags.HasErrors() {
		return nil, fmt.Errorf("invalid rule table %s: %s", filename, hclDiags.Error())
	}

	var config tableConfig
	hclDiags = gohcl.DecodeBody(file.Body, nil, &config)
	if hclDiags.HasErrors() {
		return nil, fmt.Errorf("invalid rule table %s: %s", filename, hclDiags.Error())
	}

	byPriority := make(map[int]string, len(config.Rules))
	engine := &Engine{
		rules: make([]rule, 0, len(config.Rules)),
	}
	for _, rc := range config.Rules {
		if prev, exists := byPriority[rc.Priority]; exists {
			return nil, &RuleConflictError{
				Priority: rc.Priority,
				Rules:    []string{prev, rc.Name},
			}
		}
		byPriority[rc.Priority] = rc.Name

		tools := make([]Tool, 0, len(rc.Tools))
		for _, raw := range rc.Tools {
			tool := Tool(raw)
			if _, known := knownTools[tool]; !known {
				return nil, fmt.Errorf("invalid rule table %s: rule %q names unknown tool %q", filename, rc.Name, raw)
			}
			tools = append(tools, tool)
		}

		engine.rules = append(engine.rules, rule{
			name:      rc.Name,
			priority:  rc.Priority,
			condition: rc.Condition,
			tools:     tools,
			rationale: rc.Rationale,
		})
	}

	sort.SliceStable(engine.rules, func(i, j int) bool {
		return engine.rules[i].priority < engine.rules[j].priority
	})
	return engine, nil
}

// LoadBuiltin loads the rule table compiled into the binary.
func LoadBuiltin() (*Engine, error) {
	return Load(builtinRulesSrc, "rules.hcl")
}
