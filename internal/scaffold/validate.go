// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// ArtifactStatus is the validation outcome for one scaffold artifact.
type ArtifactStatus string

const (
	StatusPresent   ArtifactStatus = "present"
	StatusMissing   ArtifactStatus = "missing"
	StatusMalformed ArtifactStatus = "malformed"
)

// ComplianceEntry is the validation result for one artifact of the
// profile's scaffold specification.
type ComplianceEntry struct {
	Artifact Artifact
	Status   ArtifactStatus

	// Detail explains a malformed status; empty otherwise.
	Detail string
}

// FindingKind identifies a naming-convention finding.
type FindingKind string

const (
	// FindingNonIdiomaticSingletonName flags a resource type with exactly
	// one instance whose name is generic but not "this".
	FindingNonIdiomaticSingletonName FindingKind = "non-idiomatic-singleton-name"

	// FindingAmbiguousPluralName flags a resource type with more than one
	// instance where one of them is named "this".
	FindingAmbiguousPluralName FindingKind = "ambiguous-plural-name"

	// FindingNonDescriptiveIdentifier flags a variable or output whose
	// name is a generic token that says nothing about its meaning.
	FindingNonDescriptiveIdentifier FindingKind = "non-descriptive-identifier"
)

// NamingFinding is one naming-convention violation. Findings never affect
// the overall pass/fail result; they are advisory.
type NamingFinding struct {
	Kind    FindingKind
	Subject string
	Detail  string
}

// ComplianceReport is the immutable result of one validation run. Entries
// follow the scaffold specification order and findings are grouped after
// them, so two runs over the same tree diff cleanly.
type ComplianceReport struct {
	Profile  Profile
	Entries  []ComplianceEntry
	Findings []NamingFinding
}

// Passed reports whether the tree satisfies the profile: no missing and no
// malformed artifacts. Naming findings don't fail a report.
func (r *ComplianceReport) Passed() bool {
	for _, e := range r.Entries {
		if e.Status != StatusPresent {
			return false
		}
	}
	return true
}

// ValidateOptions toggles the independent naming-convention checks. The
// zero value runs none of them; use AllChecks for the full set.
type ValidateOptions struct {
	SingletonNames  bool
	IdentifierNames bool
}

// AllChecks enables every naming-convention check.
func AllChecks() ValidateOptions {
	return ValidateOptions{
		SingletonNames:  true,
		IdentifierNames: true,
	}
}

// identifierDenylist are variable/output names too generic to describe
// anything.
var identifierDenylist = map[string]bool{
	"name":           true,
	"type":           true,
	"value":          true,
	"cidr":           true,
	"instance_class": true,
	"port":           true,
}

// genericResourceNames are resource names that carry no information beyond
// "the one resource here". For singletons the idiomatic choice among them
// is exactly "this".
var genericResourceNames = map[string]bool{
	"this":     true,
	"main":     true,
	"default":  true,
	"primary":  true,
	"resource": true,
}

// Validate checks the described tree against the profile's scaffold
// specification and returns a compliance report. It never fails: gaps and
// malformations are report content, not errors.
func Validate(tree FileTreeDescription, profile Profile, opts ValidateOptions) *ComplianceReport {
	report := &ComplianceReport{
		Profile: profile,
	}

	for _, artifact := range Spec(profile) {
		desc, exists := tree[artifact.Path]

		switch artifact.Kind {
		case KindOptionalFile:
			// Absence of an optional file is not a gap, so it produces
			// no entry at all.
			if exists {
				report.Entries = append(report.Entries, ComplianceEntry{
					Artifact: artifact,
					Status:   StatusPresent,
				})
			}

		case KindRequiredFile:
			entry := ComplianceEntry{Artifact: artifact}
			switch {
			case !exists:
				entry.Status = StatusMissing
			default:
				entry.Status, entry.Detail = checkShape(artifact, desc)
			}
			report.Entries = append(report.Entries, entry)

		case KindRequiredSection:
			entry := ComplianceEntry{Artifact: artifact}
			if desc.HasSection(artifact.Section) {
				entry.Status = StatusPresent
			} else {
				entry.Status = StatusMissing
			}
			report.Entries = append(report.Entries, entry)
		}
	}

	if opts.SingletonNames {
		report.Findings = append(report.Findings, singletonFindings(tree)...)
	}
	if opts.IdentifierNames {
		report.Findings = append(report.Findings, identifierFindings(tree)...)
	}

	return report
}

// checkShape applies the artifact's content check to a present file.
func checkShape(artifact Artifact, desc *FileDescription) (ArtifactStatus, string) {
	switch artifact.check {
	case checkVariableDescriptions:
		if bad := blocksWithoutAttribute(desc, "variable", "description"); len(bad) > 0 {
			return StatusMalformed, fmt.Sprintf("variable %s missing a description", strings.Join(bad, ", "))
		}
	case checkOutputDescriptions:
		if bad := blocksWithoutAttribute(desc, "output", "description"); len(bad) > 0 {
			return StatusMalformed, fmt.Sprintf("output %s missing a description", strings.Join(bad, ", "))
		}
	case checkRequiredVersion:
		for _, block := range desc.Blocks {
			if block.Type == "terraform" && block.HasAttribute("required_version") {
				return StatusPresent, ""
			}
		}
		return StatusMalformed, "no terraform block with required_version"
	}
	return StatusPresent, ""
}

func blocksWithoutAttribute(desc *FileDescription, blockType, attr string) []string {
	var bad []string
	for _, block := range desc.Blocks {
		if block.Type != blockType || len(block.Labels) == 0 {
			continue
		}
		if !block.HasAttribute(attr) {
			bad = append(bad, fmt.Sprintf("%q", block.Labels[0]))
		}
	}
	return bad
}

// singletonFindings applies the "this" naming convention: a resource type
// instantiated once should use the name "this" rather than another generic
// name, and a type instantiated more than once must not use "this" at all.
// Each offending type yields exactly one finding.
func singletonFindings(tree FileTreeDescription) []NamingFinding {
	byType := make(map[string][]string)
	for _, path := range sortedPaths(tree) {
		for _, block := range tree[path].Blocks {
			if block.Type != "resource" || len(block.Labels) < 2 {
				continue
			}
			byType[block.Labels[0]] = append(byType[block.Labels[0]], block.Labels[1])
		}
	}

	types := make([]string, 0, len(byType))
	for rt := range byType {
		types = append(types, rt)
	}
	sort.Strings(types)

	var findings []NamingFinding
	for _, rt := range types {
		instances := byType[rt]
		if len(instances) == 1 {
			name := instances[0]
			if genericResourceNames[name] && name != "this" {
				findings = append(findings, NamingFinding{
					Kind:    FindingNonIdiomaticSingletonName,
					Subject: fmt.Sprintf("%s.%s", rt, name),
					Detail:  fmt.Sprintf("%s is the only %s in the module; the idiomatic name for a singleton is \"this\"", name, rt),
				})
			}
			continue
		}
		for _, name := range instances {
			if name == "this" {
				findings = append(findings, NamingFinding{
					Kind:    FindingAmbiguousPluralName,
					Subject: fmt.Sprintf("%s.this", rt),
					Detail:  fmt.Sprintf("%d instances of %s exist, so \"this\" no longer identifies one of them; name each instance for its role", len(instances), rt),
				})
				break
			}
		}
	}
	return findings
}

// identifierFindings flags variables and outputs named with denylisted
// generic tokens.
func identifierFindings(tree FileTreeDescription) []NamingFinding {
	var findings []NamingFinding
	for _, path := range sortedPaths(tree) {
		for _, block := range tree[path].Blocks {
			if block.Type != "variable" && block.Type != "output" {
				continue
			}
			if len(block.Labels) == 0 || !identifierDenylist[block.Labels[0]] {
				continue
			}
			findings = append(findings, NamingFinding{
				Kind:    FindingNonDescriptiveIdentifier,
				Subject: fmt.Sprintf("%s.%s", block.Type, block.Labels[0]),
				Detail:  fmt.Sprintf("%s name %q says nothing about what it holds; include the meaning, e.g. %q", block.Type, block.Labels[0], "vpc_"+block.Labels[0]),
			})
		}
	}
	return findings
}

func sortedPaths(tree FileTreeDescription) []string {
	paths := make([]string, 0, len(tree))
	for path := range tree {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
