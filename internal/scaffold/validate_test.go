// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package scaffold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// completeTree returns a tree satisfying the private-module profile.
func completeTree() FileTreeDescription {
	return FileTreeDescription{
		"main.tf": {},
		"variables.tf": {
			Blocks: []BlockDescription{
				{Type: "variable", Labels: []string{"vpc_cidr_block"}, Attributes: []string{"description", "type"}},
			},
		},
		"outputs.tf": {
			Blocks: []BlockDescription{
				{Type: "output", Labels: []string{"vpc_id"}, Attributes: []string{"description", "value"}},
			},
		},
		"versions.tf": {
			Blocks: []BlockDescription{
				{Type: "terraform", Attributes: []string{"required_version"}},
			},
		},
		"README.md": {
			Sections: []string{"my-module", "Usage", "Examples"},
		},
	}
}

func TestValidateCompliantPrivate(t *testing.T) {
	report := Validate(completeTree(), ProfilePrivateModule, AllChecks())
	if !report.Passed() {
		t.Errorf("expected pass, got entries: %+v", report.Entries)
	}
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings, got %+v", report.Findings)
	}
}

func TestValidateMissingFiles(t *testing.T) {
	tree := completeTree()
	delete(tree, "outputs.tf")
	delete(tree, "versions.tf")

	report := Validate(tree, ProfilePrivateModule, AllChecks())
	if report.Passed() {
		t.Error("expected failure for missing files")
	}

	statuses := map[string]ArtifactStatus{}
	for _, entry := range report.Entries {
		if entry.Artifact.Kind == KindRequiredFile {
			statuses[entry.Artifact.Path] = entry.Status
		}
	}
	if statuses["outputs.tf"] != StatusMissing {
		t.Errorf("outputs.tf: got %q, want missing", statuses["outputs.tf"])
	}
	if statuses["versions.tf"] != StatusMissing {
		t.Errorf("versions.tf: got %q, want missing", statuses["versions.tf"])
	}
	if statuses["main.tf"] != StatusPresent {
		t.Errorf("main.tf: got %q, want present", statuses["main.tf"])
	}
}

func TestValidateMalformed(t *testing.T) {
	t.Run("variable without description", func(t *testing.T) {
		tree := completeTree()
		tree["variables.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "variable", Labels: []string{"vpc_cidr_block"}, Attributes: []string{"type"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())
		if entryStatus(report, "variables.tf") != StatusMalformed {
			t.Errorf("variables.tf: got %q, want malformed", entryStatus(report, "variables.tf"))
		}
	})

	t.Run("no required_version", func(t *testing.T) {
		tree := completeTree()
		tree["versions.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "terraform", Attributes: []string{"required_providers"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())
		if entryStatus(report, "versions.tf") != StatusMalformed {
			t.Errorf("versions.tf: got %q, want malformed", entryStatus(report, "versions.tf"))
		}
	})
}

func TestValidateSections(t *testing.T) {
	tree := completeTree()
	tree["README.md"] = &FileDescription{Sections: []string{"my-module", "Usage"}}

	report := Validate(tree, ProfilePrivateModule, AllChecks())
	if report.Passed() {
		t.Error("expected failure for missing Examples section")
	}

	var found bool
	for _, entry := range report.Entries {
		if entry.Artifact.Kind == KindRequiredSection && entry.Artifact.Section == "Examples" {
			found = true
			if entry.Status != StatusMissing {
				t.Errorf("Examples section: got %q, want missing", entry.Status)
			}
		}
	}
	if !found {
		t.Error("no entry for the Examples section")
	}
}

func TestValidatePublicProfile(t *testing.T) {
	tree := completeTree()
	report := Validate(tree, ProfilePublicModule, AllChecks())
	if report.Passed() {
		t.Error("a private-complete tree must not satisfy the public profile")
	}

	if entryStatus(report, "LICENSE") != StatusMissing {
		t.Errorf("LICENSE: got %q, want missing", entryStatus(report, "LICENSE"))
	}
	if entryStatus(report, ".pre-commit-config.yaml") != StatusMissing {
		t.Errorf(".pre-commit-config.yaml: got %q, want missing", entryStatus(report, ".pre-commit-config.yaml"))
	}
}

func TestValidateOptionalAbsentNotReported(t *testing.T) {
	report := Validate(completeTree(), ProfilePrivateModule, AllChecks())
	for _, entry := range report.Entries {
		if entry.Artifact.Path == ".gitignore" {
			t.Errorf("absent optional file reported: %+v", entry)
		}
	}
}

func TestSingletonNaming(t *testing.T) {
	t.Run("two subnets named this", func(t *testing.T) {
		tree := completeTree()
		tree["main.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "resource", Labels: []string{"aws_subnet", "this"}},
				{Type: "resource", Labels: []string{"aws_subnet", "this"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())

		var ambiguous []NamingFinding
		for _, finding := range report.Findings {
			if finding.Kind == FindingAmbiguousPluralName {
				ambiguous = append(ambiguous, finding)
			}
		}
		if len(ambiguous) != 1 {
			t.Fatalf("got %d ambiguous-plural-name findings, want exactly 1: %+v", len(ambiguous), ambiguous)
		}
		if ambiguous[0].Subject != "aws_subnet.this" {
			t.Errorf("wrong subject: %q", ambiguous[0].Subject)
		}
	})

	t.Run("one vpc named this", func(t *testing.T) {
		tree := completeTree()
		tree["main.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "resource", Labels: []string{"aws_vpc", "this"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())
		if len(report.Findings) != 0 {
			t.Errorf("singleton named this is idiomatic, got findings: %+v", report.Findings)
		}
	})

	t.Run("singleton with generic non-this name", func(t *testing.T) {
		tree := completeTree()
		tree["main.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "resource", Labels: []string{"aws_vpc", "main"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())
		if len(report.Findings) != 1 || report.Findings[0].Kind != FindingNonIdiomaticSingletonName {
			t.Errorf("expected one non-idiomatic-singleton-name finding, got %+v", report.Findings)
		}
	})

	t.Run("singleton with descriptive name", func(t *testing.T) {
		tree := completeTree()
		tree["main.tf"] = &FileDescription{
			Blocks: []BlockDescription{
				{Type: "resource", Labels: []string{"aws_vpc", "application"}},
			},
		}
		report := Validate(tree, ProfilePrivateModule, AllChecks())
		if len(report.Findings) != 0 {
			t.Errorf("descriptive singleton name is fine, got findings: %+v", report.Findings)
		}
	})
}

func TestIdentifierNaming(t *testing.T) {
	tree := completeTree()
	tree["variables.tf"] = &FileDescription{
		Blocks: []BlockDescription{
			{Type: "variable", Labels: []string{"cidr"}, Attributes: []string{"description", "type"}},
			{Type: "variable", Labels: []string{"vpc_cidr_block"}, Attributes: []string{"description", "type"}},
		},
	}
	tree["outputs.tf"] = &FileDescription{
		Blocks: []BlockDescription{
			{Type: "output", Labels: []string{"value"}, Attributes: []string{"description", "value"}},
		},
	}

	report := Validate(tree, ProfilePrivateModule, AllChecks())

	want := []NamingFinding{
		{Kind: FindingNonDescriptiveIdentifier, Subject: "output.value"},
		{Kind: FindingNonDescriptiveIdentifier, Subject: "variable.cidr"},
	}
	var got []NamingFinding
	for _, finding := range report.Findings {
		got = append(got, NamingFinding{Kind: finding.Kind, Subject: finding.Subject})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong findings:\n%s", diff)
	}
}

func TestValidateChecksToggleable(t *testing.T) {
	tree := completeTree()
	tree["main.tf"] = &FileDescription{
		Blocks: []BlockDescription{
			{Type: "resource", Labels: []string{"aws_subnet", "this"}},
			{Type: "resource", Labels: []string{"aws_subnet", "this"}},
		},
	}
	tree["variables.tf"] = &FileDescription{
		Blocks: []BlockDescription{
			{Type: "variable", Labels: []string{"cidr"}, Attributes: []string{"description"}},
		},
	}

	t.Run("all off", func(t *testing.T) {
		report := Validate(tree, ProfilePrivateModule, ValidateOptions{})
		if len(report.Findings) != 0 {
			t.Errorf("disabled checks still produced findings: %+v", report.Findings)
		}
	})
	t.Run("singleton only", func(t *testing.T) {
		report := Validate(tree, ProfilePrivateModule, ValidateOptions{SingletonNames: true})
		for _, finding := range report.Findings {
			if finding.Kind == FindingNonDescriptiveIdentifier {
				t.Errorf("identifier check ran while disabled: %+v", finding)
			}
		}
	})
}

func TestValidateDeterministicOrder(t *testing.T) {
	tree := completeTree()
	delete(tree, "main.tf")
	tree["net.tf"] = &FileDescription{
		Blocks: []BlockDescription{
			{Type: "resource", Labels: []string{"aws_subnet", "this"}},
			{Type: "resource", Labels: []string{"aws_subnet", "this"}},
		},
	}

	first := Validate(tree, ProfilePublicModule, AllChecks())
	second := Validate(tree, ProfilePublicModule, AllChecks())
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(Artifact{})); diff != "" {
		t.Errorf("reports differ across runs:\n%s", diff)
	}
}

func entryStatus(report *ComplianceReport, path string) ArtifactStatus {
	for _, entry := range report.Entries {
		if entry.Artifact.Path == path && entry.Artifact.Kind != KindRequiredSection {
			return entry.Status
		}
	}
	return ""
}
