// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package treescan

import (
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

func writeFiles(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		if err := afero.WriteFile(fsys, path.Join(root, rel), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %s", rel, err)
		}
	}
}

func TestScanConfigBlocks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "mod", map[string]string{
		"main.tf": `
resource "aws_vpc" "this" {
  cidr_block = var.vpc_cidr_block
}

resource "aws_subnet" "private" {
  vpc_id = aws_vpc.this.id
}
`,
		"variables.tf": `
variable "vpc_cidr_block" {
  description = "CIDR block for the VPC"
  type        = string
}
`,
	})

	tree, diags := Scan(fsys, "mod")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}

	want := scaffold.FileTreeDescription{
		"main.tf": {
			Blocks: []scaffold.BlockDescription{
				{Type: "resource", Labels: []string{"aws_vpc", "this"}, Attributes: []string{"cidr_block"}},
				{Type: "resource", Labels: []string{"aws_subnet", "private"}, Attributes: []string{"vpc_id"}},
			},
		},
		"variables.tf": {
			Blocks: []scaffold.BlockDescription{
				{Type: "variable", Labels: []string{"vpc_cidr_block"}, Attributes: []string{"description", "type"}},
			},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("wrong tree description:\n%s", diff)
	}
}

func TestScanMarkdownSections(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "mod", map[string]string{
		"README.md": "# my-module\n\nIntro.\n\n## Usage\n\n```shell\n# not a header\nterraform init\n```\n\n## Examples\n\nSee examples/.\n",
	})

	tree, diags := Scan(fsys, "mod")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}

	want := []string{"my-module", "Usage", "Examples"}
	if diff := cmp.Diff(want, tree["README.md"].Sections); diff != "" {
		t.Errorf("wrong sections:\n%s", diff)
	}
}

func TestScanUnparseableConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "mod", map[string]string{
		"main.tf": `resource "aws_vpc" {`,
	})

	tree, diags := Scan(fsys, "mod")
	if diags.HasErrors() {
		t.Fatalf("syntax errors must demote, not fail: %s", diags.Err())
	}
	if len(diags.Warnings()) == 0 {
		t.Error("expected a warning for the unparseable file")
	}
	if _, exists := tree["main.tf"]; !exists {
		t.Error("unparseable file should still be present in the tree")
	}
}

func TestScanSkipsDotTerraform(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "mod", map[string]string{
		"main.tf":                        `locals {}`,
		".terraform/providers/cached.tf": `resource "aws_vpc" "cache" {}`,
	})

	tree, diags := Scan(fsys, "mod")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}
	for rel := range tree {
		if rel != "main.tf" {
			t.Errorf("scanned unexpected path %s", rel)
		}
	}
}

// A generated scaffold must scan back into a tree that passes validation
// for the same profile with no gaps and no findings.
func TestScanGenerateRoundTrip(t *testing.T) {
	opts := scaffold.GenerationOptions{
		Engine:        facts.EngineOpenTofu,
		Visibility:    facts.VisibilityPublic,
		License:       scaffold.LicenseApache2,
		ModuleName:    "network",
		LicenseHolder: "Example Corp",
		Year:          2026,
	}
	rendered, err := scaffold.Generate(opts, scaffold.FileTreeDescription{})
	if err != nil {
		t.Fatalf("generate: %s", err)
	}

	fsys := afero.NewMemMapFs()
	for _, artifact := range rendered {
		if err := afero.WriteFile(fsys, path.Join("mod", artifact.Path), artifact.Content, 0o644); err != nil {
			t.Fatalf("writing %s: %s", artifact.Path, err)
		}
	}

	tree, diags := Scan(fsys, "mod")
	if diags.HasErrors() {
		t.Fatalf("scan: %s", diags.Err())
	}

	report := scaffold.Validate(tree, scaffold.ProfilePublicModule, scaffold.AllChecks())
	if !report.Passed() {
		t.Errorf("generated scaffold failed validation: %+v", report.Entries)
	}
	for _, entry := range report.Entries {
		if entry.Status == scaffold.StatusMalformed {
			t.Errorf("generated artifact %s malformed: %s", entry.Artifact, entry.Detail)
		}
	}
	if len(report.Findings) != 0 {
		t.Errorf("generated scaffold produced naming findings: %+v", report.Findings)
	}
}
