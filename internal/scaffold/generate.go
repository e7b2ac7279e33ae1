// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"time"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp/terraform-module-advisor/internal/facts"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))

// LicenseKind selects which license text the generator renders.
type LicenseKind string

const (
	LicenseMIT     LicenseKind = "mit"
	LicenseApache2 LicenseKind = "apache2"
	LicenseNone    LicenseKind = "none"
)

// GenerationOptions parameterizes scaffold generation. Engine and
// Visibility are required; everything else has a sensible default.
type GenerationOptions struct {
	Engine     facts.Engine
	Visibility facts.Visibility
	License    LicenseKind

	// IncludePreCommit renders the pre-commit configuration for private
	// modules, where it is optional. Public modules always get it.
	IncludePreCommit bool

	// ModuleName appears in rendered headings and examples.
	ModuleName string

	// LicenseHolder and Year fill the copyright line of the LICENSE
	// artifact. Year zero means the current year.
	LicenseHolder string
	Year          int
}

// RenderedArtifact is one generated file, produced in memory only.
// Persisting it is the caller's concern.
type RenderedArtifact struct {
	Path    string
	Content []byte
}

// Generate renders every artifact of the profile matching opts.Visibility
// that the existing tree doesn't already contain. Generation is
// idempotent: running it again over a tree that includes its own output
// produces nothing.
//
// It returns an *InvalidConfigurationError when the options contradict
// themselves, currently only for a public module without a license.
func Generate(opts GenerationOptions, existing FileTreeDescription) ([]RenderedArtifact, error) {
	profile := ProfilePrivateModule
	if opts.Visibility == facts.VisibilityPublic {
		profile = ProfilePublicModule
		if opts.License == LicenseNone || opts.License == "" {
			return nil, &InvalidConfigurationError{
				Problem: "a public module must carry a license; pick mit or apache2",
			}
		}
	}

	if opts.ModuleName == "" {
		opts.ModuleName = "module"
	}
	if opts.LicenseHolder == "" {
		opts.LicenseHolder = "The " + opts.ModuleName + " authors"
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}

	var rendered []RenderedArtifact
	seen := map[string]bool{}
	for _, artifact := range Spec(profile) {
		if artifact.Kind == KindRequiredSection || seen[artifact.Path] {
			continue
		}
		seen[artifact.Path] = true

		if _, exists := existing[artifact.Path]; exists {
			continue
		}
		if artifact.Path == ".pre-commit-config.yaml" && artifact.Kind == KindOptionalFile && !opts.IncludePreCommit {
			continue
		}

		content, err := renderArtifact(artifact.Path, opts, profile)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, RenderedArtifact{
			Path:    artifact.Path,
			Content: content,
		})
	}
	return rendered, nil
}

func renderArtifact(path string, opts GenerationOptions, profile Profile) ([]byte, error) {
	switch path {
	case "main.tf":
		return renderTemplate("main.tf.tmpl", opts, profile)
	case "variables.tf":
		return renderTemplate("variables.tf.tmpl", opts, profile)
	case "outputs.tf":
		return renderTemplate("outputs.tf.tmpl", opts, profile)
	case "versions.tf":
		return renderVersions(), nil
	case "README.md":
		return renderTemplate("readme.md.tmpl", opts, profile)
	case ".gitignore":
		return renderTemplate("gitignore.tmpl", opts, profile)
	case "LICENSE":
		switch opts.License {
		case LicenseMIT:
			return renderTemplate("license_mit.tmpl", opts, profile)
		case LicenseApache2:
			return renderTemplate("license_apache2.tmpl", opts, profile)
		default:
			return nil, &InvalidConfigurationError{
				Problem: fmt.Sprintf("unknown license kind %q", opts.License),
			}
		}
	case ".pre-commit-config.yaml":
		return renderPreCommit()
	default:
		return nil, fmt.Errorf("no renderer for scaffold artifact %q", path)
	}
}

func renderTemplate(name string, opts GenerationOptions, profile Profile) ([]byte, error) {
	data := struct {
		ModuleName     string
		Command        string
		EngineName     string
		IncludeLicense bool
		Holder         string
		Year           int
	}{
		ModuleName:     opts.ModuleName,
		Command:        opts.Engine.Command(),
		EngineName:     string(opts.Engine),
		IncludeLicense: profile == ProfilePublicModule,
		Holder:         opts.LicenseHolder,
		Year:           opts.Year,
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// renderVersions builds versions.tf with hclwrite so the output is
// guaranteed well-formed and canonically formatted.
func renderVersions() []byte {
	file := hclwrite.NewEmptyFile()
	block := file.Body().AppendNewBlock("terraform", nil)
	block.Body().SetAttributeValue("required_version", cty.StringVal(">= 1.6.0"))
	return file.Bytes()
}

// Pre-commit configuration, rendered through the yaml encoder rather than
// a text template so the structure stays valid as hooks change.
type preCommitHook struct {
	ID string `yaml:"id"`
}

type preCommitRepo struct {
	Repo  string          `yaml:"repo"`
	Rev   string          `yaml:"rev"`
	Hooks []preCommitHook `yaml:"hooks"`
}

type preCommitConfig struct {
	Repos []preCommitRepo `yaml:"repos"`
}

func renderPreCommit() ([]byte, error) {
	config := preCommitConfig{
		Repos: []preCommitRepo{
			{
				Repo: "https://github.com/antonbabenko/pre-commit-terraform",
				Rev:  "v1.92.0",
				Hooks: []preCommitHook{
					{ID: "terraform_fmt"},
					{ID: "terraform_validate"},
					{ID: "terraform_docs"},
					{ID: "terraform_tflint"},
					{ID: "terraform_trivy"},
					{ID: "terraform_checkov"},
				},
			},
		},
	}
	return yaml.Marshal(&config)
}
