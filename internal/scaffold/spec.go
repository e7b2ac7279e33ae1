// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package scaffold defines the canonical artifact set a module is expected
// to contain, validates described file trees against it, and renders the
// missing artifacts.
package scaffold

// Profile selects which artifact set applies: public modules carry
// licensing and contribution tooling that private ones may omit.
type Profile string

const (
	ProfilePublicModule  Profile = "public-module"
	ProfilePrivateModule Profile = "private-module"
)

// ArtifactKind classifies a scaffold artifact.
type ArtifactKind string

const (
	// KindRequiredFile must exist in the tree.
	KindRequiredFile ArtifactKind = "required-file"

	// KindRequiredSection must exist as a section header within the file
	// named by the artifact's Path.
	KindRequiredSection ArtifactKind = "required-section"

	// KindOptionalFile is rendered by the generator but its absence is
	// not a compliance gap.
	KindOptionalFile ArtifactKind = "optional-file"
)

// contentCheck names the shape check applied to a present file, if any.
type contentCheck int

const (
	checkNone contentCheck = iota
	checkVariableDescriptions
	checkOutputDescriptions
	checkRequiredVersion
)

// Artifact is one entry of a profile's scaffold specification.
type Artifact struct {
	Path string
	Kind ArtifactKind

	// Section is set for KindRequiredSection entries only: the markdown
	// header that must be present in the file at Path.
	Section string

	check contentCheck
}

// String returns the artifact's display name, including the section for
// section entries.
func (a Artifact) String() string {
	if a.Kind == KindRequiredSection {
		return a.Path + " § " + a.Section
	}
	return a.Path
}

// commonSpec is the artifact set shared by both profiles, in report order.
var commonSpec = []Artifact{
	{Path: "main.tf", Kind: KindRequiredFile},
	{Path: "variables.tf", Kind: KindRequiredFile, check: checkVariableDescriptions},
	{Path: "outputs.tf", Kind: KindRequiredFile, check: checkOutputDescriptions},
	{Path: "versions.tf", Kind: KindRequiredFile, check: checkRequiredVersion},
	{Path: "README.md", Kind: KindRequiredFile},
	{Path: "README.md", Kind: KindRequiredSection, Section: "Usage"},
	{Path: "README.md", Kind: KindRequiredSection, Section: "Examples"},
	{Path: ".gitignore", Kind: KindOptionalFile},
}

// Spec returns the ordered artifact set for the given profile. The result
// is a fresh slice each call; the underlying tables are never mutated.
func Spec(profile Profile) []Artifact {
	spec := make([]Artifact, 0, len(commonSpec)+3)
	spec = append(spec, commonSpec...)
	switch profile {
	case ProfilePublicModule:
		spec = append(spec,
			Artifact{Path: "LICENSE", Kind: KindRequiredFile},
			Artifact{Path: "README.md", Kind: KindRequiredSection, Section: "License"},
			Artifact{Path: ".pre-commit-config.yaml", Kind: KindRequiredFile},
		)
	case ProfilePrivateModule:
		spec = append(spec,
			Artifact{Path: ".pre-commit-config.yaml", Kind: KindOptionalFile},
		)
	}
	return spec
}
