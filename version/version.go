// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package version holds the advisor's own version number, separate from
// the tool versions it reasons about.
package version

import (
	version "github.com/hashicorp/go-version"
)

// Version is the main version number being run, in semver form.
var Version = "0.1.0"

// Prerelease is a marker for the version, such as "dev", or "" for a
// release build.
var Prerelease = "dev"

// SemVer is Version parsed once at init, for callers that need to compare
// rather than display.
var SemVer *version.Version

func init() {
	SemVer = version.Must(version.NewVersion(Version))
}

// String returns the complete version string shown to users.
func String() string {
	if Prerelease != "" {
		return Version + "-" + Prerelease
	}
	return Version
}
