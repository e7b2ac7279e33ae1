// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moddiags

// Sourceless creates and returns a diagnostic with no source location
// information. All advisory diagnostics are sourceless, since the engine
// operates on caller-supplied fact snapshots rather than parsed files.
func Sourceless(severity Severity, summary, detail string) Diagnostic {
	return diagnosticBase{
		severity: severity,
		summary:  summary,
		detail:   detail,
	}
}
