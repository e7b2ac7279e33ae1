// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moddiags

// Diagnostic is the interface implemented by all diagnostic values carried
// in a Diagnostics collection.
//
// The advisory core never deals in source positions, so unlike a full
// configuration-language diagnostic there is no source range here: every
// diagnostic describes a property of the caller-supplied input or of the
// static tables, not of a file on disk.
type Diagnostic interface {
	Severity() Severity
	Description() Description
}

// Severity describes the severity of a diagnostic.
type Severity rune

const (
	// Error is a diagnostic severity for problems that prevented the
	// requested operation from completing.
	Error Severity = 'E'

	// Warning is a diagnostic severity for concerns that don't prevent the
	// operation from completing but that the caller should know about.
	Warning Severity = 'W'
)

// Description holds the human-facing parts of a diagnostic: a terse summary
// and an optional longer detail paragraph.
type Description struct {
	Summary string
	Detail  string
}

type diagnosticBase struct {
	severity Severity
	summary  string
	detail   string
}

func (d diagnosticBase) Severity() Severity {
	return d.severity
}

func (d diagnosticBase) Description() Description {
	return Description{
		Summary: d.summary,
		Detail:  d.detail,
	}
}
