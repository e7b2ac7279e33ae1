// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moddiags

import (
	"fmt"
	"strings"
)

// Diagnostics is a collection of Diagnostic values, and is the type used
// throughout the advisory engine to accumulate warnings and errors while
// still making progress where possible.
//
// A nil Diagnostics is a valid, empty collection. Always assign the result
// of Append back to the receiver variable, as with the builtin append.
type Diagnostics []Diagnostic

// Append adds new diagnostics to the receiver and returns the extended
// collection.
//
// It accepts Diagnostic values, other Diagnostics collections, and plain
// error values (wrapped as error-severity diagnostics). A nil argument is
// ignored, so callers can append the result of functions that may return
// no diagnostics at all.
func (diags Diagnostics) Append(new ...interface{}) Diagnostics {
	for _, item := range new {
		if item == nil {
			continue
		}
		switch ti := item.(type) {
		case Diagnostic:
			diags = append(diags, ti)
		case Diagnostics:
			diags = append(diags, ti...)
		case error:
			diags = append(diags, nativeError{ti})
		default:
			panic(fmt.Errorf("can't construct diagnostic(s) from %T", item))
		}
	}
	return diags
}

// HasErrors returns true if any of the diagnostics in the collection have
// error severity.
func (diags Diagnostics) HasErrors() bool {
	for _, diag := range diags {
		if diag.Severity() == Error {
			return true
		}
	}
	return false
}

// Warnings returns the subset of the collection that has warning severity,
// preserving order.
func (diags Diagnostics) Warnings() Diagnostics {
	var ret Diagnostics
	for _, diag := range diags {
		if diag.Severity() == Warning {
			ret = append(ret, diag)
		}
	}
	return ret
}

// Err flattens the collection into a single error value, or nil if the
// collection has no error-severity diagnostics. Warnings are dropped, on
// the assumption that they have been (or will be) presented separately.
func (diags Diagnostics) Err() error {
	if !diags.HasErrors() {
		return nil
	}

	var b strings.Builder
	n := 0
	for _, diag := range diags {
		if diag.Severity() != Error {
			continue
		}
		if n > 0 {
			b.WriteString("; ")
		}
		desc := diag.Description()
		if desc.Detail != "" {
			fmt.Fprintf(&b, "%s: %s", desc.Summary, desc.Detail)
		} else {
			b.WriteString(desc.Summary)
		}
		n++
	}
	if n > 1 {
		return fmt.Errorf("%d problems: %s", n, b.String())
	}
	return fmt.Errorf("%s", b.String())
}

// nativeError is a Diagnostic wrapper around a plain Go error.
type nativeError struct {
	err error
}

func (e nativeError) Severity() Severity {
	return Error
}

func (e nativeError) Description() Description {
	return Description{
		Summary: e.err.Error(),
	}
}
