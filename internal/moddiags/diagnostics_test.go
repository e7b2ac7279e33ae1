// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moddiags

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnosticsAppend(t *testing.T) {
	var diags Diagnostics

	diags = diags.Append(Sourceless(Warning, "a warning", "detail"))
	diags = diags.Append(errors.New("a plain error"))
	diags = diags.Append(nil) // ignored

	var more Diagnostics
	more = more.Append(Sourceless(Error, "another error", ""))
	diags = diags.Append(more)

	if got, want := len(diags), 3; got != want {
		t.Fatalf("got %d diagnostics, want %d", got, want)
	}
	if !diags.HasErrors() {
		t.Error("expected HasErrors")
	}
	if got, want := len(diags.Warnings()), 1; got != want {
		t.Errorf("got %d warnings, want %d", got, want)
	}
}

func TestDiagnosticsErr(t *testing.T) {
	var diags Diagnostics
	if diags.Err() != nil {
		t.Error("empty diagnostics should flatten to nil")
	}

	diags = diags.Append(Sourceless(Warning, "only a warning", ""))
	if diags.Err() != nil {
		t.Error("warnings alone should flatten to nil")
	}

	diags = diags.Append(Sourceless(Error, "broke", "badly"))
	err := diags.Err()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "broke") {
		t.Errorf("error should carry the summary, got: %s", err)
	}

	diags = diags.Append(Sourceless(Error, "broke again", ""))
	if !strings.Contains(diags.Err().Error(), "2 problems") {
		t.Errorf("multiple errors should be counted, got: %s", diags.Err())
	}
}
