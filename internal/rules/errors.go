// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package rules

import (
	"fmt"
)

// RuleConflictError is a load-time defect in a rule table: two rules share
// a priority, so precedence between them would be undefined. A table that
// fails to load this way must not be used; there is no evaluation-time
// recovery.
type RuleConflictError struct {
	Priority int
	Rules    []string
}

func (e *RuleConflictError) Error() string {
	return fmt.Sprintf("rule conflict: rules %q share priority %d, so their precedence is undefined", e.Rules, e.Priority)
}

// UnsupportedFeatureError reports that a matched rule recommends a feature
// the declared tool version cannot use. This indicates a rule table whose
// conditions don't guard their own tool lists; it is surfaced as an error
// rather than silently downgrading the recommendation.
type UnsupportedFeatureError struct {
	Tool        Tool
	ToolVersion string
	MinVersion  string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("recommendation includes %s, which needs tool version %s or later, but the project declares %s", e.Tool, e.MinVersion, e.ToolVersion)
}
