// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package scaffold

// InvalidConfigurationError reports self-contradictory generation options,
// such as a public module with no license. It aborts only the call that
// supplied the options.
type InvalidConfigurationError struct {
	Problem string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Problem
}
