// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	invalid := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.HistorySize < 1 || c.HistorySize > maxRecallable {
		invalid("history_size must be between 1 and %d, got %d", maxRecallable, c.HistorySize)
	}

	if c.PidSize < 1 || c.PidSize > maxPidSize {
		invalid("pid_size must be between 1 and %d, got %d", maxPidSize, c.PidSize)
	}

	if c.MaxArguments < 0 || c.MaxArguments > maxArguments {
		invalid("max_arguments must be between 0 and %d, got %d", maxArguments, c.MaxArguments)
	}

	if c.LineMax < 2 || c.LineMax > maxLineMax {
		invalid("line_max must be between 2 and %d, got %d", maxLineMax, c.LineMax)
	}

	if !slices.Contains([]string{EndOfInputExit, EndOfInputRetry}, c.EndOfInput) {
		invalid("end_of_input must be %q or %q, got %q", EndOfInputExit, EndOfInputRetry, c.EndOfInput)
	}

	if !slices.Contains([]string{RecallLegacy, RecallInclusive}, c.SingleDigitRecall) {
		invalid("single_digit_recall must be %q or %q, got %q", RecallLegacy, RecallInclusive, c.SingleDigitRecall)
	}

	if !slices.Contains([]string{LineEditingAuto, LineEditingOn, LineEditingOff}, c.LineEditing) {
		invalid("line_editing must be one of %q, %q or %q, got %q",
			LineEditingAuto, LineEditingOn, LineEditingOff, c.LineEditing)
	}

	return result.ErrorOrNil()
}
