// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// hclFile mirrors Config with optional attributes so that unset ones keep their defaults.
type hclFile struct {
	Prompt            *string `hcl:"prompt,optional"`
	HistorySize       *int    `hcl:"history_size,optional"`
	PidSize           *int    `hcl:"pid_size,optional"`
	MaxArguments      *int    `hcl:"max_arguments,optional"`
	LineMax           *int    `hcl:"line_max,optional"`
	EndOfInput        *string `hcl:"end_of_input,optional"`
	SingleDigitRecall *string `hcl:"single_digit_recall,optional"`
	LineEditing       *string `hcl:"line_editing,optional"`
}

func decodeHCL(name string, data []byte, cfg *Config) error {
	var f hclFile
	if err := hclsimple.Decode(name, data, evalContext(os.Environ()), &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHCL, err)
	}

	setIfPresent(&cfg.Prompt, f.Prompt)
	setIfPresent(&cfg.HistorySize, f.HistorySize)
	setIfPresent(&cfg.PidSize, f.PidSize)
	setIfPresent(&cfg.MaxArguments, f.MaxArguments)
	setIfPresent(&cfg.LineMax, f.LineMax)
	setIfPresent(&cfg.EndOfInput, f.EndOfInput)
	setIfPresent(&cfg.SingleDigitRecall, f.SingleDigitRecall)
	setIfPresent(&cfg.LineEditing, f.LineEditing)

	return nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// evalContext exposes the environment to expressions as env.NAME.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		vars[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": env,
		},
	}
}
