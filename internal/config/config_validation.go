// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup: the token sign key
// and the DSN must be present, durations positive and enumerations known.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists every failed field otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
