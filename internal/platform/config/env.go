// Package config loads sparsecalc settings from the process environment and
// reports fatal command line errors.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every `env` tag, so a field tagged
// `env:"DB_PATH"` reads SPARSECALC_DB_PATH.
const EnvPrefix = "SPARSECALC_"

// ParseEnv fills target from SPARSECALC_* variables, applying envDefault tags
// for unset or empty ones.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
