package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines CLI defaults sourced from PRCOMMENT_* env vars.
// Flags win over these values.
type baseEnv struct {
	// ConfigPath is the .prcomment.yaml path from PRCOMMENT_CONFIG.
	ConfigPath string `env:"PRCOMMENT_CONFIG"`
	// LogLevel is the logging level from PRCOMMENT_LOG_LEVEL.
	LogLevel string `env:"PRCOMMENT_LOG_LEVEL"`
	// State is the pull request state filter from PRCOMMENT_STATE.
	State string `env:"PRCOMMENT_STATE"`
	// Yes skips the confirmation prompt from PRCOMMENT_YES.
	Yes bool `env:"PRCOMMENT_YES"`
}

// loadBaseEnv fills baseEnv from PRCOMMENT_* env vars via caarlos0/env.
// Unset variables leave zero values in place.
func loadBaseEnv() (baseEnv, error) {
	var base baseEnv
	err := envparse.Parse(&base)
	return base, err
}
