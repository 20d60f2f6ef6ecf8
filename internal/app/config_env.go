package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	envConfigPath  = "MINIGREP_CONFIG"
	envVerbose     = "MINIGREP_VERBOSE"
	envExitOnError = "MINIGREP_EXIT_ON_ERROR"
)

// ApplyEnvOverrides lets environment variables take precedence over the
// settings file. Unparseable values are ignored with a warning.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if s := strings.ToLower(strings.TrimSpace(os.Getenv(envVerbose))); s != "" {
		switch s {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		case "0", "false", "no", "off":
			cfg.Verbose = false
		default:
			log.Warn().Str("key", envVerbose).Str("value", s).Msg("ignoring unrecognized boolean")
		}
	}

	if s := strings.TrimSpace(os.Getenv(envExitOnError)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Warn().Err(err).Str("key", envExitOnError).Msg("ignoring non-integer exit code")
		} else {
			cfg.ExitCodeOnError = n
		}
	}
}
