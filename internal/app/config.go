package app

// Config holds runtime settings for a search run. The search itself is
// described by config.SearchRequest; these settings only shape the process
// around it.
type Config struct {
	// Dotenv files loaded into the environment before arguments are resolved.
	EnvFiles []string

	Verbose bool

	// Process exit status used when the run fails.
	ExitCodeOnError int
}

const (
	defaultEnvFile         = ".env"
	defaultExitCodeOnError = 1
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		EnvFiles:        []string{defaultEnvFile},
		ExitCodeOnError: defaultExitCodeOnError,
	}
}
