package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/minigrep/internal/app"
	"github.com/hyperifyio/minigrep/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run resolves settings and arguments, performs the search and returns the
// process exit status. Errors are reported on stderr.
func run(ctx context.Context, tokens []string, stdout, stderr io.Writer) int {
	cfg, err := app.LoadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "problem loading settings: %v\n", err)
		return app.ExitCode(app.DefaultConfig(), err)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Str("version", app.BuildVersion).Str("commit", app.BuildCommit).Str("date", app.BuildDate).Msg("minigrep starting")

	req, err := config.FromArgs(tokens, config.OSPresence)
	if err != nil {
		fmt.Fprintf(stderr, "problem parsing arguments: %v\n", err)
		return app.ExitCode(cfg, err)
	}

	a := app.New(cfg, app.WithOutput(stdout))
	if _, err := a.Run(ctx, req); err != nil {
		fmt.Fprintf(stderr, "application error: %v\n", err)
		return a.ExitCode(err)
	}
	return 0
}
