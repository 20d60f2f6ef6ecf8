package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/minigrep/internal/config"
	"github.com/hyperifyio/minigrep/internal/match"
	"github.com/hyperifyio/minigrep/internal/source"
)

// App reads a source, runs the matcher and prints the matching lines.
type App struct {
	cfg    Config
	reader source.Reader
	out    io.Writer
}

// Option customises an App.
type Option func(*App)

// WithReader replaces the filesystem reader.
func WithReader(r source.Reader) Option {
	return func(a *App) { a.reader = r }
}

// WithOutput sets where matching lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

func New(cfg Config, opts ...Option) *App {
	a := &App{cfg: cfg, reader: source.FS{}, out: os.Stdout}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run performs one search and returns the number of lines written. The whole
// source is read before matching starts.
func (a *App) Run(ctx context.Context, req config.SearchRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	content, err := a.reader.ReadFile(req.Source())
	if err != nil {
		return 0, fmt.Errorf("read source: %w", err)
	}

	results := match.Search(req.Query(), content, req.CaseSensitive())
	log.Debug().
		Str("source", req.Source()).
		Bool("case_sensitive", req.CaseSensitive()).
		Int("bytes", len(content)).
		Int("matches", len(results)).
		Msg("search complete")

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	w := bufio.NewWriter(a.out)
	for _, line := range results {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	return len(results), nil
}

// ExitCode maps the outcome of a run to a process exit status. Failures use
// cfg.ExitCodeOnError; 0 there keeps the historical behaviour of exiting
// successfully after printing the error.
func ExitCode(cfg Config, err error) int {
	if err == nil {
		return 0
	}
	return cfg.ExitCodeOnError
}

// ExitCode applies the package-level policy with the App's settings.
func (a *App) ExitCode(err error) int { return ExitCode(a.cfg, err) }
