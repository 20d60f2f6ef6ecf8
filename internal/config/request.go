// Package config turns raw command-line tokens and the environment into a
// validated SearchRequest.
package config

import (
	"os"

	"github.com/hyperifyio/minigrep/internal/args"
)

// CaseInsensitiveEnv disables case-sensitive matching when present in the
// environment, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// PresenceFunc reports whether an environment key is set.
type PresenceFunc func(key string) bool

// OSPresence checks the process environment. An empty value counts as set.
func OSPresence(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// SearchRequest is the validated input of one search run.
type SearchRequest struct {
	query         string
	source        string
	caseSensitive bool
}

func (r SearchRequest) Query() string       { return r.query }
func (r SearchRequest) Source() string      { return r.source }
func (r SearchRequest) CaseSensitive() bool { return r.caseSensitive }

// Build consumes tokens in order: the program name, the query, the source
// path. At least one further token must remain after the source path; it is
// not read. Case sensitivity is on unless CaseInsensitiveEnv is present.
func Build(tokens args.Cursor, present PresenceFunc) (SearchRequest, error) {
	// program name
	tokens.Next()

	query, ok := tokens.Next()
	if !ok || query == "" {
		return SearchRequest{}, ErrMissingQuery
	}
	source, ok := tokens.Next()
	if !ok || source == "" {
		return SearchRequest{}, ErrMissingFilename
	}
	if tokens.Remaining() < 1 {
		return SearchRequest{}, ErrInsufficientArguments
	}

	if present == nil {
		present = OSPresence
	}
	return SearchRequest{
		query:         query,
		source:        source,
		caseSensitive: !present(CaseInsensitiveEnv),
	}, nil
}

// FromArgs is Build over a plain token slice such as os.Args.
func FromArgs(tokens []string, present PresenceFunc) (SearchRequest, error) {
	return Build(args.FromSlice(tokens), present)
}
