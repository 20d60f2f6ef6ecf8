// Package source loads the text a search runs over.
package source

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Kind classifies a read failure.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermissionDenied
	KindInvalidText
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindInvalidText:
		return "invalid text"
	default:
		return "other"
	}
}

// Error reports why a source could not be read.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindInvalidText {
		return e.Path + ": stream did not contain valid UTF-8"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Reader reads a whole source into memory.
type Reader interface {
	ReadFile(path string) (string, error)
}

// FS reads from the local filesystem.
type FS struct{}

func (FS) ReadFile(path string) (string, error) { return ReadFile(path) }

// ReadFile returns the full content of path. The content must be valid
// UTF-8.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Kind: classify(err), Path: path, Err: err}
	}
	if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
		return "", &Error{Kind: KindInvalidText, Path: path, Err: err}
	}
	return string(b), nil
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindOther
	}
}
