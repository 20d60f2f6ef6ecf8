package config

// Kind identifies why a SearchRequest could not be built.
type Kind int

const (
	KindMissingQuery Kind = iota + 1
	KindMissingFilename
	KindInsufficientArguments
)

func (k Kind) String() string {
	switch k {
	case KindMissingQuery:
		return "missing query"
	case KindMissingFilename:
		return "missing filename"
	case KindInsufficientArguments:
		return "insufficient arguments"
	default:
		return "unknown"
	}
}

// Error is returned by Build. Callers branch on Kind or compare against the
// sentinels below with errors.Is.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingQuery:
		return "did not get a query string"
	case KindMissingFilename:
		return "did not get a filename string"
	case KindInsufficientArguments:
		return "not enough arguments"
	default:
		return "invalid arguments"
	}
}

// Is reports whether target is a *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingQuery          = &Error{Kind: KindMissingQuery}
	ErrMissingFilename       = &Error{Kind: KindMissingFilename}
	ErrInsufficientArguments = &Error{Kind: KindInsufficientArguments}
)
