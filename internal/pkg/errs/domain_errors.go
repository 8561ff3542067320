package errs

import cr "github.com/cockroachdb/errors"

type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeForbidden  Code = "FORBIDDEN"
	CodeUpstream   Code = "UPSTREAM"
	CodeInternal   Code = "INTERNAL"
)

// Category sentinels. Domain errors carry exactly one of them as a mark.
var (
	ErrValidation = cr.New("validation failed")
	ErrNotFound   = cr.New("not found")
	ErrConflict   = cr.New("conflict")
	ErrForbidden  = cr.New("forbidden")
	ErrUpstream   = cr.New("upstream failure")
)

func Validation(msg string) error { return cr.Mark(cr.New(msg), ErrValidation) }
func NotFound(msg string) error   { return cr.Mark(cr.New(msg), ErrNotFound) }
func Conflict(msg string) error   { return cr.Mark(cr.New(msg), ErrConflict) }
func Forbidden(msg string) error  { return cr.Mark(cr.New(msg), ErrForbidden) }
func Upstream(msg string) error   { return cr.Mark(cr.New(msg), ErrUpstream) }

func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case cr.Is(err, ErrValidation):
		return CodeValidation
	case cr.Is(err, ErrNotFound):
		return CodeNotFound
	case cr.Is(err, ErrConflict):
		return CodeConflict
	case cr.Is(err, ErrForbidden):
		return CodeForbidden
	case cr.Is(err, ErrUpstream):
		return CodeUpstream
	default:
		return CodeInternal
	}
}

// Message returns the outermost message of a categorized error, without wrapped causes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if CodeOf(err) == CodeInternal {
		return "Internal server error"
	}
	return cr.UnwrapAll(err).Error()
}
