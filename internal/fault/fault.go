// Package fault classifies spendr errors into a few semantic kinds so the
// presentation layer can report validation problems, I/O failures and
// internal errors differently.
package fault

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Kind is a sentinel naming a category of failure.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// Kinds reported by spendr.
var (
	// ErrValidation marks user input that could not be parsed or accepted.
	ErrValidation Kind = kind{s: "validation error"}
	// ErrIO marks a failure reading or writing a file.
	ErrIO Kind = kind{s: "i/o error"}
	// ErrInternal marks anything else.
	ErrInternal Kind = kind{s: "internal error"}
)

// Error carries a kind, an optional cause and an optional message.
//
// errors.Is matches both the kind and anything in the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// New returns an error of kind k with a formatted message.
func New(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err. A nil err yields nil.
func Wrap(k Kind, err error, msgFmt string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.kind.Error()
	}
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e.kind != nil && e.kind == target {
		return true
	}
	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the first *Error in err's chain. Other errors
// that match a kind through errors.Is report that kind; anything left is
// ErrInternal. A nil err has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) && fe.kind != nil {
		return fe.kind
	}
	for _, k := range []Kind{ErrValidation, ErrIO} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}
