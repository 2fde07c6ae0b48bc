package slogo

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors reported for a program submission.
type ErrorKind int8

// Kinds of errors an interpreter may report.
const (
	KindNone ErrorKind = iota
	KindUnknownCommand
	KindConfiguration
	KindRedefinitionConflict
	KindMalformedProgram
	KindUndefinedVariable
)

// Sentinel errors, one per error kind. Every *Error matches the sentinel of
// its kind with errors.Is.
var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrConfiguration        = errors.New("configuration error")
	ErrRedefinitionConflict = errors.New("redefinition conflict")
	ErrMalformedProgram     = errors.New("malformed program")
	ErrUndefinedVariable    = errors.New("undefined variable")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnknownCommand:
		return ErrUnknownCommand
	case KindConfiguration:
		return ErrConfiguration
	case KindRedefinitionConflict:
		return ErrRedefinitionConflict
	case KindMalformedProgram:
		return ErrMalformedProgram
	case KindUndefinedVariable:
		return ErrUndefinedVariable
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "<no error>"
}

// Error is the single structured error reported for a failed submission.
// Token is the offending token, if there is one.
type Error struct {
	Kind  ErrorKind
	Token string
	Msg   string
}

func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at %q: %s", e.Kind, e.Token, e.Msg)
}

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Errorf creates a new *Error of a given kind for an offending token.
func Errorf(kind ErrorKind, token string, format string, args ...interface{}) *Error {
	err := &Error{
		Kind:  kind,
		Token: token,
		Msg:   fmt.Sprintf(format, args...),
	}
	tracer().P("kind", kind.String()).Debugf(err.Error())
	return err
}

// KindOf returns the error kind of err, or KindNone if err is not
// (wrapping) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
