package goresult

import "fmt"

// Unwrap extracts the payload of a Success, or converts a Failure into its
// exception form: the title becomes the error message and all remaining
// fields the structured payload. It panics when r is not a valid Response;
// that is a programmer error, not a recoverable outcome.
func Unwrap(r Response) (any, error) {
	mustValid("Unwrap", r)
	switch v := r.(type) {
	case Success:
		return v.Result, nil
	case Failure:
		e, err := ToError(v)
		if err != nil {
			panic(err)
		}
		return nil, e
	}
	panic("goresult: unreachable")
}

// WhenOK evaluates fn with the success payload and returns its value. On a
// Failure, fn is left unevaluated and the second return is false.
func WhenOK[T any](r Response, fn func(result any) T) (T, bool) {
	mustValid("WhenOK", r)
	if s, ok := r.(Success); ok {
		return fn(s.Result), true
	}
	var zero T
	return zero, false
}

// WhenFail is the mirror of WhenOK: fn runs only on the Failure branch.
func WhenFail[T any](r Response, fn func(f Failure) T) (T, bool) {
	mustValid("WhenFail", r)
	if f, ok := r.(Failure); ok {
		return fn(f), true
	}
	var zero T
	return zero, false
}

// Either branches on the variant tag, evaluating exactly one of the bodies.
func Either[T any](r Response, onOK func(result any) T, onFail func(f Failure) T) T {
	mustValid("Either", r)
	switch v := r.(type) {
	case Success:
		return onOK(v.Result)
	case Failure:
		return onFail(v)
	}
	panic("goresult: unreachable")
}

// MatchStatus dispatches on the discriminant tag. When no case matches, the
// fallback runs; a nil fallback yields the zero value.
func MatchStatus[T any](r Response, cases map[Status]func(r Response) T, fallback func(r Response) T) T {
	mustValid("MatchStatus", r)
	if fn, ok := cases[StatusOf(r)]; ok && fn != nil {
		return fn(r)
	}
	if fallback != nil {
		return fallback(r)
	}
	var zero T
	return zero
}

func mustValid(op string, r Response) {
	if err := Validate(r); err != nil {
		panic(fmt.Sprintf("goresult: %s called with invalid Response: %v", op, err))
	}
}
