package goresult

import "errors"

// ToMap projects r onto a flat map: the status tag, the variant's own fields
// and every extension key. The projection is information-preserving; FromMap
// reverses it exactly. r is re-validated first and a *ValidationError is
// returned when it does not conform.
func ToMap(r Response) (map[string]any, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	switch v := r.(type) {
	case Success:
		m := make(map[string]any, len(v.Extra)+2)
		for k, val := range v.Extra {
			m[k] = val
		}
		m[KeyStatus] = string(StatusOK)
		m[KeyResult] = v.Result
		return m, nil
	case Failure:
		m := make(map[string]any, len(v.Extra)+2)
		for k, val := range v.Extra {
			m[k] = val
		}
		m[KeyStatus] = string(v.Status)
		m[KeyTitle] = v.Title
		return m, nil
	default:
		// Validate only accepts the two variants.
		panic("goresult: unreachable")
	}
}

// FromMap promotes untyped structural data to a typed Response. The map must
// carry a status tag (a *PreconditionError otherwise); the tag selects the
// variant and every field constraint is then re-checked, so untrusted input
// is never promoted unvalidated.
func FromMap(m map[string]any) (Response, error) {
	if m == nil {
		return nil, precondition("FromMap", "map must not be nil")
	}
	if _, ok := m[KeyStatus]; !ok {
		return nil, precondition("FromMap", "map has no %q key", KeyStatus)
	}
	st, ok := tagOf(m)
	if !ok {
		return nil, &ValidationError{Value: m, Issues: Issues{
			{Path: "/" + KeyStatus, Code: CodeInvalidType, Message: "status must be a string", Params: typeParam(m[KeyStatus])},
		}}
	}
	if st == StatusOK {
		if iss := checkSuccess(m); len(iss) > 0 {
			return nil, &ValidationError{Value: m, Issues: iss}
		}
		return successFromMap(m), nil
	}
	if iss := checkFailure(m); len(iss) > 0 {
		return nil, &ValidationError{Value: m, Issues: iss}
	}
	return failureFromMap(m), nil
}

// successFromMap assumes m already passed checkSuccess.
func successFromMap(m map[string]any) Success {
	extra := make(map[string]any, len(m))
	for k, v := range m {
		if k == KeyStatus || k == KeyResult {
			continue
		}
		extra[k] = v
	}
	if len(extra) == 0 {
		extra = nil
	}
	return Success{Result: m[KeyResult], Extra: extra}
}

// failureFromMap assumes m already passed checkFailure.
func failureFromMap(m map[string]any) Failure {
	st, _ := tagOf(m)
	title, _ := m[KeyTitle].(string)
	extra := make(map[string]any, len(m))
	for k, v := range m {
		if k == KeyStatus || k == KeyTitle {
			continue
		}
		extra[k] = v
	}
	if len(extra) == 0 {
		extra = nil
	}
	return Failure{Status: st, Title: title, Extra: extra}
}

// FailureError is the exception-like bridge between Failure values and
// error-based control flow: a human-readable message plus a structured
// payload. Unwrap returns one for every Failure, and FromError accepts any
// error whose chain exposes a Payload.
type FailureError struct {
	msg     string
	payload map[string]any
}

// NewFailureError builds a FailureError from a message and a payload copy.
func NewFailureError(msg string, payload map[string]any) *FailureError {
	return &FailureError{msg: msg, payload: cloneMap(payload)}
}

func (e *FailureError) Error() string { return e.msg }

// Payload returns a copy of the structured payload.
func (e *FailureError) Payload() map[string]any { return cloneMap(e.payload) }

// ToError converts a Failure into its exception form: the title becomes the
// message and every remaining field (status plus extras) becomes the payload.
// The title is relocated into the message channel, not duplicated.
func ToError(f Failure) (*FailureError, error) {
	if iss := checkFailure(f); len(iss) > 0 {
		return nil, &ValidationError{Value: f, Issues: iss}
	}
	payload := make(map[string]any, len(f.Extra)+1)
	for k, v := range f.Extra {
		payload[k] = v
	}
	payload[KeyStatus] = string(f.Status)
	return &FailureError{msg: f.Title, payload: payload}, nil
}

// FromError converts an exception-like error back into a Failure. The error
// chain must expose a structured payload carrying a status key (a
// *PreconditionError otherwise). The title is always taken from the error's
// message; a title key inside the payload is discarded, the message channel
// wins. All remaining payload keys become extension fields, re-validated
// against the failure schema.
func FromError(err error) (Failure, error) {
	if err == nil {
		return Failure{}, precondition("FromError", "error must not be nil")
	}
	var pe interface {
		error
		Payload() map[string]any
	}
	if !errors.As(err, &pe) {
		return Failure{}, precondition("FromError", "error does not carry a structured payload")
	}
	payload := pe.Payload()
	if _, ok := payload[KeyStatus]; !ok {
		return Failure{}, precondition("FromError", "payload has no %q key", KeyStatus)
	}
	m := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		if k == KeyTitle {
			continue
		}
		m[k] = v
	}
	m[KeyTitle] = pe.Error()
	if iss := checkFailure(m); len(iss) > 0 {
		return Failure{}, &ValidationError{Value: m, Issues: iss}
	}
	return failureFromMap(m), nil
}
