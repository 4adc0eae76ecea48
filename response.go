package goresult

import "time"

// Status is the discriminant tag of a Response. StatusOK is reserved for the
// success variant; any other non-empty value tags a failure.
type Status string

// StatusOK tags the success variant. Fail rejects it as a failure status.
const StatusOK Status = "ok"

// Map keys of the fixed fields and the recognized optional metadata.
const (
	KeyStatus    = "status"
	KeyResult    = "result"
	KeyTitle     = "title"
	KeyTraceID   = "trace_id"
	KeyTimestamp = "timestamp"
	KeyDetail    = "detail"
	KeyRetryable = "retryable"
	KeyCause     = "cause"
	KeyFields    = "fields"
)

// FieldErrors maps a field name to an arbitrary validation-error payload.
// Keys must be non-empty field identifiers; values are unconstrained.
type FieldErrors map[string]any

// Response is the closed sum of Success and Failure. Exactly one variant tags
// any given value; a type switch over the two arms is exhaustive.
//
// Values are created through OK/Fail or FromMap/FromError and are immutable by
// convention. Because Go cannot seal struct literals, every converter and
// control-flow helper re-validates its input and treats a malformed Response
// as a caller error.
type Response interface {
	isResponse()
}

// Success is the "ok" variant. Result is the wrapped payload and may be nil.
// Extra holds caller-supplied metadata; the recognized keys (trace_id,
// timestamp) are validated, everything else passes through untouched.
type Success struct {
	Result any
	Extra  map[string]any
}

// Failure is the error variant. Status is any tag other than StatusOK and
// Title is a non-empty human-readable message. Extra holds caller-supplied
// metadata; the recognized keys (trace_id, timestamp, detail, retryable,
// cause, fields) are validated, everything else passes through untouched.
type Failure struct {
	Status Status
	Title  string
	Extra  map[string]any
}

func (Success) isResponse() {}
func (Failure) isResponse() {}

// StatusOf returns the discriminant tag of r: StatusOK for a Success, the
// failure's own status otherwise. It returns "" for a nil Response.
func StatusOf(r Response) Status {
	switch v := r.(type) {
	case Success:
		return StatusOK
	case Failure:
		return v.Status
	default:
		return ""
	}
}

// TraceID returns the trace_id metadata value, if present.
func (s Success) TraceID() (string, bool) { return stringMeta(s.Extra, KeyTraceID) }

// Timestamp returns the timestamp metadata value, if present.
func (s Success) Timestamp() (time.Time, bool) { return timeMeta(s.Extra, KeyTimestamp) }

// TraceID returns the trace_id metadata value, if present.
func (f Failure) TraceID() (string, bool) { return stringMeta(f.Extra, KeyTraceID) }

// Timestamp returns the timestamp metadata value, if present.
func (f Failure) Timestamp() (time.Time, bool) { return timeMeta(f.Extra, KeyTimestamp) }

// Detail returns the detail metadata value, if present.
func (f Failure) Detail() (string, bool) { return stringMeta(f.Extra, KeyDetail) }

// Cause returns the cause metadata value, if present.
func (f Failure) Cause() (string, bool) { return stringMeta(f.Extra, KeyCause) }

// Retryable reports the retryable hint and whether it was set. The core never
// acts on the flag; retry semantics belong to the caller.
func (f Failure) Retryable() (bool, bool) {
	v, ok := f.Extra[KeyRetryable]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Fields returns the field-level validation errors, if present.
func (f Failure) Fields() (FieldErrors, bool) {
	v, ok := f.Extra[KeyFields]
	if !ok {
		return nil, false
	}
	switch m := v.(type) {
	case FieldErrors:
		return m, true
	case map[string]any:
		return FieldErrors(m), true
	default:
		return nil, false
	}
}

func stringMeta(extra map[string]any, key string) (string, bool) {
	v, ok := extra[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func timeMeta(extra map[string]any, key string) (time.Time, bool) {
	v, ok := extra[key]
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

// cloneMap copies one level of m, returning nil for an empty input so that
// constructed values compare equal regardless of how extras were supplied.
func cloneMap(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
