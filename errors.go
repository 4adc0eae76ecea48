package goresult

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeTooShort             = "too_short"
	CodeReservedStatus       = "reserved_status"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeParseError           = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /fields/email).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got":"string"})
	// for observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /title
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
// It also unwraps the Issues carried by a *ValidationError.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ValidationError reports that a candidate value, once merged and assembled,
// does not conform to the response shape. It carries the offending value and
// the issues describing which fields failed which constraint.
type ValidationError struct {
	Value  any
	Issues Issues
}

func (e *ValidationError) Error() string {
	return "goresult: invalid response: " + e.Issues.Error()
}

// Unwrap exposes the underlying Issues so errors.As can reach them.
func (e *ValidationError) Unwrap() error { return e.Issues }

// PreconditionError reports that an argument was of the wrong shape category
// entirely (a caller-contract violation), as opposed to a data value that
// merely fails a field constraint.
type PreconditionError struct {
	Op      string // The operation that rejected the argument, e.g. "FromMap".
	Message string
}

func (e *PreconditionError) Error() string {
	return "goresult: " + e.Op + ": " + e.Message
}

func precondition(op, format string, args ...any) *PreconditionError {
	return &PreconditionError{Op: op, Message: fmt.Sprintf(format, args...)}
}
