package goresult

// OK builds a validated Success wrapping result. Optional extra maps are
// merged in order on top of {status: ok, result: result}; the merged value
// must still satisfy the success schema, so an extra that overrides the
// status tag, or carries a malformed recognized key, is rejected with a
// *ValidationError.
func OK(result any, extra ...map[string]any) (Success, error) {
	m := map[string]any{KeyStatus: string(StatusOK), KeyResult: result}
	mergeExtras(m, extra)
	if iss := checkSuccess(m); len(iss) > 0 {
		return Success{}, &ValidationError{Value: m, Issues: iss}
	}
	return successFromMap(m), nil
}

// Fail builds a validated Failure. The status tag must not be StatusOK and
// title must be non-empty; optional extra maps are merged in order on top of
// {status: status, title: title} and the merged value must satisfy the
// failure schema.
func Fail(status Status, title string, extra ...map[string]any) (Failure, error) {
	m := map[string]any{KeyStatus: string(status), KeyTitle: title}
	mergeExtras(m, extra)
	if iss := checkFailure(m); len(iss) > 0 {
		return Failure{}, &ValidationError{Value: m, Issues: iss}
	}
	return failureFromMap(m), nil
}

// MustOK is OK for static values known to be valid; it panics on error.
func MustOK(result any, extra ...map[string]any) Success {
	s, err := OK(result, extra...)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFail is Fail for static values known to be valid; it panics on error.
func MustFail(status Status, title string, extra ...map[string]any) Failure {
	f, err := Fail(status, title, extra...)
	if err != nil {
		panic(err)
	}
	return f
}

func mergeExtras(dst map[string]any, extras []map[string]any) {
	for _, e := range extras {
		for k, v := range e {
			dst[k] = v
		}
	}
}
