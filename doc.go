package goresult

// Package goresult provides:
//
// - A validated Response sum type (Success/Failure) for operation outcomes
// - Structural predicates over typed values and plain maps (IsSuccess/IsFailure/Validate)
// - Constructors that enforce the response shape at creation time (OK/Fail)
// - Conversion to and from plain maps (ToMap/FromMap) and exception-style errors (ToError/FromError)
// - A stable error model via Issues (JSON Pointer path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put wire-format interop under codec/.
// - Response values are immutable by convention: constructors copy extra maps in,
//   converters copy them out, and nothing in this package mutates a constructed value.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ok, err := goresult.OK(payload, map[string]any{"trace_id": "req-42"})
//	fail, err := goresult.Fail("not_found", "Resource not found")
//
//	v, err := goresult.Unwrap(r)
//	m, err := goresult.ToMap(r)
//	r2, err := goresult.FromMap(m)
