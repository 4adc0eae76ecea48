package goresult_test

import (
	"strings"
	"testing"

	goresult "github.com/reoring/goresult"
)

func TestUnwrap_Success(t *testing.T) {
	v, err := goresult.Unwrap(goresult.MustOK("data"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "data" {
		t.Fatalf("expected payload back, got %v", v)
	}
}

func TestUnwrap_Failure(t *testing.T) {
	f := goresult.MustFail("not_found", "Resource not found")
	v, err := goresult.Unwrap(f)
	if v != nil {
		t.Fatalf("expected nil payload, got %v", v)
	}
	if err == nil || err.Error() != "Resource not found" {
		t.Fatalf("title must become the error message, got %v", err)
	}
	fe, ok := err.(*goresult.FailureError)
	if !ok {
		t.Fatalf("expected *FailureError, got %T", err)
	}
	p := fe.Payload()
	if len(p) != 1 || p["status"] != "not_found" {
		t.Fatalf("payload must hold all fields but the title, got %#v", p)
	}
}

func TestUnwrap_PanicsOnInvalid(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for an invalid Response")
		}
		if s, ok := r.(string); !ok || !strings.Contains(s, "Unwrap") {
			t.Fatalf("panic should name the offending operation, got %v", r)
		}
	}()
	goresult.Unwrap(goresult.Failure{Status: "x"}) //nolint:errcheck // title missing on purpose
}

func TestWhenOK(t *testing.T) {
	n, ok := goresult.WhenOK(goresult.MustOK(20), func(result any) int {
		return result.(int) * 2
	})
	if !ok || n != 40 {
		t.Fatalf("expected body to run on the success branch, got %v %v", n, ok)
	}

	n, ok = goresult.WhenOK(goresult.MustFail("x", "t"), func(result any) int {
		t.Fatalf("body must not run on a failure")
		return 0
	})
	if ok || n != 0 {
		t.Fatalf("expected absent sentinel on a failure, got %v %v", n, ok)
	}
}

func TestWhenFail(t *testing.T) {
	s, ok := goresult.WhenFail(goresult.MustFail("timeout", "Request timeout"), func(f goresult.Failure) string {
		return string(f.Status)
	})
	if !ok || s != "timeout" {
		t.Fatalf("expected body to run on the failure branch, got %q %v", s, ok)
	}

	if _, ok := goresult.WhenFail(goresult.MustOK(1), func(f goresult.Failure) string {
		t.Fatalf("body must not run on a success")
		return ""
	}); ok {
		t.Fatalf("expected absent sentinel on a success")
	}
}

func TestEither(t *testing.T) {
	describe := func(r goresult.Response) string {
		return goresult.Either(r,
			func(result any) string { return "ok" },
			func(f goresult.Failure) string { return string(f.Status) },
		)
	}
	if got := describe(goresult.MustOK(1)); got != "ok" {
		t.Fatalf("expected the success arm, got %q", got)
	}
	if got := describe(goresult.MustFail("conflict", "t")); got != "conflict" {
		t.Fatalf("expected the failure arm, got %q", got)
	}
}

func TestMatchStatus(t *testing.T) {
	cases := map[goresult.Status]func(goresult.Response) int{
		goresult.StatusOK: func(goresult.Response) int { return 200 },
		"not_found":       func(goresult.Response) int { return 404 },
	}
	fallback := func(goresult.Response) int { return 500 }

	if got := goresult.MatchStatus(goresult.MustOK(1), cases, fallback); got != 200 {
		t.Fatalf("expected the ok arm, got %d", got)
	}
	if got := goresult.MatchStatus(goresult.MustFail("not_found", "t"), cases, fallback); got != 404 {
		t.Fatalf("expected the not_found arm, got %d", got)
	}
	if got := goresult.MatchStatus(goresult.MustFail("weird", "t"), cases, fallback); got != 500 {
		t.Fatalf("expected the fallback, got %d", got)
	}
	if got := goresult.MatchStatus(goresult.MustFail("weird", "t"), cases, nil); got != 0 {
		t.Fatalf("nil fallback yields the zero value, got %d", got)
	}
}

func TestStatusOf(t *testing.T) {
	if goresult.StatusOf(goresult.MustOK(1)) != goresult.StatusOK {
		t.Fatalf("success tag must be ok")
	}
	if goresult.StatusOf(goresult.MustFail("x", "t")) != "x" {
		t.Fatalf("failure tag must be its own status")
	}
	if goresult.StatusOf(nil) != "" {
		t.Fatalf("nil response has no tag")
	}
}
