package rop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestSuccess_CarriesValue(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, -1, 42, 1 << 20} {
		r := Success(v)
		if !r.IsSuccess() || r.IsFailure() {
			t.Fatalf("expected success for %d, got success=%v failure=%v", v, r.IsSuccess(), r.IsFailure())
		}
		if r.Result() != v {
			t.Fatalf("expected %d, got %d", v, r.Result())
		}
		if r.Err() != nil || r.Message() != "" {
			t.Fatalf("expected no error, got %v / %q", r.Err(), r.Message())
		}
	}
}

func TestFailure_CarriesMessage(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"not found", "", "bad: %d"} {
		r := Failure[int](m)
		if r.IsSuccess() || !r.IsFailure() || r.IsCancel() {
			t.Fatalf("expected plain failure for %q, got success=%v cancel=%v", m, r.IsSuccess(), r.IsCancel())
		}
		if r.Err() == nil {
			t.Fatalf("expected an error for %q", m)
		}
		if r.Message() != m {
			t.Fatalf("expected message %q, got %q", m, r.Message())
		}
		if r.Result() != 0 {
			t.Fatalf("expected zero value, got %d", r.Result())
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	if ok := Success(42); !ok.IsSuccess() || ok.Result() != 42 {
		t.Fatalf("expected success with 42, got success=%v val=%v", ok.IsSuccess(), ok.Result())
	}
	if nf := Failure[int]("not found"); nf.IsSuccess() || nf.Message() != "not found" {
		t.Fatalf("expected failure 'not found', got success=%v msg=%q", nf.IsSuccess(), nf.Message())
	}
}

func TestZeroValue_IsFailure(t *testing.T) {
	t.Parallel()

	var r Result[string]
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("zero result must be a failure")
	}
	if !errors.Is(r.Err(), ErrUninitialized) || r.Message() != ErrUninitialized.Error() {
		t.Fatalf("expected ErrUninitialized, got %v", r.Err())
	}
}

func TestFail_NilErrorStillFails(t *testing.T) {
	t.Parallel()

	if r := Fail[int](nil); r.IsSuccess() || !errors.Is(r.Err(), ErrMissingError) {
		t.Fatalf("expected ErrMissingError failure, got success=%v err=%v", r.IsSuccess(), r.Err())
	}
	if c := Cancel[int](nil); !c.IsCancel() || !errors.Is(c.Err(), ErrMissingError) {
		t.Fatalf("expected ErrMissingError cancel, got cancel=%v err=%v", c.IsCancel(), c.Err())
	}
}

func TestCancel_IsFailure(t *testing.T) {
	t.Parallel()

	r := Cancel[int](context.Canceled)
	if r.IsSuccess() || !r.IsFailure() || !r.IsCancel() {
		t.Fatalf("expected cancel to be a failure, got success=%v failure=%v cancel=%v",
			r.IsSuccess(), r.IsFailure(), r.IsCancel())
	}
	if !errors.Is(r.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", r.Err())
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	if !Of(1, nil).IsSuccess() {
		t.Fatalf("expected success for a nil error")
	}

	boom := errors.New("boom")
	if f := Of(0, boom); !f.IsFailure() || f.IsCancel() || !errors.Is(f.Err(), boom) {
		t.Fatalf("expected plain failure boom, got cancel=%v err=%v", f.IsCancel(), f.Err())
	}
	if c := Of(0, fmt.Errorf("fetch: %w", context.DeadlineExceeded)); !c.IsCancel() {
		t.Fatalf("expected a wrapped deadline to become cancel")
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	if v, err := Success("ok").Unwrap(); v != "ok" || err != nil {
		t.Fatalf("expected (ok, nil), got (%q, %v)", v, err)
	}
	if _, err := Failure[string]("nope").Unwrap(); err == nil || err.Error() != "nope" {
		t.Fatalf("expected error nope, got %v", err)
	}
}

func TestIdAndCreatedAt(t *testing.T) {
	t.Parallel()

	a, b := Success(1), Success(1)
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids")
	}
	if a.CreatedAt().IsZero() || a.CreatedAt().Location().String() != "UTC" {
		t.Fatalf("expected a UTC creation time, got %v", a.CreatedAt())
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Success(map[string]int{"id": 1}))
	if err != nil || string(raw) != `{"data":{"id":1}}` {
		t.Fatalf("unexpected success JSON %s (%v)", raw, err)
	}

	raw, err = json.Marshal(Failure[int]("not found"))
	if err != nil || string(raw) != `{"error":"not found"}` {
		t.Fatalf("unexpected failure JSON %s (%v)", raw, err)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}

	a, b := errors.New("a"), errors.New("b")
	if got := GetErrors(a); !reflect.DeepEqual(got, []error{a}) {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := GetErrors(errors.Join(a, b)); !reflect.DeepEqual(got, []error{a, b}) {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestProblems(t *testing.T) {
	t.Parallel()

	if got := Problems(Success(1)); got != nil {
		t.Fatalf("expected no problems on success, got %v", got)
	}
	if got := Problems(Failure[int]("only")); !reflect.DeepEqual(got, []string{"only"}) {
		t.Fatalf("expected [only], got %v", got)
	}

	joined := Fail[int](errors.Join(errors.New("email"), errors.New("gpa")))
	if got := Problems(joined); !reflect.DeepEqual(got, []string{"email", "gpa"}) {
		t.Fatalf("expected [email gpa], got %v", got)
	}
}
