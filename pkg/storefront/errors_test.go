package storefront

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestError_MessageStaysFixed(t *testing.T) {
	cause := errors.New("connection reset")
	cases := []*RequestError{
		newRequestError(OpCreateProduct, 0, nil),
		newRequestError(OpCreateProduct, 503, nil),
		newRequestError(OpCreateProduct, 0, cause),
	}
	for _, re := range cases {
		if re.Message != "could not create product" {
			t.Fatalf("unexpected message %q", re.Message)
		}
		if !errors.Is(re, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed match for %v", re)
		}
	}

	if got := cases[0].Error(); got != "could not create product" {
		t.Fatalf("unexpected bare error %q", got)
	}
	if got := cases[1].Error(); got != "could not create product: status 503" {
		t.Fatalf("unexpected status error %q", got)
	}
	if !errors.Is(cases[2], cause) {
		t.Fatalf("expected cause to unwrap")
	}

	var re *RequestError
	if !errors.As(fmt.Errorf("wrapped: %w", cases[1]), &re) || re.Message != "could not create product" {
		t.Fatalf("expected Message through wrapping, got %+v", re)
	}
}
