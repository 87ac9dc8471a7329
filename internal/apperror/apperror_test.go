package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ErrorMessagePriority(t *testing.T) {
	base := errors.New("base")
	err := &Error{Kind: KindInvalidPricingType, Msg: "msg", Err: base}
	if err.Error() != "msg" {
		t.Fatalf("expected msg, got %q", err.Error())
	}
}

func TestError_ErrorFallsBackToWrapped(t *testing.T) {
	base := errors.New("base")
	err := &Error{Kind: KindInvalidPricingType, Err: base}
	if err.Error() != "base" {
		t.Fatalf("expected base, got %q", err.Error())
	}
}

func TestError_ErrorFallsBackToKind(t *testing.T) {
	err := &Error{Kind: KindInvalidPaymentMethod}
	if err.Error() != string(KindInvalidPaymentMethod) {
		t.Fatalf("expected kind string, got %q", err.Error())
	}
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	if err.Error() != "" || err.Unwrap() != nil {
		t.Fatalf("expected zero values for nil error")
	}
}

func TestError_Unwrap(t *testing.T) {
	base := errors.New("base")
	err := InvalidPricingType("bad key", base)
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to be reachable via errors.Is")
	}
}

func TestIs_MatchesWrappedKind(t *testing.T) {
	err := InvalidPaymentMethod("x", nil)
	wrapped := fmt.Errorf("wrap: %w", err)
	if !Is(wrapped, KindInvalidPaymentMethod) {
		t.Fatalf("expected Is to match wrapped kind")
	}
	if Is(wrapped, KindInvalidPricingType) {
		t.Fatalf("expected Is to be false for different kind")
	}
	if Is(errors.New("plain"), KindInvalidPricingType) {
		t.Fatalf("expected Is to be false for untyped error")
	}
}
