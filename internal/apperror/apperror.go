package apperror

import "errors"

// Kind describes a stable error category that callers can branch on.
type Kind string

const (
	KindInvalidPricingType   Kind = "invalid_pricing_type"
	KindInvalidPaymentMethod Kind = "invalid_payment_method"
)

// Error is a typed error with a stable Kind and a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func InvalidPricingType(msg string, err error) error {
	return New(KindInvalidPricingType, msg, err)
}

func InvalidPaymentMethod(msg string, err error) error {
	return New(KindInvalidPaymentMethod, msg, err)
}

func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
