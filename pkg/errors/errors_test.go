package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParse, "document is malformed")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, err.Code)
	}
	if err.Message != "document is malformed" {
		t.Errorf("expected message 'document is malformed', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, "operation failed", cause)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("invalid quantity")
	ctx := map[string]interface{}{
		"recipe":     "Beef Stew",
		"ingredient": "beef chuck",
	}

	err := WrapWithContext(ErrCodeConversion, "unit conversion failed", cause, ctx)

	if err.Code != ErrCodeConversion {
		t.Errorf("expected code %s, got %s", ErrCodeConversion, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["recipe"] != "Beef Stew" {
		t.Errorf("expected recipe to be Beef Stew")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnsupportedFormat, "no parser for extension"),
			expected: "[UNSUPPORTED_FORMAT] no parser for extension",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeParse, "failed", errors.New("root cause")),
			expected: "[PARSE_FAILURE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "structured error",
			err:  New(ErrCodeEmptyInput, "no recipes found"),
			want: ErrCodeEmptyInput,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("outer: %w", New(ErrCodeParse, "bad document")),
			want: ErrCodeParse,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := Wrap(ErrCodeValidation, "bad recipe", errors.New("empty name"))

	if !IsCode(err, ErrCodeValidation) {
		t.Error("expected IsCode to match the error's own code")
	}
	if IsCode(err, ErrCodeParse) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(nil, ErrCodeValidation) {
		t.Error("expected IsCode to reject nil")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !IsCode(wrapped, ErrCodeValidation) {
		t.Error("expected IsCode to match through wrapping")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeUnsupportedFormat,
		ErrCodeParse,
		ErrCodeConversion,
		ErrCodeValidation,
		ErrCodeIO,
		ErrCodeEmptyInput,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
