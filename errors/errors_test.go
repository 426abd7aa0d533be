package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidDigit,
				Code:   "CSGO-AAAAA-AAAAA-AAAAA-AAAAA-AAAA0",
				Detail: "character '0' at position 24",
			},
			contains: []string{"[decode]", "invalid_digit", "CSGO-AAAAA", "position 24"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindInvalidInput,
			},
			contains: []string{"[encode]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCopy,
				Kind:   KindIO,
				Detail: "copying config tree",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[copy]", "io", "copying config tree", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseApply,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindMalformedCode,
		Code:  "FOO-AAAAA",
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindMalformedCode}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindMalformedCode}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidDigit}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindMalformedCode}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTruncatedPayload).
		Code("CSGO-AAAAA-AAAAA-AAAAA-AAAAA-AAAAA").
		Value(12).
		Cause(cause).
		Detail("payload resolved to %d bytes", 12).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTruncatedPayload {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTruncatedPayload)
	}
	if err.Code != "CSGO-AAAAA-AAAAA-AAAAA-AAAAA-AAAAA" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Value != 12 {
		t.Errorf("Value = %v, want 12", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Cause not preserved")
	}
	if err.Detail != "payload resolved to 12 bytes" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := InvalidDigit("CSGO-x", 'l', 3); err.Kind != KindInvalidDigit || err.Value != 'l' {
		t.Errorf("InvalidDigit: %+v", err)
	}
	if err := TruncatedPayload("CSGO-x", 7); err.Kind != KindTruncatedPayload || err.Value != 7 {
		t.Errorf("TruncatedPayload: %+v", err)
	}
	if err := MalformedCode("FOO", "wrong prefix %q", "FOO"); err.Detail != `wrong prefix "FOO"` {
		t.Errorf("MalformedCode detail = %q", err.Detail)
	}
	if err := NotFound(PhaseLocate, "steam install"); err.Phase != PhaseLocate || err.Kind != KindNotFound {
		t.Errorf("NotFound: %+v", err)
	}
}
