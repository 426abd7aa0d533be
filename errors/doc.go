// Package errors provides structured error types for the crosshair-kit
// library.
//
// Errors are categorized by Phase (which operation failed) and Kind (error
// category). The Error type includes rich context: the offending share code,
// the value that triggered the failure, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformedCode).
//		Code(input).
//		Detail("expected 6 dash-separated segments, got %d", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit(input, 'l', 7)
//	err := errors.TruncatedPayload(input, 12)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
