// Package errors provides structured error types for the hostjson library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: the offending
// host type name, a location path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindNonStringKey).
//		TypeName("int").
//		Detail("map key must be a string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotSerializable("socket")
//	err := errors.RecursionLimit()
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on (Phase, Kind).
package errors
