// Package errors defines error types for the bc wrapper.
//
// This package provides structured error types for each way a calculator
// invocation can fail: the process could not be spawned, it ran past its
// deadline, the calculator reported an error on stderr, or it produced no
// output at all. All error types support error unwrapping and can be checked
// using errors.Is, errors.As, and errors.AsType.
package errors
