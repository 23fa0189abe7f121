// Package eval evaluates a single bc statement end to end: it resolves the
// executables, builds the invocation, runs it and classifies the captured
// output into a result or a typed error.
//
// Classification order is fixed:
//  1. spawn failure (returned by the runner before any output exists)
//  2. timeout
//  3. output limit exceeded
//  4. non-empty stderr, reported as ToolError even if stdout is non-empty
//  5. empty stdout, reported as ErrNoResult
//  6. normalized stdout
package eval
