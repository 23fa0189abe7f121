// Package mcp exposes the calculator as Model Context Protocol tools.
//
// The server registers two tools:
//   - bc_eval evaluates one expression and returns its normalized result.
//   - bc_eval_batch evaluates several independent expressions concurrently.
//
// Calculator failures (syntax errors, timeouts, empty results) are reported
// as tool results with IsError set, not as protocol errors.
package mcp
