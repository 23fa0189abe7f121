// Package subprocess runs the calculator as a child process.
//
// Every call spawns a fresh process (or a supervisor wrapping one), writes the
// statement to its stdin, closes stdin, and buffers stdout and stderr in full
// until the process exits. There is no process reuse and no retry.
package subprocess
