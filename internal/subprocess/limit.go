package subprocess

import "bytes"

// limitWriter writes up to limit bytes to buf, then silently discards the
// rest and records that it did. A zero limit is unbounded.
type limitWriter struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newLimitWriter(limit int) *limitWriter {
	return &limitWriter{limit: limit}
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.limit <= 0 {
		return w.buf.Write(p)
	}

	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		if len(p) > 0 {
			w.truncated = true
		}

		return len(p), nil // discard
	}

	if len(p) > remaining {
		// Report all bytes as consumed to avoid short write errors from io.Copy.
		w.buf.Write(p[:remaining])
		w.truncated = true

		return len(p), nil
	}

	return w.buf.Write(p)
}

// Bytes returns the captured bytes.
func (w *limitWriter) Bytes() []byte {
	return w.buf.Bytes()
}
