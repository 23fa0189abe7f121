package output

import (
	"strings"

	"github.com/wagiedev/bc-go/internal/errors"
)

const (
	// LineTerminator ends every line bc writes.
	LineTerminator = "\n"

	// ContinuationMarker is the sequence bc emits when it wraps a long number.
	ContinuationMarker = "\\\n"
)

// Normalize trims the trailing line terminator from raw and removes every
// continuation marker, producing one contiguous result.
//
// The stream name is only used for error reporting. An empty raw buffer is
// rejected with a MalformedOutputError. Input that carries no trailing
// terminator is left as is, so normalizing an already-normalized value
// returns it unchanged.
func Normalize(stream, raw string) (string, error) {
	if raw == "" {
		return "", &errors.MalformedOutputError{Stream: stream, Reason: "empty buffer"}
	}

	trimmed := strings.TrimSuffix(raw, LineTerminator)

	head, tail, found := strings.Cut(trimmed, ContinuationMarker)
	if !found {
		return trimmed, nil
	}

	return head + strings.ReplaceAll(tail, ContinuationMarker, ""), nil
}

// NormalizeBytes is Normalize for captured byte buffers.
func NormalizeBytes(stream string, raw []byte) (string, error) {
	return Normalize(stream, string(raw))
}
