package output

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/bc-go/internal/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "single line", raw: "8\n", want: "8"},
		{name: "fraction", raw: "2.50000000000000000000\n", want: "2.50000000000000000000"},
		{name: "only terminator", raw: "\n", want: ""},
		{name: "one marker", raw: "1234\\\n5678\n", want: "12345678"},
		{name: "many markers", raw: "12\\\n34\\\n56\\\n78\n", want: "12345678"},
		{name: "multiple statements keep inner newlines", raw: "1\n2\n", want: "1\n2"},
		{name: "stderr message", raw: "(standard_in) 1: syntax error\n", want: "(standard_in) 1: syntax error"},
		{name: "multibyte rune before terminator", raw: "π\n", want: "π"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize("stdout", tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_EmptyBuffer(t *testing.T) {
	_, err := Normalize("stderr", "")
	require.Error(t, err)

	malformed, ok := stderrors.AsType[*errors.MalformedOutputError](err)
	require.True(t, ok)
	require.Equal(t, "stderr", malformed.Stream)
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"42\n", "1\\\n2\\\n3\n", "-0.5\n", "abc"} {
		once, err := Normalize("stdout", raw)
		require.NoError(t, err)

		if once == "" {
			continue
		}

		twice, err := Normalize("stdout", once)
		require.NoError(t, err)
		require.Equal(t, once, twice, "raw=%q", raw)
	}
}

func TestNormalize_WrappedNumberRoundTrip(t *testing.T) {
	digits := strings.Repeat("0123456789", 21)

	// Wrap the way bc does with the default line length: 69 digits and a
	// backslash per physical line.
	var raw strings.Builder

	for rest := digits; rest != ""; {
		n := min(69, len(rest))
		raw.WriteString(rest[:n])
		rest = rest[n:]

		if rest != "" {
			raw.WriteString(ContinuationMarker)
		}
	}

	raw.WriteString(LineTerminator)

	require.Equal(t, 3, strings.Count(raw.String(), ContinuationMarker))

	got, err := Normalize("stdout", raw.String())
	require.NoError(t, err)
	require.Equal(t, digits, got)
	require.NotContains(t, got, "\\")
}

func TestNormalizeBytes(t *testing.T) {
	got, err := NormalizeBytes("stdout", []byte("10\\\n24\n"))
	require.NoError(t, err)
	require.Equal(t, "1024", got)
}
