package engine

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"-3", -3},
		{"+7", 7},
		{"12abc", 12},
		{"5 6", 5},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLeadingInt(tt.in)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"abc", "-", "+x", "x12", "99999999999999999999999"} {
		t.Run("malformed "+in, func(t *testing.T) {
			_, err := parseLeadingInt(in)

			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestInputReadInt(t *testing.T) {
	t.Run("skips blank lines and discards the rest of the line", func(t *testing.T) {
		in := newInput(strings.NewReader("\n  \n 3 territories\nnext\n"))

		n, err := in.readInt()
		require.NoError(t, err)
		require.Equal(t, 3, n)

		line, err := in.readLine()
		require.NoError(t, err)
		require.Equal(t, "next", line, "Rest of the numeric line should be discarded")
	})

	t.Run("end of input", func(t *testing.T) {
		in := newInput(strings.NewReader("\n"))

		_, err := in.readInt()

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestInputReadLine(t *testing.T) {
	in := newInput(strings.NewReader("Brazil\r\nPeru"))

	line, err := in.readLine()
	require.NoError(t, err)
	require.Equal(t, "Brazil", line, "Windows line endings should be stripped")

	line, err = in.readLine()
	require.NoError(t, err)
	require.Equal(t, "Peru", line, "Final line without newline should be returned")

	_, err = in.readLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestTruncateLabel(t *testing.T) {
	t.Run("short labels are kept", func(t *testing.T) {
		require.Equal(t, "Red", truncateLabel("Red", 9))
		require.Equal(t, "", truncateLabel("", 9))
	})

	t.Run("long labels are cut", func(t *testing.T) {
		require.Equal(t, "Vermelho ", truncateLabel("Vermelho e Azul", 9))
	})

	t.Run("decomposed accents count as one character", func(t *testing.T) {
		got := truncateLabel("Territo\u0301rio", 8)

		require.Equal(t, "Territ\u00f3r", got, "Label should be NFC-normalized before cutting")
	})

	t.Run("combining sequences are never split", func(t *testing.T) {
		got := truncateLabel("ab\u0327\u0301c", 2)

		require.Equal(t, "ab\u0327\u0301", got)
	})
}
