package httpserver_test

import (
	"strconv"
	"testing"

	"github.com/andyle182810/apicheck/httpserver"
	"github.com/stretchr/testify/require"
)

func mustAtoi(t *testing.T, s string) int {
	t.Helper()

	n, err := strconv.Atoi(s)
	require.NoError(t, err)

	return n
}

func TestParseBodyLimit(t *testing.T) {
	t.Parallel()

	tests := map[string]int64{
		"":     1 << 20,
		"512":  512,
		"2K":   2 << 10,
		"3m":   3 << 20,
		"junk": 1 << 20,
		"-5":   1 << 20,
	}

	for input, want := range tests {
		require.Equal(t, want, httpserver.ParseBodyLimit(input), input)
	}
}
