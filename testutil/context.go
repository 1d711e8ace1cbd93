package testutil

import (
	"context"
	"testing"
	"time"
)

const defaultTimeout = 10 * time.Second

// Context bounds a test's calls so a hung server fails the test instead of
// the whole run.
func Context(t testing.TB) context.Context {
	t.Helper()

	return ContextWithTimeout(t, defaultTimeout)
}

func ContextWithTimeout(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)

	return ctx
}
