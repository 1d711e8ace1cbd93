package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// LogBuffer collects JSON log lines written from any goroutine.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// Entries decodes every line written so far.
func (b *LogBuffer) Entries(t testing.TB) []map[string]any {
	t.Helper()

	var entries []map[string]any

	scanner := bufio.NewScanner(bytes.NewReader([]byte(b.String())))
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", scanner.Text(), err)
		}

		entries = append(entries, entry)
	}

	return entries
}

// Logger returns a zerolog.Logger writing JSON into a fresh LogBuffer.
func Logger() (zerolog.Logger, *LogBuffer) {
	buf := &LogBuffer{} //nolint:exhaustruct

	return zerolog.New(buf), buf
}
