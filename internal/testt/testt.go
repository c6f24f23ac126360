// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns in this module's tests: seeded random
// sources, loggers that only speak up when a test fails, and
// scratch files.
package testt

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Logf with the given arguments *if* the test has
// failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// Rand returns a random source with the given seed, and arranges for
// the seed to be logged if the test fails, so that a failing
// sequence can be replayed.
func Rand(t testing.TB, seed int64) *rand.Rand {
	t.Cleanup(func() { Logf(t, "random seed %d", seed) })
	return rand.New(rand.NewSource(seed))
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Logger returns a debug level logger, and a hook that records its
// entries. The formatted output is held in memory and passed to
// t.Log only if the test fails.
func Logger(t testing.TB) (*logrus.Logger, *test.Hook) {
	out := &lockedBuffer{}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	t.Cleanup(func() {
		if s := out.String(); s != "" {
			Log(t, "log output:\n", s)
		}
	})

	return logger, test.NewLocal(logger)
}

// WriteFile writes the content to a file with the given name in a
// directory that is removed when the test ends, and returns the
// file's path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
