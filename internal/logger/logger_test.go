package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("ranked %d of %d", 3, 10) }, "[DEBUG] ranked 3 of 10\n"},
		{"info", func() { Info("engine %s", "fzf") }, "[INFO] engine fzf\n"},
		{"warn", func() { Warn("engine fallback") }, "[WARN] engine fallback\n"},
		{"section", func() { Section("Ranking") }, "\n=== Ranking ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	Timed("hidden")()

	assert.Zero(t, buf.Len())
}

func TestTimed(t *testing.T) {
	buf := capture(t, true)

	done := Timed("rank %d candidates", 42)
	assert.Zero(t, buf.Len(), "nothing is logged until the func is called")

	done()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[DEBUG] rank 42 candidates took "))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			_ = IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
