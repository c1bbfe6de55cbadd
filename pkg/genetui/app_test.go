package genetui_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/genebar/pkg/genetui"
)

// TestApp_RunWithLogging replaces the default logger, so it does not run in
// parallel.
func TestApp_RunWithLogging(t *testing.T) {
	tcs := map[string]string{
		"warn":  "warn",
		"info":  "info",
		"debug": "debug",
	}

	for name, level := range tcs {
		t.Run(name, func(t *testing.T) {
			prev := slog.Default()
			t.Cleanup(func() { slog.SetDefault(prev) })

			in, inW := io.Pipe()
			out := &bytes.Buffer{}

			app, err := genetui.NewApp(in, out, level, genetui.NewModel(seeded()))
			require.NoError(t, err)

			go func() {
				time.Sleep(300 * time.Millisecond)
				// Ctrl+C.
				_, _ = inW.Write([]byte{0x03})
			}()

			t.Cleanup(func() { _ = inW.Close() })

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			start := time.Now()
			err = app.Run(ctx)

			require.NoError(t, err)
			assert.Less(t, time.Since(start), 3*time.Second)
		})
	}
}

// TestApp_WriteNeverBlocks logs far more records than the queue holds
// before the program is started.
func TestApp_WriteNeverBlocks(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	app, err := genetui.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, "debug", genetui.NewModel(seeded()))
	require.NoError(t, err)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for range 1000 {
			slog.Debug("record")
		}

		n, err := app.Write([]byte("direct\n"))
		assert.NoError(t, err)
		assert.Equal(t, len("direct\n"), n)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("logging blocked")
	}
}
