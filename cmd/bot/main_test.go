package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBotEnv(t *testing.T, apiURL, dbPath string) {
	t.Helper()

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_API_URL", apiURL)
	t.Setenv("DATABASE_PATH", dbPath)
	t.Setenv("PORT", "0")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REMINDER_INTERVAL", "1h")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "1s")
}

func TestRun(t *testing.T) {
	t.Run("Should return config errors instead of exiting", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")

		err := run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("Should return database errors instead of exiting", func(t *testing.T) {
		setBotEnv(t, "http://127.0.0.1:1", filepath.Join(t.TempDir(), "missing", "dir", "todo.db"))

		err := run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize database")
	})

	t.Run("Should shut down cleanly when the context ends", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
		}))
		defer api.Close()

		setBotEnv(t, api.URL, filepath.Join(t.TempDir(), "todo.db"))

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		assert.NoError(t, run(ctx))
	})
}
