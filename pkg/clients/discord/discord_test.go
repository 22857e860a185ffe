package discord

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("").Enabled())
	assert.True(t, NewClient("https://discord.com/api/webhooks/1/x").Enabled())
}

func TestSendMessageNotConfigured(t *testing.T) {
	err := NewClient("").SendMessage(context.Background(), "hi")
	assert.Error(t, err)
}

func TestSendMessage(t *testing.T) {
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	// webhook URL 就是完整地址
	c := NewClient(server.URL)
	err := c.SendMessage(context.Background(), "plan is ready")

	require.NoError(t, err)
	assert.JSONEq(t, `{"content": "plan is ready"}`, string(gotBody))
}

func TestSendFile(t *testing.T) {
	var gotContent string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotContent = r.FormValue("content")

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		gotFile, _ = io.ReadAll(f)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "plan.md")
	require.NoError(t, os.WriteFile(path, []byte("# Plan"), 0o644))

	c := NewClient(server.URL)
	err := c.SendFile(context.Background(), path, "Plan for 2026-08-25")

	require.NoError(t, err)
	assert.Equal(t, "Plan for 2026-08-25", gotContent)
	assert.Equal(t, "# Plan", string(gotFile))
}
