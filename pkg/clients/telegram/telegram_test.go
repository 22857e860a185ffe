package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"daily_pilot/pkg/clients/httptool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		botToken:   "test-token",
		chatID:     "42",
		msgClient:  httptool.NewHTTPClient(serverURL, clientNameTelegram, 2*time.Second, nil, nil),
		fileClient: httptool.NewHTTPClient(serverURL, clientNameTelegram, 2*time.Second, nil, nil),
	}
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("", "").Enabled())
	assert.False(t, NewClient("token", "").Enabled())
	assert.False(t, NewClient("", "42").Enabled())
	assert.True(t, NewClient("token", "42").Enabled())
}

func TestSendMessageNotConfigured(t *testing.T) {
	err := NewClient("", "").SendMessage(context.Background(), "hi")
	assert.Error(t, err)
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.SendMessage(context.Background(), "*Task plan for 2026-08-25:*")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.JSONEq(t, `{
		"chat_id": "42",
		"text": "*Task plan for 2026-08-25:*",
		"parse_mode": "Markdown"
	}`, string(gotBody))
}

func TestSendDocument(t *testing.T) {
	var gotPath string
	var gotChatID, gotCaption string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotChatID = r.FormValue("chat_id")
		gotCaption = r.FormValue("caption")

		f, _, err := r.FormFile("document")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		gotFile, _ = io.ReadAll(f)

		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "plan_2026-08-25.md")
	require.NoError(t, os.WriteFile(path, []byte("# Plan"), 0o644))

	c := newTestClient(server.URL)
	err := c.SendDocument(context.Background(), path, "Plan for 2026-08-25")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendDocument", gotPath)
	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "Plan for 2026-08-25", gotCaption)
	assert.Equal(t, "# Plan", string(gotFile))
}
