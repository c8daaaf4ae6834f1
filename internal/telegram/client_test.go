package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123:secret-token"

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(testToken, append([]Option{WithBaseURL(server.URL + "/")}, opts...)...)
}

func TestClient_GetUpdates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/getUpdates", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":[
			{"update_id":1,"my_chat_member":{}},
			{"update_id":2,"edited_message":{"message_id":7,"date":0,"chat":{"id":-100200,"type":"group"}}},
			{"update_id":3,"message":{"message_id":8,"date":0,"chat":{"id":4242,"type":"private"},"text":"hi"}}
		]}`))
	})

	updates, err := client.GetUpdates(context.Background())
	require.NoError(t, err)
	require.Len(t, updates, 3)

	assert.Nil(t, updates[0].Message)
	require.NotNil(t, updates[1].EditedMessage)
	assert.Equal(t, int64(-100200), updates[1].EditedMessage.Chat.ID)
	require.NotNil(t, updates[2].Message)
	assert.Equal(t, int64(4242), updates[2].Message.Chat.ID)
	assert.Equal(t, "hi", updates[2].Message.Text)
}

func TestClient_GetUpdates_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	})

	updates, err := client.GetUpdates(context.Background())
	require.Error(t, err)
	assert.Nil(t, updates)

	var apiErr *tgbotapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.Contains(t, err.Error(), "getUpdates")
}

func TestClient_GetUpdates_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	updates, err := client.GetUpdates(context.Background())
	require.Error(t, err)
	assert.Nil(t, updates)
	assert.NotContains(t, err.Error(), testToken)
}

func TestClient_SendMessage(t *testing.T) {
	var chatID, text string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot"+testToken+"/sendMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		chatID = r.PostForm.Get("chat_id")
		text = r.PostForm.Get("text")

		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":99,"date":0,"chat":{"id":4242}}}`))
	})

	err := client.SendMessage(context.Background(), 4242, "Task due in 5 minutes: write report")
	require.NoError(t, err)
	assert.Equal(t, "4242", chatID)
	assert.Equal(t, "Task due in 5 minutes: write report", text)
}

func TestClient_SendMessage_NotOK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	err := client.SendMessage(context.Background(), 1, "hello")

	var apiErr *tgbotapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	err := client.SendMessage(context.Background(), 1, "hello")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testToken, "errors must not leak the bot token")
}

func TestClient_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUpdates(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), testToken)
}
