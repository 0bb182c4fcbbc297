package vk

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMessage struct {
	peerID  int64
	text    string
	payload string
}

func postEvent(h *WebhookHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCallback(rec, req)
	return rec
}

func TestHandleCallback_Confirmation(t *testing.T) {
	h := NewWebhookHandler("confirm123", "", 42, nil)

	rec := postEvent(h, `{"type":"confirmation","group_id":42}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirm123", rec.Body.String())
}

func TestHandleCallback_MessageNew(t *testing.T) {
	var got []recordedMessage
	h := NewWebhookHandler("c", "", 42, func(peerID int64, text, payload string) {
		got = append(got, recordedMessage{peerID, text, payload})
	})

	body := `{"type":"message_new","group_id":42,"object":{"message":{"from_id":7,"peer_id":7,"text":"привет","payload":"{\"cmd\":\"go_home\",\"depth\":0}"}}}`
	rec := postEvent(h, body)

	assert.Equal(t, "ok", rec.Body.String())
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].peerID)
	assert.Equal(t, "привет", got[0].text)
	assert.Equal(t, `{"cmd":"go_home","depth":0}`, got[0].payload)
}

func TestHandleCallback_EmptyMessageIgnored(t *testing.T) {
	called := false
	h := NewWebhookHandler("c", "", 42, func(int64, string, string) { called = true })

	rec := postEvent(h, `{"type":"message_new","group_id":42,"object":{"message":{"from_id":7,"peer_id":7}}}`)

	assert.Equal(t, "ok", rec.Body.String())
	assert.False(t, called)
}

func TestHandleCallback_GroupChatIgnored(t *testing.T) {
	called := false
	h := NewWebhookHandler("c", "", 42, func(int64, string, string) { called = true })

	body := `{"type":"message_new","group_id":42,"object":{"message":{"from_id":7,"peer_id":2000000001,"text":"привет"}}}`
	rec := postEvent(h, body)

	assert.Equal(t, "ok", rec.Body.String())
	assert.False(t, called)
}

func TestHandleCallback_SecretMismatch(t *testing.T) {
	called := false
	h := NewWebhookHandler("c", "s3cret", 42, func(int64, string, string) { called = true })

	rec := postEvent(h, `{"type":"message_new","group_id":42,"secret":"wrong","object":{"message":{"from_id":7,"peer_id":7,"text":"x"}}}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestHandleCallback_ForeignGroupAcknowledged(t *testing.T) {
	called := false
	h := NewWebhookHandler("c", "", 42, func(int64, string, string) { called = true })

	rec := postEvent(h, `{"type":"message_new","group_id":99,"object":{"message":{"from_id":7,"peer_id":7,"text":"x"}}}`)

	assert.Equal(t, "ok", rec.Body.String())
	assert.False(t, called)
}

func TestHandleCallback_UnknownEventAcknowledged(t *testing.T) {
	h := NewWebhookHandler("c", "", 42, nil)

	rec := postEvent(h, `{"type":"wall_post_new","group_id":42,"object":{}}`)

	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleCallback_MalformedBodyAcknowledged(t *testing.T) {
	h := NewWebhookHandler("c", "", 42, nil)

	rec := postEvent(h, `{broken`)

	assert.Equal(t, "ok", rec.Body.String())
}
