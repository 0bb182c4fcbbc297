package vk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(ts *httptest.Server) *Client {
	return &Client{token: "tok", baseURL: ts.URL, http: &http.Client{Timeout: time.Second}}
}

func TestSendMessage(t *testing.T) {
	var form map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"response":1}`))
	}))
	defer ts.Close()

	kb := &Keyboard{Buttons: [][]Button{{TextButton("Назад", `{"cmd":"go_back","depth":0}`, ColorNegative)}}}
	err := testClient(ts).SendMessage(7, "привет", kb)

	require.NoError(t, err)
	assert.Equal(t, "7", form["peer_id"][0])
	assert.Equal(t, "привет", form["message"][0])
	assert.Equal(t, "tok", form["access_token"][0])
	assert.Equal(t, apiVersion, form["v"][0])
	assert.NotEmpty(t, form["random_id"][0])

	var sent Keyboard
	require.NoError(t, json.Unmarshal([]byte(form["keyboard"][0]), &sent))
	assert.Equal(t, *kb, sent)
}

func TestSendMessage_NilKeyboardOmitted(t *testing.T) {
	var form map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"response":1}`))
	}))
	defer ts.Close()

	require.NoError(t, testClient(ts).SendMessage(7, "текст", nil))
	assert.NotContains(t, form, "keyboard")
}

func TestSendMessage_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"error_code":901,"error_msg":"Can't send messages for users without permission"}}`))
	}))
	defer ts.Close()

	err := testClient(ts).SendMessage(7, "текст", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "901")
}

func TestSendMessage_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	err := testClient(ts).SendMessage(7, "текст", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
