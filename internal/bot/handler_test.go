package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkedu/projects-bot/internal/catalog"
	"github.com/vkedu/projects-bot/internal/engine"
	"github.com/vkedu/projects-bot/internal/session"
	"github.com/vkedu/projects-bot/internal/vk"
)

type fakeSender struct {
	err  error
	sent []sentMessage
}

type sentMessage struct {
	peerID int64
	text   string
	kb     *vk.Keyboard
}

func (f *fakeSender) SendMessage(peerID int64, text string, kb *vk.Keyboard) error {
	f.sent = append(f.sent, sentMessage{peerID, text, kb})
	return f.err
}

func newTestHandler(sender Sender) *Handler {
	repo := catalog.NewRepository(catalog.Snapshot{
		Projects: []catalog.Project{{Title: "AI Bootcamp", Direction: "Backend"}},
	}, nil)
	eng := engine.New(repo, nil, 5)
	return NewHandler(sender, eng, session.NewManager())
}

func TestHandleMessage_SendsEngineResponse(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender)

	h.HandleMessage(7, "Привет", "")

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(7), sender.sent[0].peerID)
	assert.Equal(t, engine.WelcomeMessage, sender.sent[0].text)
	require.NotNil(t, sender.sent[0].kb)
	assert.Len(t, sender.sent[0].kb.Buttons, 3)
}

func TestHandleMessage_SendFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("network down")}
	h := newTestHandler(sender)

	assert.NotPanics(t, func() {
		h.HandleMessage(7, "Привет", "")
	})
}
