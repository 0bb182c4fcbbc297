package bot

import (
	"log"

	"github.com/vkedu/projects-bot/internal/engine"
	"github.com/vkedu/projects-bot/internal/session"
	"github.com/vkedu/projects-bot/internal/vk"
)

// Sender is the outbound half of the transport, satisfied by *vk.Client.
type Sender interface {
	SendMessage(peerID int64, text string, kb *vk.Keyboard) error
}

type Handler struct {
	sender   Sender
	engine   *engine.Engine
	sessions *session.Manager
}

func NewHandler(sender Sender, eng *engine.Engine, sessions *session.Manager) *Handler {
	return &Handler{sender: sender, engine: eng, sessions: sessions}
}

// HandleMessage answers one inbound message or button press.
func (h *Handler) HandleMessage(peerID int64, text, rawPayload string) {
	h.sessions.WithLock(peerID, func() {
		log.Printf("bot: peer %d sent %q payload=%q", peerID, text, rawPayload)

		resp := h.engine.Respond(peerID, text, rawPayload)
		if resp.Text == "" {
			return
		}

		if err := h.sender.SendMessage(peerID, resp.Text, resp.Keyboard); err != nil {
			log.Printf("bot: failed to send reply to %d: %v", peerID, err)
			return
		}
		log.Printf("bot: replied to %d: %q", peerID, firstRunes(resp.Text, 60))
	})
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
