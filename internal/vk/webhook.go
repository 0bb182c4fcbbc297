package vk

import (
	"encoding/json"
	"log"
	"net/http"
)

// MessageHandler is called for each incoming user message with
// (peerID, text, rawButtonPayload). rawButtonPayload is empty when the
// message was typed rather than sent by a button press.
type MessageHandler func(peerID int64, text, rawPayload string)

// WebhookHandler implements the VK Callback API contract: the confirmation
// handshake, the shared-secret check, and "ok" acknowledgements.
type WebhookHandler struct {
	confirmation string
	secret       string
	groupID      int
	onMessage    MessageHandler
}

func NewWebhookHandler(confirmation, secret string, groupID int, onMessage MessageHandler) *WebhookHandler {
	return &WebhookHandler{
		confirmation: confirmation,
		secret:       secret,
		groupID:      groupID,
		onMessage:    onMessage,
	}
}

// HandleCallback processes incoming Callback API POST notifications.
// VK retries any event not answered with "ok", so unknown event types are
// acknowledged rather than rejected.
func (h *WebhookHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	var event CallbackEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Printf("webhook: failed to decode event: %v", err)
		w.Write([]byte("ok"))
		return
	}

	if h.secret != "" && event.Secret != h.secret {
		log.Printf("webhook: secret mismatch for event type %q", event.Type)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if h.groupID != 0 && event.GroupID != 0 && event.GroupID != h.groupID {
		log.Printf("webhook: event for foreign group %d ignored", event.GroupID)
		w.Write([]byte("ok"))
		return
	}

	switch event.Type {
	case "confirmation":
		w.Write([]byte(h.confirmation))

	case "message_new":
		var obj MessageNewObject
		if err := json.Unmarshal(event.Object, &obj); err != nil {
			log.Printf("webhook: failed to decode message_new object: %v", err)
			w.Write([]byte("ok"))
			return
		}
		w.Write([]byte("ok"))

		msg := obj.Message
		if msg.PeerID != msg.FromID {
			// group chats are ignored, the bot only talks in DMs
			return
		}
		if msg.Text == "" && msg.Payload == "" {
			return
		}
		h.onMessage(msg.PeerID, msg.Text, msg.Payload)

	default:
		w.Write([]byte("ok"))
	}
}
