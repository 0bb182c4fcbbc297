package vk

import "encoding/json"

// --- Incoming Callback API events ---
// Reference: https://dev.vk.com/ru/api/callback/getting-started

type CallbackEvent struct {
	Type    string          `json:"type"`
	GroupID int             `json:"group_id"`
	EventID string          `json:"event_id"`
	Secret  string          `json:"secret"`
	Object  json.RawMessage `json:"object"`
}

type MessageNewObject struct {
	Message IncomingMessage `json:"message"`
}

// IncomingMessage is the part of a message_new event the bot acts on.
// Payload is the JSON string a pressed button carried, empty for plain text.
type IncomingMessage struct {
	ID      int64  `json:"id"`
	FromID  int64  `json:"from_id"`
	PeerID  int64  `json:"peer_id"`
	Text    string `json:"text"`
	Payload string `json:"payload"`
}

// --- Keyboards ---
// Reference: https://dev.vk.com/ru/api/bots/development/keyboard

const (
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorPositive  = "positive"
	ColorNegative  = "negative"
)

type Keyboard struct {
	OneTime bool       `json:"one_time"`
	Inline  bool       `json:"inline,omitempty"`
	Buttons [][]Button `json:"buttons"`
}

type Button struct {
	Action ButtonAction `json:"action"`
	Color  string       `json:"color,omitempty"`
}

type ButtonAction struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Payload string `json:"payload,omitempty"`
}

// TextButton creates a regular text button whose payload comes back verbatim
// in the message_new event when the button is pressed.
func TextButton(label, payload, color string) Button {
	return Button{
		Action: ButtonAction{Type: "text", Label: label, Payload: payload},
		Color:  color,
	}
}

// --- messages.send response envelope ---

type apiResponse struct {
	Response json.RawMessage `json:"response"`
	Error    *apiError       `json:"error"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}
