// Package engine turns one inbound message or button press into the next
// screen: a text plus an optional keyboard. It is stateless across turns —
// everything a screen needs to be rebuilt travels in button payloads.
package engine

import (
	"log"
	"strings"

	"github.com/vkedu/projects-bot/internal/catalog"
	"github.com/vkedu/projects-bot/internal/profanity"
	"github.com/vkedu/projects-bot/internal/vk"
)

// Response is one dialogue turn. A nil Keyboard means "leave the keyboard
// the client already shows in place".
type Response struct {
	Text     string
	Keyboard *vk.Keyboard
}

type Engine struct {
	repo     *catalog.Repository
	badWords *profanity.Filter
	pageSize int
}

func New(repo *catalog.Repository, badWords *profanity.Filter, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Engine{repo: repo, badWords: badWords, pageSize: pageSize}
}

// Respond classifies the inbound event and produces the next screen.
// Priority: button payload, greeting, profanity, keyword search, fallback.
// It never panics: a fault in any handler degrades to the error fallback.
func (e *Engine) Respond(peerID int64, text, rawPayload string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: recovered from panic for peer %d: %v", peerID, r)
			resp = Response{Text: ErrorFallbackMessage, Keyboard: mainMenuKeyboard()}
		}
	}()

	if rawPayload != "" {
		p, err := DecodePayload(rawPayload)
		if err == nil {
			return e.dispatch(p)
		}
		// an unparseable payload is treated as plain text
		log.Printf("engine: ignoring payload for peer %d: %v", peerID, err)
	}

	normalized := Normalize(text)
	if _, ok := greetings[normalized]; ok {
		return Response{Text: WelcomeMessage, Keyboard: mainMenuKeyboard()}
	}

	if e.badWords != nil && e.badWords.Contains(text) {
		return Response{Text: BadWordsWarning}
	}

	if p, ok := e.searchByKeywords(normalized); ok {
		return Response{Text: catalog.RenderCard(p)}
	}

	return Response{Text: DefaultFallbackMessage, Keyboard: mainMenuKeyboard()}
}

// searchByKeywords returns the first project, in catalog order, whose title
// contains any word of the normalized input as a substring.
func (e *Engine) searchByKeywords(normalized string) (catalog.Project, bool) {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return catalog.Project{}, false
	}
	for _, p := range e.repo.Projects() {
		title := strings.ToLower(p.Title)
		for _, w := range words {
			if strings.Contains(title, w) {
				return p, true
			}
		}
	}
	return catalog.Project{}, false
}
