package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type faqFile struct {
	AvailableAnsweredQuestions []FAQEntry `json:"available_answered_questions"`
}

// LoadFAQFile reads the hand-maintained FAQ JSON used to seed the store.
func LoadFAQFile(path string) ([]FAQEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading faq file: %w", err)
	}
	var f faqFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing faq file %s: %w", path, err)
	}
	return f.AvailableAnsweredQuestions, nil
}
