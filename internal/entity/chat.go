package entity

import "time"

// ChatMessage is one line of a chat transcript. Messages are appended and
// never edited.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
