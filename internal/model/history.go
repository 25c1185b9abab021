package model

import "github.com/securepass/securepass-go/internal/history"

// HistoryResponse lists a user's recent masked passwords, newest first.
type HistoryResponse struct {
	Entries  []history.Entry `json:"entries"`
	Capacity int             `json:"capacity"`
}
