package model

import "github.com/securepass/securepass-go/internal/strength"

// EvaluateRequest carries the password to score. An empty password is valid.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse is the scored result plus presentation helpers.
type EvaluateResponse struct {
	Score    int           `json:"score"`
	MaxScore int           `json:"max_score"`
	Strength strength.Tier `json:"strength"`
	Feedback []string      `json:"feedback"`
	Progress float64       `json:"progress"`
	Estimate *Estimate     `json:"estimate,omitempty"`
}

// Estimate is an informational guessability figure. It does not affect the score.
type Estimate struct {
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
}
