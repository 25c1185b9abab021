// Package strength scores passwords against length and character-class rules.
package strength

import (
	"unicode/utf8"

	"github.com/securepass/securepass-go/internal/charset"
)

const (
	MinLength         = 8
	RecommendedLength = 12

	// MaxScore is two length points plus one point per character class.
	MaxScore = 6
)

// Tier is the coarse strength classification derived from a score.
type Tier string

const (
	Weak     Tier = "Weak"
	Moderate Tier = "Moderate"
	Strong   Tier = "Strong"
)

// Feedback messages, one per unmet rule.
const (
	MsgLength    = "Use at least 8 characters (12+ recommended)"
	MsgUppercase = "Add uppercase letter"
	MsgLowercase = "Add lowercase letter"
	MsgDigit     = "Include digit"
	MsgSymbol    = "Add special character"
)

type rule struct {
	class   charset.Class
	message string
}

// rules are checked in this order; feedback follows it.
var rules = [...]rule{
	{charset.ClassUpper, MsgUppercase},
	{charset.ClassLower, MsgLowercase},
	{charset.ClassDigit, MsgDigit},
	{charset.ClassSymbol, MsgSymbol},
}

// Result is the outcome of a single evaluation.
type Result struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
	Strength Tier     `json:"strength"`
}

// Evaluate scores password. Every string is valid input; Feedback is never nil.
func Evaluate(password string) Result {
	res := Result{Feedback: make([]string, 0, len(rules)+1)}

	switch n := utf8.RuneCountInString(password); {
	case n >= RecommendedLength:
		res.Score += 2
	case n >= MinLength:
		res.Score++
	default:
		res.Feedback = append(res.Feedback, MsgLength)
	}

	var present [len(charset.Classes)]bool
	for _, r := range password {
		if c, ok := charset.Of(r); ok {
			present[c] = true
		}
	}

	for _, rl := range rules {
		if present[rl.class] {
			res.Score++
			continue
		}
		res.Feedback = append(res.Feedback, rl.message)
	}

	res.Strength = TierFor(res.Score)
	return res
}

// TierFor maps a score to its tier: <=2 Weak, 3-5 Moderate, >=6 Strong.
func TierFor(score int) Tier {
	switch {
	case score <= 2:
		return Weak
	case score <= 5:
		return Moderate
	default:
		return Strong
	}
}

// Progress returns score as a fraction of MaxScore, capped at 1.
func (r Result) Progress() float64 {
	p := float64(r.Score) / MaxScore
	if p > 1 {
		return 1
	}
	return p
}
