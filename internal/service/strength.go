package service

import (
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

// estimateMaxRunes bounds the input handed to the guess estimator, whose
// matching cost grows quickly with length.
const estimateMaxRunes = 100

// StrengthService scores passwords.
type StrengthService struct {
	estimate bool
}

// NewStrengthService creates a StrengthService. When estimate is true,
// responses carry a zxcvbn guessability estimate next to the rule score.
func NewStrengthService(estimate bool) *StrengthService {
	return &StrengthService{estimate: estimate}
}

// Evaluate scores req.Password. It never fails.
func (s *StrengthService) Evaluate(req model.EvaluateRequest) model.EvaluateResponse {
	res := strength.Evaluate(req.Password)

	resp := model.EvaluateResponse{
		Score:    res.Score,
		MaxScore: strength.MaxScore,
		Strength: res.Strength,
		Feedback: res.Feedback,
		Progress: res.Progress(),
	}

	if s.estimate && req.Password != "" && utf8.RuneCountInString(req.Password) <= estimateMaxRunes {
		m := zxcvbn.PasswordStrength(req.Password, nil)
		resp.Estimate = &model.Estimate{
			EntropyBits: m.Entropy,
			CrackTime:   m.CrackTimeDisplay,
		}
	}

	return resp
}
