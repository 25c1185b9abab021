package service

import (
	"strings"
	"testing"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

func TestEvaluate_Response(t *testing.T) {
	svc := NewStrengthService(false)

	resp := svc.Evaluate(model.EvaluateRequest{Password: "Password1!"})
	if resp.Score != 5 || resp.Strength != strength.Moderate {
		t.Errorf("got score %d strength %q, want 5 Moderate", resp.Score, resp.Strength)
	}
	if resp.MaxScore != 6 {
		t.Errorf("MaxScore = %d, want 6", resp.MaxScore)
	}
	if resp.Feedback == nil || len(resp.Feedback) != 0 {
		t.Errorf("Feedback = %#v, want empty slice", resp.Feedback)
	}
	if resp.Estimate != nil {
		t.Error("Estimate should be nil when disabled")
	}
}

func TestEvaluate_Empty(t *testing.T) {
	resp := NewStrengthService(true).Evaluate(model.EvaluateRequest{})
	if resp.Score != 0 || resp.Strength != strength.Weak || len(resp.Feedback) != 5 {
		t.Errorf("unexpected response for empty password: %+v", resp)
	}
	if resp.Progress != 0 {
		t.Errorf("Progress = %v, want 0", resp.Progress)
	}
	if resp.Estimate != nil {
		t.Error("Estimate should be skipped for empty password")
	}
}

func TestEvaluate_Estimate(t *testing.T) {
	resp := NewStrengthService(true).Evaluate(model.EvaluateRequest{Password: "Str0ng&Password123"})
	if resp.Estimate == nil {
		t.Fatal("expected Estimate")
	}
	if resp.Estimate.EntropyBits <= 0 {
		t.Errorf("EntropyBits = %v, want > 0", resp.Estimate.EntropyBits)
	}
	if resp.Progress != 1 {
		t.Errorf("Progress = %v, want 1", resp.Progress)
	}

	long := NewStrengthService(true).Evaluate(model.EvaluateRequest{Password: strings.Repeat("aA1!", 30)})
	if long.Estimate != nil {
		t.Error("Estimate should be skipped for very long passwords")
	}
	if long.Strength != strength.Strong {
		t.Errorf("Strength = %q, want Strong", long.Strength)
	}
}
