package strength

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantScore    int
		wantStrength Tier
		wantFeedback []string
	}{
		{
			name:         "empty",
			password:     "",
			wantScore:    0,
			wantStrength: Weak,
			wantFeedback: []string{MsgLength, MsgUppercase, MsgLowercase, MsgDigit, MsgSymbol},
		},
		{
			name:         "short lowercase",
			password:     "abc",
			wantScore:    1,
			wantStrength: Weak,
			wantFeedback: []string{MsgLength, MsgUppercase, MsgDigit, MsgSymbol},
		},
		{
			name:         "medium length all classes",
			password:     "Password1!",
			wantScore:    5,
			wantStrength: Moderate,
			wantFeedback: []string{},
		},
		{
			name:         "long all classes",
			password:     "Str0ng&Password123",
			wantScore:    6,
			wantStrength: Strong,
			wantFeedback: []string{},
		},
		{
			name:         "eight lowercase",
			password:     "abcdefgh",
			wantScore:    2,
			wantStrength: Weak,
			wantFeedback: []string{MsgUppercase, MsgDigit, MsgSymbol},
		},
		{
			name:         "eight mixed case",
			password:     "abcdEFGH",
			wantScore:    3,
			wantStrength: Moderate,
			wantFeedback: []string{MsgDigit, MsgSymbol},
		},
		{
			name:         "twelve chars missing symbol",
			password:     "Abcdefghijk1",
			wantScore:    5,
			wantStrength: Moderate,
			wantFeedback: []string{MsgSymbol},
		},
		{
			name:         "short all classes",
			password:     "Ab1!",
			wantScore:    4,
			wantStrength: Moderate,
			wantFeedback: []string{MsgLength},
		},
		{
			name:         "symbols outside the set do not count",
			password:     "abcdefgh()-_",
			wantScore:    3,
			wantStrength: Moderate,
			wantFeedback: []string{MsgUppercase, MsgDigit, MsgSymbol},
		},
		{
			name:         "non-ascii letters are not classes",
			password:     "ÄÖÜäöüßé",
			wantScore:    1,
			wantStrength: Weak,
			wantFeedback: []string{MsgUppercase, MsgLowercase, MsgDigit, MsgSymbol},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Evaluate(%q) score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Strength != tt.wantStrength {
				t.Errorf("Evaluate(%q) strength = %q, want %q", tt.password, got.Strength, tt.wantStrength)
			}
			if !reflect.DeepEqual(got.Feedback, tt.wantFeedback) {
				t.Errorf("Evaluate(%q) feedback = %q, want %q", tt.password, got.Feedback, tt.wantFeedback)
			}
		})
	}
}

func TestEvaluateFeedbackNeverNil(t *testing.T) {
	if Evaluate("Str0ng&Password123").Feedback == nil {
		t.Fatal("Feedback should be an empty slice, not nil")
	}
}

func TestEvaluateLengthCountsRunes(t *testing.T) {
	// 7 runes but more than 8 bytes.
	pw := "ééééééé"
	if utf8.RuneCountInString(pw) != 7 || len(pw) <= 8 {
		t.Fatalf("bad fixture %q", pw)
	}
	got := Evaluate(pw)
	if got.Feedback[0] != MsgLength {
		t.Errorf("expected length feedback for 7-rune password, got %q", got.Feedback)
	}
}

func TestEvaluateNonASCIIDigitsAreNotDigits(t *testing.T) {
	for _, pw := range []string{"abcdefgh٣", "abcdefgh１"} {
		got := Evaluate(pw)
		if got.Score != 2 || got.Strength != Weak {
			t.Errorf("Evaluate(%q) = %d/%s, want 2/Weak", pw, got.Score, got.Strength)
		}
		want := []string{MsgUppercase, MsgDigit, MsgSymbol}
		if !reflect.DeepEqual(got.Feedback, want) {
			t.Errorf("Evaluate(%q) feedback = %q, want %q", pw, got.Feedback, want)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, Weak},
		{1, Weak},
		{2, Weak},
		{3, Moderate},
		{4, Moderate},
		{5, Moderate},
		{6, Strong},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// checks counts satisfied criteria independently of Evaluate.
func checks(pw string) (lengthOK bool, classes int) {
	lengthOK = utf8.RuneCountInString(pw) >= MinLength
	for _, set := range []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz", "0123456789", "!@#$%^&*"} {
		if strings.ContainsAny(pw, set) {
			classes++
		}
	}
	return lengthOK, classes
}

func TestEvaluateProperties(t *testing.T) {
	inputs := []string{
		"", "a", "A", "1", "!", "aA1!", "password", "PASSWORD", "12345678",
		"!!!!!!!!", "Passw0rd", "Passw0rd!", "correct horse battery staple",
		"Tr0ub4dor&3", "abcdefghijkl", "ABCDEFGHIJKL1", "x!x!x!x!x!x!x!",
		"日本語のパスワード", "Pa$$w0rd12345",
	}

	for _, pw := range inputs {
		got := Evaluate(pw)

		if got.Score < 0 || got.Score > MaxScore {
			t.Errorf("Evaluate(%q) score %d out of range", pw, got.Score)
		}
		if got.Strength != TierFor(got.Score) {
			t.Errorf("Evaluate(%q) strength %q inconsistent with score %d", pw, got.Strength, got.Score)
		}

		lengthOK, classes := checks(pw)
		wantLen := 4 - classes
		if !lengthOK {
			wantLen++
		}
		if len(got.Feedback) != wantLen {
			t.Errorf("Evaluate(%q) feedback len = %d, want %d (%q)", pw, len(got.Feedback), wantLen, got.Feedback)
		}

		hasLengthMsg := len(got.Feedback) > 0 && got.Feedback[0] == MsgLength
		if hasLengthMsg == lengthOK {
			t.Errorf("Evaluate(%q) length feedback present = %v, length ok = %v", pw, hasLengthMsg, lengthOK)
		}

		if again := Evaluate(pw); !reflect.DeepEqual(got, again) {
			t.Errorf("Evaluate(%q) not idempotent: %+v vs %+v", pw, got, again)
		}
	}
}

func TestProgress(t *testing.T) {
	if p := (Result{Score: 3}).Progress(); p != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", p)
	}
	if p := (Result{Score: MaxScore}).Progress(); p != 1 {
		t.Errorf("Progress() = %v, want 1", p)
	}
}
