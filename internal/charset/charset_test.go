package charset

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		r      rune
		want   Class
		wantOK bool
	}{
		{'A', ClassUpper, true},
		{'Z', ClassUpper, true},
		{'a', ClassLower, true},
		{'z', ClassLower, true},
		{'0', ClassDigit, true},
		{'9', ClassDigit, true},
		{'!', ClassSymbol, true},
		{'*', ClassSymbol, true},
		{'(', 0, false},
		{' ', 0, false},
		{'é', 0, false},
		{'Ä', 0, false},
		{'٣', 0, false},
		{'１', 0, false},
		{'É', 0, false},
	}

	for _, tt := range tests {
		got, ok := Of(tt.r)
		if ok != tt.wantOK {
			t.Errorf("Of(%q) ok = %v, want %v", tt.r, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Of(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClassCharsRoundTrip(t *testing.T) {
	for _, c := range Classes {
		chars := c.Chars()
		if chars == "" {
			t.Fatalf("class %v has no characters", c)
		}
		for _, r := range chars {
			got, ok := Of(r)
			if !ok || got != c {
				t.Errorf("Of(%q) = %v, %v; want %v", r, got, ok, c)
			}
		}
	}
}

func TestAllAlphabet(t *testing.T) {
	if len(All) != 26+26+10+8 {
		t.Errorf("len(All) = %d, want %d", len(All), 70)
	}
}
