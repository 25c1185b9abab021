// Package charset holds the character classes shared by the strength
// evaluator and the password generator. All values are read-only.
package charset

import "strings"

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*"

	// All is the combined alphabet used for filler characters.
	All = Uppercase + Lowercase + Digits + Symbols
)

// Class identifies one required character category.
type Class int

const (
	ClassUpper Class = iota
	ClassLower
	ClassDigit
	ClassSymbol
)

// Classes lists every class in the fixed order used for checks and draws.
var Classes = [...]Class{ClassUpper, ClassLower, ClassDigit, ClassSymbol}

func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "uppercase"
	case ClassLower:
		return "lowercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Chars returns the alphabet of the class.
func (c Class) Chars() string {
	switch c {
	case ClassUpper:
		return Uppercase
	case ClassLower:
		return Lowercase
	case ClassDigit:
		return Digits
	case ClassSymbol:
		return Symbols
	default:
		return ""
	}
}

// Of reports the class of r. ok is false for characters outside every class.
// Classes are ASCII only: non-ASCII letters and digits such as 'É', '٣' or
// '１' belong to no class and only count toward length.
func Of(r rune) (Class, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return ClassUpper, true
	case r >= 'a' && r <= 'z':
		return ClassLower, true
	case r >= '0' && r <= '9':
		return ClassDigit, true
	case strings.ContainsRune(Symbols, r):
		return ClassSymbol, true
	default:
		return 0, false
	}
}
