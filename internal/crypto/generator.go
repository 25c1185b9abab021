package crypto

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/charset"
)

// MinLength is the shortest password Generate accepts.
const MinLength = 8

// ErrInvalidLength matches any *InvalidLengthError via errors.Is.
var ErrInvalidLength = errors.New("invalid password length")

// InvalidLengthError is returned when the requested length is below MinLength.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password length should be at least %d characters, got %d", MinLength, e.Length)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// Generator produces passwords containing at least one character of every class.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src uses SecureSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = SecureSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate creates a password of exactly length characters.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", &InvalidLengthError{Length: length}
	}

	result := make([]byte, length)

	// Guarantee at least one character from each class.
	for i, class := range charset.Classes {
		result[i] = g.pick(class.Chars())
	}

	// Fill the remaining positions from the full alphabet.
	for i := len(charset.Classes); i < length; i++ {
		result[i] = g.pick(charset.All)
	}

	g.src.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	return string(result), nil
}

func (g *Generator) pick(chars string) byte {
	return chars[g.src.IntN(len(chars))]
}
