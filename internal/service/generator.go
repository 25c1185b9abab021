package service

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds maximum")

// GeneratorService applies request defaults and bounds around crypto.Generator.
type GeneratorService struct {
	gen           *crypto.Generator
	defaultLength int
	maxLength     int
}

// NewGeneratorService creates a GeneratorService. maxLength bounds requests at
// the API edge; the generator itself has no upper limit.
func NewGeneratorService(gen *crypto.Generator, defaultLength, maxLength int) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen, defaultLength: defaultLength, maxLength: maxLength}
}

// Generate produces a password for req. A zero length selects the default.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}
	if s.maxLength > 0 && length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := s.gen.Generate(length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}
