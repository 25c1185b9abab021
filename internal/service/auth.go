package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/strength"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
)

// hintFreeLength is the length from which a password may contain the
// account's email name without being rejected.
const hintFreeLength = 16

// WeakPasswordError rejects a registration password and carries the evaluation.
type WeakPasswordError struct {
	Result strength.Result
	Reason string
}

func (e *WeakPasswordError) Error() string { return e.Reason }

// AuthService handles account registration and login.
type AuthService struct {
	repo   *repository.UserRepository
	hasher *crypto.Hasher
	tokens *crypto.TokenIssuer
}

func NewAuthService(repo *repository.UserRepository, hasher *crypto.Hasher, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates an account. Passwords the evaluator rates Weak are refused.
func (s *AuthService) Register(ctx context.Context, req model.CredentialsRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.AuthResponse{}, ErrInvalidEmail
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if err := CheckAccountPassword(req.Password, email); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{Email: email, AuthHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.issue(user)
}

// CheckAccountPassword rejects Weak passwords and short passwords that
// contain the local part of email.
func CheckAccountPassword(password, email string) error {
	res := strength.Evaluate(password)
	if res.Strength == strength.Weak {
		return &WeakPasswordError{Result: res, Reason: "password is too weak"}
	}

	local, _, _ := strings.Cut(email, "@")
	if len(local) >= 3 && utf8.RuneCountInString(password) < hintFreeLength &&
		strings.Contains(strings.ToLower(password), strings.ToLower(local)) {
		return &WeakPasswordError{Result: res, Reason: "password must not contain your email name"}
	}
	return nil
}

// Login verifies credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, req model.CredentialsRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(user.AuthHash) {
		if hash, err := s.hasher.Hash(req.Password); err == nil {
			if err := s.repo.UpdateHash(ctx, user.ID, hash); err != nil {
				slog.Warn("rehash on login failed", "user_id", user.ID, "error", err)
			}
		}
	}

	return s.issue(user)
}

func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *AuthService) issue(user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
