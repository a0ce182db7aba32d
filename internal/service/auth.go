package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quokkahq/gatehouse/internal/domain"
	"github.com/quokkahq/gatehouse/internal/store"
	"github.com/quokkahq/gatehouse/pkg/cryptox"
	"github.com/quokkahq/gatehouse/pkg/idx"
	"github.com/quokkahq/gatehouse/pkg/slogx"
)

var (
	// ErrMissingFields reports an incomplete register/login request.
	ErrMissingFields = errors.New("auth: missing required fields")

	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password". The two causes are deliberately indistinguishable to
	// callers so login can't be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidRefresh reports a refresh token that failed verification
	// (bad signature, tampered, or expired).
	ErrInvalidRefresh = errors.New("auth: invalid refresh token")

	// ErrUnknownSubject reports a verified refresh token whose user no
	// longer exists.
	ErrUnknownSubject = errors.New("auth: unknown subject")
)

// AuthService orchestrates register, login and refresh on top of the user
// store and the token service.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new user and issues their first token pair.
func (s *AuthService) Register(
	ctx context.Context,
	username, email, password string,
) (domain.User, domain.TokenPair, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return domain.User{}, domain.TokenPair{}, ErrMissingFields
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, domain.TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.TokenPair{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race against a concurrent registration.
			return domain.User{}, domain.TokenPair{}, ErrEmailTaken
		}
		return domain.User{}, domain.TokenPair{}, fmt.Errorf("create user: %w", err)
	}

	pair, err := s.Tokens.IssuePair(user.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, pair, nil
}

// Login authenticates email/password and issues a fresh token pair.
func (s *AuthService) Login(
	ctx context.Context,
	email, password string,
) (domain.User, domain.TokenPair, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, domain.TokenPair{}, ErrMissingFields
	}

	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	pair, err := s.Tokens.IssuePair(user.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", user.ID)
	return user, pair, nil
}

// authenticate looks the user up by email and verifies the password
// against the stored hash. Both failure modes collapse into
// ErrInvalidCredentials.
func (s *AuthService) authenticate(
	ctx context.Context,
	email, password string,
) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	return user, nil
}

// Refresh re-mints an access token from a valid refresh token without
// re-authenticating credentials. The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.Tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnknownSubject
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	access, err := s.Tokens.IssueAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return access, nil
}
