package service

import (
	"time"

	"github.com/quokkahq/gatehouse/internal/domain"
	"github.com/quokkahq/gatehouse/pkg/jwtx"
)

// TokenService mints and verifies the access/refresh token pair. The two
// token kinds use independent secrets, so a verifier for one never accepts
// the other.
type TokenService struct {
	accessSigner    jwtx.Signer
	refreshSigner   jwtx.Signer
	accessVerifier  jwtx.Verifier
	refreshVerifier jwtx.Verifier

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewTokenService wires both signer/verifier pairs. Empty secrets are a
// configuration fault and fail construction.
func NewTokenService(accessSecret, refreshSecret []byte) (*TokenService, error) {
	accessSigner, err := jwtx.NewSignerHS256(accessSecret)
	if err != nil {
		return nil, err
	}
	refreshSigner, err := jwtx.NewSignerHS256(refreshSecret)
	if err != nil {
		return nil, err
	}
	accessVerifier, err := jwtx.NewVerifierHS256(accessSecret)
	if err != nil {
		return nil, err
	}
	refreshVerifier, err := jwtx.NewVerifierHS256(refreshSecret)
	if err != nil {
		return nil, err
	}

	return &TokenService{
		accessSigner:    accessSigner,
		refreshSigner:   refreshSigner,
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}, nil
}

// IssueAccessToken mints a short-lived access token for the given user id.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return s.accessSigner.Sign(jwtx.NewClaims(userID, s.AccessTTL, time.Now()))
}

// IssueRefreshToken mints a long-lived refresh token for the given user id.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return s.refreshSigner.Sign(jwtx.NewClaims(userID, s.RefreshTTL, time.Now()))
}

// IssuePair mints both tokens for the same subject.
func (s *TokenService) IssuePair(userID string) (domain.TokenPair, error) {
	access, err := s.IssueAccessToken(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.AccessTTL,
	}, nil
}

// VerifyAccessToken validates an access token against the access secret.
func (s *TokenService) VerifyAccessToken(token string) (jwtx.Claims, error) {
	return s.accessVerifier.Verify(token)
}

// VerifyRefreshToken validates a refresh token against the refresh secret.
func (s *TokenService) VerifyRefreshToken(token string) (jwtx.Claims, error) {
	return s.refreshVerifier.Verify(token)
}

// AccessVerifier exposes the access-token verifier for the HTTP guard.
func (s *TokenService) AccessVerifier() jwtx.Verifier {
	return s.accessVerifier
}
