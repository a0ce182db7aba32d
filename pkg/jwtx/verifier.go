package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// hs256Verifier checks HS256 tokens against a single shared secret. A token
// signed with any other secret (including the other half of an
// access/refresh pair) fails with ErrInvalidSig.
type hs256Verifier struct {
	secret []byte
}

// NewVerifierHS256 creates an HS256 verifier for the given shared secret.
func NewVerifierHS256(secret []byte) (Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &hs256Verifier{secret: secret}, nil
}

func (v *hs256Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

// mapParseError collapses the library's error tree into our sentinel set.
// Order matters: expiry is checked before signature so an expired token
// signed with the right secret reports ErrExpired.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
