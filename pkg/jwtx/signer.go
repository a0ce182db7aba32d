package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret reports a signer or verifier constructed without key material.
// This is a configuration fault, callers should treat it as fatal.
var ErrNoSecret = errors.New("jwtx: empty signing secret")

// Signer is our interface for anything that can sign token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// hs256Signer signs tokens with an HMAC-SHA256 shared secret. Access and
// refresh tokens each get their own signer so the two secrets stay
// independent.
type hs256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer from a shared secret.
func NewSignerHS256(secret []byte) (Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &hs256Signer{secret: secret}, nil
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
