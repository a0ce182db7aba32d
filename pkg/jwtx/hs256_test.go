package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("test-access-secret-0123456789abcdef")
	refreshSecret = []byte("test-refresh-secret-0123456789abcd")
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(accessSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(accessSecret)
	require.NoError(t, err)

	subjects := []string{
		"01JX3GV0M2K9R9QWERTY123456",
		"user-42",
		"a",
	}

	for _, sub := range subjects {
		token, err := signer.Sign(NewClaims(sub, DefaultAccessTokenTTL, time.Now()))
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, sub, claims.Subject)
		require.NoError(t, claims.ValidateExpiry())
	}
}

func TestVerifyRejectsCrossSecret(t *testing.T) {
	t.Parallel()

	accessSigner, err := NewSignerHS256(accessSecret)
	require.NoError(t, err)
	refreshSigner, err := NewSignerHS256(refreshSecret)
	require.NoError(t, err)

	accessVerifier, err := NewVerifierHS256(accessSecret)
	require.NoError(t, err)
	refreshVerifier, err := NewVerifierHS256(refreshSecret)
	require.NoError(t, err)

	accessToken, err := accessSigner.Sign(NewClaims("u1", DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)
	refreshToken, err := refreshSigner.Sign(NewClaims("u1", DefaultRefreshTokenTTL, time.Now()))
	require.NoError(t, err)

	// A refresh token must never verify as an access token, and vice versa.
	_, err = accessVerifier.Verify(refreshToken)
	require.ErrorIs(t, err, ErrInvalidSig)

	_, err = refreshVerifier.Verify(accessToken)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(accessSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(accessSecret)
	require.NoError(t, err)

	// Issued far enough in the past that the TTL has lapsed.
	issuedAt := time.Now().Add(-1 * time.Hour)
	token, err := signer.Sign(NewClaims("u1", DefaultAccessTokenTTL, issuedAt))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsTampered(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(accessSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(accessSecret)
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("u1", DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = verifier.Verify(tampered)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	verifier, err := NewVerifierHS256(accessSecret)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestEmptySecretRejected(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = NewVerifierHS256([]byte{})
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestClaimsValidateExpiry(t *testing.T) {
	t.Parallel()

	live := NewClaims("u1", time.Minute, time.Now())
	require.NoError(t, live.ValidateExpiry())

	dead := NewClaims("u1", time.Minute, time.Now().Add(-2*time.Minute))
	require.ErrorIs(t, dead.ValidateExpiry(), ErrExpired)

	future := NewClaims("u1", time.Minute, time.Now().Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), ErrNotYetValid)
}
