package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quokkahq/gatehouse/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func guardedEcho(t *testing.T, secret []byte) http.Handler {
	t.Helper()

	verifier, err := jwtx.NewVerifierHS256(secret)
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteMessage(w, http.StatusOK, UserIDFromCtx(r.Context()))
	})

	return Chain(echo, RequireAccessToken(verifier))
}

func TestRequireAccessTokenMissingHeader(t *testing.T) {
	t.Parallel()

	h := guardedEcho(t, []byte("secret"))

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare bearer", "Bearer "},
		{"lowercase scheme", "bearer tok"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestRequireAccessTokenBadToken(t *testing.T) {
	t.Parallel()

	h := guardedEcho(t, []byte("secret"))

	otherSigner, err := jwtx.NewSignerHS256([]byte("other-secret"))
	require.NoError(t, err)
	forged, err := otherSigner.Sign(jwtx.NewClaims("u1", time.Minute, time.Now()))
	require.NoError(t, err)

	rightSigner, err := jwtx.NewSignerHS256([]byte("secret"))
	require.NoError(t, err)
	expired, err := rightSigner.Sign(jwtx.NewClaims("u1", time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not.a.jwt",
		"wrong secret": forged,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusForbidden, rec.Code)
			require.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
		})
	}
}

func TestRequireAccessTokenPassesUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	h := guardedEcho(t, secret)

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewClaims("01JX3GV0M2K9R9QWERTY123456", time.Minute, time.Now()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"01JX3GV0M2K9R9QWERTY123456"}`, rec.Body.String())
}
