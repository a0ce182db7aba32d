package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/quokkahq/gatehouse/pkg/jwtx"
	"github.com/quokkahq/gatehouse/pkg/slogx"
)

// RequireAccessToken gates protected routes on a bearer access token.
//
// A missing or malformed Authorization header is Unauthorized (401); a
// well-formed token that fails verification for any reason is Forbidden
// (403). On success the subject claim is attached to the request context
// as the user id.
func RequireAccessToken(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("access token rejected", "err", err)
				WriteMessage(w, http.StatusForbidden, "Forbidden")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
