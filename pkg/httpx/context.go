package httpx

import "context"

type ctxKey string

// CtxKeyUserID holds the authenticated user's id, set by the access guard.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromCtx returns the authenticated user id, or "" when the request
// did not pass through the access guard.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
