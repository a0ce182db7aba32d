package http

import (
	"net/http"
	"time"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "jwt"

// CookiePolicy describes how the refresh cookie is scoped. It is injected
// into the handlers rather than read from globals so tests can vary it.
//
// The defaults match what browsers need for a cross-site SPA: HttpOnly so
// scripts can't read the token, Secure, and SameSite=None so the cookie
// survives cross-origin requests.
type CookiePolicy struct {
	Name   string
	Path   string
	Secure bool
	MaxAge time.Duration
}

// DefaultCookiePolicy returns the production refresh-cookie policy.
func DefaultCookiePolicy() CookiePolicy {
	return CookiePolicy{
		Name:   RefreshCookieName,
		Path:   "/",
		Secure: true,
		MaxAge: 7 * 24 * time.Hour,
	}
}

// Set writes the refresh token cookie.
func (p CookiePolicy) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    token,
		Path:     p.Path,
		MaxAge:   int(p.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// Clear expires the refresh cookie using the same attributes it was set
// with, otherwise browsers keep the original around.
func (p CookiePolicy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     p.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}
