package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quokkahq/gatehouse/internal/service"
	"github.com/quokkahq/gatehouse/pkg/gateclient"
	"github.com/quokkahq/gatehouse/pkg/httpx"
	"github.com/quokkahq/gatehouse/pkg/slogx"
)

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
	Cookies     CookiePolicy
}

// HandleRegister godoc
//
//	@Summary		Register a new user
//	@Description	Creates a user and issues an access token plus a refresh token cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		gateclient.RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	gateclient.AuthResponse		"user and accessToken; refresh token in the jwt cookie"
//	@Failure		400		{object}	gateclient.ErrorResponse	"missing fields"
//	@Failure		409		{object}	gateclient.ErrorResponse	"email already registered"
//	@Failure		500		{object}	gateclient.ErrorResponse
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gateclient.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, pair, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeAuthError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrEmailTaken):
			writeAuthError(w, http.StatusConflict, "User already exists")
		default:
			log.Error("register failed", "err", err)
			writeAuthError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.Cookies.Set(w, pair.RefreshToken)
	httpx.WriteJSON(w, http.StatusCreated, gateclient.AuthResponse{
		Success:     true,
		Message:     "User registered successfully!",
		User:        gateclient.UserView{Username: user.Username, Email: user.Email},
		AccessToken: pair.AccessToken,
	})
}

// HandleLogin godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and issues a fresh access/refresh pair. Unknown email and wrong password are indistinguishable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		gateclient.LoginRequest		true	"email, password"
//	@Success		200		{object}	gateclient.AuthResponse		"user and accessToken; refresh token in the jwt cookie"
//	@Failure		400		{object}	gateclient.ErrorResponse	"missing fields"
//	@Failure		401		{object}	gateclient.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	gateclient.ErrorResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gateclient.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "Please provide both email and password.")
		return
	}

	user, pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeAuthError(w, http.StatusBadRequest, "Please provide both email and password.")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeAuthError(w, http.StatusUnauthorized, "Invalid login credentials.")
		default:
			log.Error("login failed", "err", err)
			writeAuthError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.Cookies.Set(w, pair.RefreshToken)
	httpx.WriteJSON(w, http.StatusOK, gateclient.AuthResponse{
		Success:     true,
		Message:     "You are logged in successfully",
		User:        gateclient.UserView{Email: user.Email},
		AccessToken: pair.AccessToken,
	})
}

// HandleRefresh godoc
//
//	@Summary		Mint a new access token
//	@Description	Silent re-authentication: verifies the jwt refresh cookie and returns a fresh access token. The refresh cookie is not rotated.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	gateclient.RefreshResponse
//	@Failure		401	{object}	gateclient.MessageResponse	"no cookie, or the user no longer exists"
//	@Failure		403	{object}	gateclient.MessageResponse	"invalid or expired refresh token"
//	@Router			/api/auth/refresh [get].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(h.Cookies.Name)
	if err != nil || cookie.Value == "" {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	access, err := h.AuthService.Refresh(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		case errors.Is(err, service.ErrUnknownSubject):
			httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		default:
			log.Error("refresh failed", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gateclient.RefreshResponse{AccessToken: access})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clears the refresh cookie. Tokens are stateless, so nothing is invalidated server-side; clients must also discard the access token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	gateclient.MessageResponse
//	@Success		204	"no cookie was present"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(h.Cookies.Name); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.Cookies.Clear(w)
	httpx.WriteMessage(w, http.StatusOK, "You are logged out")
}

func writeAuthError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, gateclient.ErrorResponse{Success: false, Message: message})
}
