package http

import (
	"net/http"

	"github.com/quokkahq/gatehouse/internal/service"
	"github.com/quokkahq/gatehouse/pkg/httpx"
	"github.com/quokkahq/gatehouse/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP lists every user in sanitized form.
//
//	@Summary		List users
//	@Description	Returns username and email for every registered user. Requires a bearer access token.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gateclient.UserView			"or a message when the store is empty"
//	@Failure		401	{object}	gateclient.MessageResponse	"missing or malformed bearer token"
//	@Failure		403	{object}	gateclient.MessageResponse	"token failed verification"
//	@Failure		500	{object}	gateclient.MessageResponse
//	@Router			/api/users [get].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("list users failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(users) == 0 {
		httpx.WriteMessage(w, http.StatusOK, "No users found.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, users)
}
