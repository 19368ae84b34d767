package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// authorizationHeader carries the raw token for /validate. No scheme prefix
// is stripped.
const authorizationHeader = "Authorization"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", resp.User.ID).Msg("user signed up")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", resp.User.ID).Msg("user signed in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

// validate returns the owner of the token found in the Authorization header.
// A missing header is treated as an empty token and fails verification.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get(authorizationHeader)

	user, err := h.services.AuthService.Validate(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
