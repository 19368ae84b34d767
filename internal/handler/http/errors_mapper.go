package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/app"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type errorRule struct {
	target  error
	status  int
	message string
}

// errorRules is checked in order; the first rule whose target matches the
// error with errors.Is wins. Entity-specific NotFound sentinels come before
// anything more generic.
var errorRules = []errorRule{
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrItemNotFound, http.StatusNotFound, app.MsgItemNotFound},
	{store.ErrOrderNotFound, http.StatusNotFound, app.MsgOrderNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgRouteNotFound},

	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrReferencedEntityNotFound, http.StatusBadRequest, app.MsgReferencedEntityNotFound},
	{store.ErrInvalidEntityData, http.StatusBadRequest, app.MsgInvalidEntityData},

	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusBadRequest, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},

	{service.ErrDatabaseUnavailable, http.StatusBadRequest, app.MsgDatabaseUnavailable},
}

// classifyError returns the status code and public message for err.
// Unmatched errors are reported as 400 "Error".
func classifyError(err error) (int, string) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.status, rule.message
		}
	}
	return http.StatusBadRequest, app.MsgUnknownError
}

// writeError logs err with the request-scoped logger and writes the
// classified {"error": ...} body. The raw error text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	logger.FromRequest(r).Err(err).
		Int("status", status).
		Str("public_message", message).
		Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
