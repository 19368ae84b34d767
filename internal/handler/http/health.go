package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
