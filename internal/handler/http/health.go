package http

import (
	"net/http"

	"github.com/mvoronin/clinic-sync/internal/utils"
)

// health answers the unauthenticated liveness probe clients use to decide
// whether they are online before attempting a sync run.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
