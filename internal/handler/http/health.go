package http

import (
	"net/http"

	"github.com/keepnotes/go-notes-server/internal/utils"
)

// health handles GET /api/health. It reports process liveness only and
// deliberately does not touch the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
