package handlers

import (
	"net/http"

	"hrms/service"
)

type DashboardHandler struct {
	stats *service.StatsService
}

func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.DashboardStats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
