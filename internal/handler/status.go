package handler

import (
	"log/slog"
	"net/http"

	"github.com/osse101/DropsMiner_Go/internal/metrics"
	"github.com/osse101/DropsMiner_Go/internal/snapshot"
)

// HandleStatus reports the worker's current mode, progress and login
// @Summary Miner status
// @Description Returns a fresh snapshot of the worker state, the campaign and drop being mined and the login state
// @Tags miner
// @Produce json
// @Success 200 {object} snapshot.StatusSnapshot
// @Router /api/status [get]
func HandleStatus(src snapshot.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := snapshot.BuildStatus(src)
		metrics.SnapshotsBuilt.WithLabelValues(metrics.SnapshotKindStatus).Inc()
		slog.Debug(LogMsgSnapshotBuilt, "kind", metrics.SnapshotKindStatus, "state", snap.State)

		respondJSON(w, http.StatusOK, snap)
	}
}
