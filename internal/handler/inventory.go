package handler

import (
	"log/slog"
	"net/http"

	"github.com/osse101/DropsMiner_Go/internal/metrics"
	"github.com/osse101/DropsMiner_Go/internal/snapshot"
)

// HandleInventory lists every campaign the worker knows about
// @Summary Campaign inventory
// @Description Returns all campaigns with their drops in the worker's order. An empty inventory is an empty array.
// @Tags miner
// @Produce json
// @Success 200 {array} snapshot.CampaignView
// @Router /api/inventory [get]
func HandleInventory(src snapshot.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inv := snapshot.BuildInventory(src)
		metrics.SnapshotsBuilt.WithLabelValues(metrics.SnapshotKindInventory).Inc()
		slog.Debug(LogMsgSnapshotBuilt, "kind", metrics.SnapshotKindInventory, "campaigns", len(inv))

		respondJSON(w, http.StatusOK, inv)
	}
}
