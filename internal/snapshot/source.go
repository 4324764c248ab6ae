package snapshot

import "github.com/osse101/DropsMiner_Go/internal/domain"

// Source is read-only access to the live worker graph.
// Every getter returns plain values owned by the caller. Getters are not
// atomic with respect to each other, so a snapshot may mix values observed
// at slightly different moments.
type Source interface {
	CurrentState() (domain.MinerState, bool)
	Auth() domain.AuthState
	Progress() domain.Progress
	Inventory() []domain.Campaign
}
