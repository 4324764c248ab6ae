package snapshot

import (
	"math"
	"time"

	"github.com/osse101/DropsMiner_Go/internal/domain"
)

// BuildStatus projects the worker's current mode, progress and login into a
// StatusSnapshot. Absent upstream data is reported through defaults: empty
// strings, null percentages and "UNKNOWN" for an undefined state.
func BuildStatus(src Source) StatusSnapshot {
	snap := StatusSnapshot{State: domain.MinerStateUnknown}

	if state, ok := src.CurrentState(); ok {
		snap.State = state.String()
	}

	progress := src.Progress()
	if c := progress.Campaign; c != nil {
		snap.ActiveCampaign = c.Name
		snap.ActiveGame = c.Game
		snap.CampaignProgress = float64Ptr(c.Percentage)
		snap.CampaignRemaining = c.Remaining
	}
	if d := progress.Drop; d != nil {
		snap.DropRewards = d.Rewards
		snap.DropProgressPercent = float64Ptr(d.Percentage)
		snap.DropRemaining = d.Remaining
	}

	auth := src.Auth()
	snap.LoggedIn = auth.LoggedIn
	if auth.LoggedIn && auth.UserID != nil {
		snap.UserID = stringPtr(*auth.UserID)
	}

	return snap
}

// BuildInventory projects the worker's campaigns in the order the worker
// keeps them. The result is never nil.
func BuildInventory(src Source) InventorySnapshot {
	campaigns := src.Inventory()
	out := make(InventorySnapshot, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignView(c))
	}
	return out
}

func campaignView(c domain.Campaign) CampaignView {
	drops := make([]DropView, 0, len(c.Drops))
	for _, d := range c.Drops {
		drops = append(drops, dropView(d))
	}

	var image *string
	if c.ImageURL != nil {
		image = stringPtr(*c.ImageURL)
	}

	return CampaignView{
		ID:       c.ID,
		Game:     c.Game.Name,
		Name:     c.Name,
		Status:   ClassifyCampaign(c.Active, c.Upcoming),
		Progress: toPercent(c.Progress()),
		Drops:    drops,
		StartAt:  FormatTimestamp(c.StartsAt),
		EndAt:    FormatTimestamp(c.EndsAt),
		ImageURL: image,
	}
}

func dropView(d domain.Drop) DropView {
	var image *string
	if len(d.Benefits) > 0 {
		image = stringPtr(d.Benefits[0].ImageURL)
	}
	return DropView{
		ID:        d.ID,
		Name:      d.RewardsText(),
		Progress:  toPercent(d.Progress()),
		IsClaimed: d.IsClaimed,
		CanClaim:  d.CanClaim,
		ImageURL:  image,
	}
}

// FormatTimestamp renders t in the campaign window format, keeping t's zone.
// Sub-second precision is only printed when present. The zero time renders empty.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(TimestampLayoutMicros)
	}
	return t.Format(TimestampLayout)
}

// toPercent scales a fraction to a percentage rounded to two decimals
func toPercent(fraction float64) float64 {
	return math.Round(fraction*percentScale*100) / 100
}

func float64Ptr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }
