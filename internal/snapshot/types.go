package snapshot

// StatusSnapshot is the payload for GET /api/status
type StatusSnapshot struct {
	State               string   `json:"state"`
	ActiveCampaign      string   `json:"active_campaign"`
	ActiveGame          string   `json:"active_game"`
	CampaignProgress    *float64 `json:"campaign_progress"`
	CampaignRemaining   string   `json:"campaign_remaining"`
	DropRewards         string   `json:"drop_rewards"`
	DropProgressPercent *float64 `json:"drop_progress_percent"`
	DropRemaining       string   `json:"drop_remaining"`
	LoggedIn            bool     `json:"logged_in"`
	UserID              *string  `json:"user_id"`
}

// InventorySnapshot is the payload for GET /api/inventory
type InventorySnapshot []CampaignView

// CampaignView is one campaign of the inventory
type CampaignView struct {
	ID       string         `json:"id"`
	Game     string         `json:"game"`
	Name     string         `json:"name"`
	Status   CampaignStatus `json:"status"`
	Progress float64        `json:"progress"`
	Drops    []DropView     `json:"drops"`
	StartAt  string         `json:"start_at"`
	EndAt    string         `json:"end_at"`
	ImageURL *string        `json:"image_url"`
}

// DropView is one drop of a campaign
type DropView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Progress  float64 `json:"progress"`
	IsClaimed bool    `json:"is_claimed"`
	CanClaim  bool    `json:"can_claim"`
	ImageURL  *string `json:"image_url"`
}
