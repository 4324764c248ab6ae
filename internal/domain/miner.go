package domain

// MinerState is the top-level mode of the watch worker
type MinerState int

const (
	MinerStateIdle MinerState = iota
	MinerStateInventoryFetch
	MinerStateGamesUpdate
	MinerStateChannelsFetch
	MinerStateChannelsCleanup
	MinerStateChannelSwitch
	MinerStateMining
	MinerStateExit
)

var minerStateNames = map[MinerState]string{
	MinerStateIdle:            "IDLE",
	MinerStateInventoryFetch:  "INVENTORY_FETCH",
	MinerStateGamesUpdate:     "GAMES_UPDATE",
	MinerStateChannelsFetch:   "CHANNELS_FETCH",
	MinerStateChannelsCleanup: "CHANNELS_CLEANUP",
	MinerStateChannelSwitch:   "CHANNEL_SWITCH",
	MinerStateMining:          "MINING",
	MinerStateExit:            "EXIT",
}

// String returns the upper-case tag exposed to clients
func (s MinerState) String() string {
	if name, ok := minerStateNames[s]; ok {
		return name
	}
	return MinerStateUnknown
}

// AuthState describes the login of the worker.
// UserID may still be nil for a short while after LoggedIn turns true.
type AuthState struct {
	LoggedIn bool
	UserID   *string
}

// CampaignProgress is the progress view of the campaign currently being watched
type CampaignProgress struct {
	Name       string
	Game       string
	Percentage float64
	Remaining  string
}

// DropProgress is the progress view of the drop currently being watched
type DropProgress struct {
	Rewards    string
	Percentage float64
	Remaining  string
}

// Progress is what the worker is working on right now.
// A nil member means nothing of that kind is being tracked.
type Progress struct {
	Campaign *CampaignProgress
	Drop     *DropProgress
}
