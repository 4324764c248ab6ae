package snapshot

import "encoding/json"

// CampaignStatus classifies a campaign's time window
type CampaignStatus int

const (
	CampaignExpired CampaignStatus = iota
	CampaignActive
	CampaignUpcoming
)

// String returns the label exposed to clients
func (s CampaignStatus) String() string {
	switch s {
	case CampaignActive:
		return StatusLabelActive
	case CampaignUpcoming:
		return StatusLabelUpcoming
	default:
		return StatusLabelExpired
	}
}

// MarshalJSON encodes the status as its label
func (s CampaignStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ClassifyCampaign maps the two independent source flags onto a status.
// active is checked first, so a campaign reporting both flags is Active.
func ClassifyCampaign(active, upcoming bool) CampaignStatus {
	switch {
	case active:
		return CampaignActive
	case upcoming:
		return CampaignUpcoming
	default:
		return CampaignExpired
	}
}
