package snapshot

// Campaign status labels
const (
	StatusLabelActive   = "Active"
	StatusLabelUpcoming = "Upcoming"
	StatusLabelExpired  = "Expired"
)

// Timestamp layouts matching the external format of campaign windows
const (
	TimestampLayout       = "2006-01-02 15:04:05-07:00"
	TimestampLayoutMicros = "2006-01-02 15:04:05.000000-07:00"
)

// percentScale converts a progress fraction into a percentage
const percentScale = 100
