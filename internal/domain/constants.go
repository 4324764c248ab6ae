package domain

// MinerStateUnknown is reported when the worker has no defined state
const MinerStateUnknown = "UNKNOWN"

// RewardsSeparator joins benefit names in a drop's reward description
const RewardsSeparator = ", "
