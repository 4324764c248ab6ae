package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropsMiner_Go/internal/domain"
)

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "0 minutes remaining", FormatRemaining(0))
	assert.Equal(t, "1 minute remaining", FormatRemaining(1))
	assert.Equal(t, "45 minutes remaining", FormatRemaining(45))
	assert.Equal(t, "1,440 minutes remaining", FormatRemaining(1440))
}

func TestDescribeProgress(t *testing.T) {
	drop := domain.Drop{
		ID:              "d1",
		RequiredMinutes: 50,
		CurrentMinutes:  40,
		Benefits:        []domain.Benefit{{Name: "Emote Pack"}},
	}
	campaign := domain.Campaign{
		Name: "Game X Drops",
		Game: domain.Game{Name: "Game X"},
		Drops: []domain.Drop{
			drop,
			{ID: "d2", RequiredMinutes: 100, CurrentMinutes: 4},
		},
	}

	p := DescribeProgress(campaign, drop)

	require.NotNil(t, p.Campaign)
	assert.Equal(t, "Game X Drops", p.Campaign.Name)
	assert.Equal(t, "Game X", p.Campaign.Game)
	assert.Equal(t, 42.0, p.Campaign.Percentage)
	assert.Equal(t, "106 minutes remaining", p.Campaign.Remaining)

	require.NotNil(t, p.Drop)
	assert.Equal(t, "Emote Pack", p.Drop.Rewards)
	assert.Equal(t, 80.0, p.Drop.Percentage)
	assert.Equal(t, "10 minutes remaining", p.Drop.Remaining)
}
