package miner

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/DropsMiner_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// DescribeProgress builds the progress view for the drop being watched
func DescribeProgress(c domain.Campaign, d domain.Drop) domain.Progress {
	return domain.Progress{
		Campaign: &domain.CampaignProgress{
			Name:       c.Name,
			Game:       c.Game.Name,
			Percentage: percent(c.Progress()),
			Remaining:  FormatRemaining(c.RemainingMinutes()),
		},
		Drop: &domain.DropProgress{
			Rewards:    d.RewardsText(),
			Percentage: percent(d.Progress()),
			Remaining:  FormatRemaining(d.RemainingMinutes()),
		},
	}
}

// FormatRemaining renders a watch-time descriptor such as "1,440 minutes remaining"
func FormatRemaining(minutes int) string {
	if minutes == 1 {
		return printer.Sprintf(RemainingFormatSingular, minutes)
	}
	return printer.Sprintf(RemainingFormatPlural, minutes)
}

func percent(fraction float64) float64 {
	return math.Round(fraction*10000) / 100
}
