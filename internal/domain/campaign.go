package domain

import (
	"strings"
	"time"
)

// Game identifies the game a campaign is tied to
type Game struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Benefit is a concrete reward item granted by a drop
type Benefit struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	ImageURL string `yaml:"image_url"`
}

// Drop is a single rewardable milestone within a campaign, tracked by watched minutes
type Drop struct {
	ID              string    `yaml:"id"`
	Name            string    `yaml:"name"`
	Benefits        []Benefit `yaml:"benefits"`
	CurrentMinutes  int       `yaml:"current_minutes"`
	RequiredMinutes int       `yaml:"required_minutes"`
	IsClaimed       bool      `yaml:"is_claimed"`
	CanClaim        bool      `yaml:"can_claim"`
}

// RewardsText joins the benefit names into a single description.
// Falls back to the drop name when the drop carries no benefits.
func (d Drop) RewardsText() string {
	if len(d.Benefits) == 0 {
		return d.Name
	}
	names := make([]string, 0, len(d.Benefits))
	for _, b := range d.Benefits {
		names = append(names, b.Name)
	}
	return strings.Join(names, RewardsSeparator)
}

// Progress returns the watched fraction in [0, 1]. Claimed drops are always complete.
func (d Drop) Progress() float64 {
	if d.IsClaimed {
		return 1
	}
	if d.RequiredMinutes <= 0 {
		return 0
	}
	p := float64(d.CurrentMinutes) / float64(d.RequiredMinutes)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// RemainingMinutes returns the watch time still needed, never negative
func (d Drop) RemainingMinutes() int {
	if d.IsClaimed {
		return 0
	}
	rem := d.RequiredMinutes - d.CurrentMinutes
	if rem < 0 {
		return 0
	}
	return rem
}

// Minable reports whether watching can still advance this drop
func (d Drop) Minable() bool {
	return !d.IsClaimed && !d.CanClaim && d.RemainingMinutes() > 0
}

// Campaign is a time-bounded promotion grouping drops for a game.
// Active and Upcoming are reported by the owner of the campaign; they are
// independent flags and are not validated against each other.
type Campaign struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Game     Game      `yaml:"game"`
	Active   bool      `yaml:"-"`
	Upcoming bool      `yaml:"-"`
	StartsAt time.Time `yaml:"starts_at"`
	EndsAt   time.Time `yaml:"ends_at"`
	ImageURL *string   `yaml:"image_url"`
	Drops    []Drop    `yaml:"drops"`
}

// Progress is the mean progress of all drops, 0 for a campaign without drops
func (c Campaign) Progress() float64 {
	if len(c.Drops) == 0 {
		return 0
	}
	var sum float64
	for _, d := range c.Drops {
		sum += d.Progress()
	}
	return sum / float64(len(c.Drops))
}

// ClaimedDrops counts drops already claimed
func (c Campaign) ClaimedDrops() int {
	n := 0
	for _, d := range c.Drops {
		if d.IsClaimed {
			n++
		}
	}
	return n
}

// RemainingMinutes sums the watch time left across all drops
func (c Campaign) RemainingMinutes() int {
	total := 0
	for _, d := range c.Drops {
		total += d.RemainingMinutes()
	}
	return total
}

// Clone returns a deep copy safe to hand to another goroutine
func (c Campaign) Clone() Campaign {
	out := c
	if c.ImageURL != nil {
		url := *c.ImageURL
		out.ImageURL = &url
	}
	if c.Drops != nil {
		out.Drops = make([]Drop, len(c.Drops))
		for i, d := range c.Drops {
			out.Drops[i] = d
			if d.Benefits != nil {
				out.Drops[i].Benefits = append([]Benefit(nil), d.Benefits...)
			}
		}
	}
	return out
}
