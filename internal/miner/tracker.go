package miner

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DropsMiner_Go/internal/domain"
)

// Tracker holds the live state of the watch worker.
// The worker mutates it through the setters; readers get deep copies and
// never observe the internal slices.
type Tracker struct {
	mu        sync.RWMutex
	state     domain.MinerState
	hasState  bool
	loggedIn  bool
	userID    *string
	progress  domain.Progress
	campaigns []domain.Campaign
	now       func() time.Time
}

// NewTracker constructs an empty tracker with no defined state
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// SetClock overrides the clock used to derive campaign windows
func (t *Tracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

// SetState records the worker's current mode
func (t *Tracker) SetState(state domain.MinerState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	t.hasState = true
}

// CurrentState returns the worker's mode, false until one was set
func (t *Tracker) CurrentState() (domain.MinerState, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state, t.hasState
}

// Login marks the worker as authenticated. An empty userID leaves the id
// unknown until SetUserID is called.
func (t *Tracker) Login(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loggedIn = true
	if userID != "" {
		id := userID
		t.userID = &id
	}
}

// SetUserID fills in the user id once it becomes known
func (t *Tracker) SetUserID(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := userID
	t.userID = &id
}

// Logout clears authentication
func (t *Tracker) Logout() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loggedIn = false
	t.userID = nil
}

// Auth returns a copy of the authentication state
func (t *Tracker) Auth() domain.AuthState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	auth := domain.AuthState{LoggedIn: t.loggedIn}
	if t.userID != nil {
		id := *t.userID
		auth.UserID = &id
	}
	return auth
}

// SetProgress replaces the current progress view
func (t *Tracker) SetProgress(p domain.Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = copyProgress(p)
}

// ClearProgress drops the current progress view
func (t *Tracker) ClearProgress() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = domain.Progress{}
}

// Progress returns a copy of the current progress view
func (t *Tracker) Progress() domain.Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copyProgress(t.progress)
}

// SetInventory replaces the inventory, keeping the given order
func (t *Tracker) SetInventory(campaigns []domain.Campaign) {
	cloned := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		cloned = append(cloned, c.Clone())
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.campaigns = cloned
}

// Inventory returns a deep copy of the campaigns in worker order with the
// Active and Upcoming flags derived from each campaign window.
func (t *Tracker) Inventory() []domain.Campaign {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.now()
	out := make([]domain.Campaign, 0, len(t.campaigns))
	for _, c := range t.campaigns {
		clone := c.Clone()
		clone.Active, clone.Upcoming = campaignWindow(clone, now)
		out = append(out, clone)
	}
	return out
}

// UpdateDrop applies fn to the drop identified by campaignID/dropID under the
// write lock and returns the updated campaign. The bool is false when no such
// drop exists.
func (t *Tracker) UpdateDrop(campaignID, dropID string, fn func(*domain.Drop)) (domain.Campaign, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for ci := range t.campaigns {
		c := &t.campaigns[ci]
		if c.ID != campaignID {
			continue
		}
		for di := range c.Drops {
			if c.Drops[di].ID != dropID {
				continue
			}
			fn(&c.Drops[di])
			clone := c.Clone()
			clone.Active, clone.Upcoming = campaignWindow(clone, t.now())
			return clone, true
		}
	}
	return domain.Campaign{}, false
}

// CheckHealth reports whether the worker has come up and is still running
func (t *Tracker) CheckHealth(ctx context.Context) error {
	state, ok := t.CurrentState()
	if !ok {
		return domain.ErrWorkerNotStarted
	}
	if state == domain.MinerStateExit {
		return domain.ErrWorkerExited
	}
	return ctx.Err()
}

// campaignWindow derives the active and upcoming flags for now.
// A campaign without an end time never expires.
func campaignWindow(c domain.Campaign, now time.Time) (active, upcoming bool) {
	if !c.StartsAt.IsZero() && now.Before(c.StartsAt) {
		return false, true
	}
	if !c.EndsAt.IsZero() && !now.Before(c.EndsAt) {
		return false, false
	}
	return true, false
}

func copyProgress(p domain.Progress) domain.Progress {
	var out domain.Progress
	if p.Campaign != nil {
		c := *p.Campaign
		out.Campaign = &c
	}
	if p.Drop != nil {
		d := *p.Drop
		out.Drop = &d
	}
	return out
}
