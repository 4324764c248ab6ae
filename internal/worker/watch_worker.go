package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DropsMiner_Go/internal/domain"
	"github.com/osse101/DropsMiner_Go/internal/logger"
	"github.com/osse101/DropsMiner_Go/internal/metrics"
	"github.com/osse101/DropsMiner_Go/internal/miner"
)

// WatchOptions configures a WatchWorker
type WatchOptions struct {
	SessionFile string
	Interval    time.Duration
	AutoClaim   bool
}

// WatchWorker simulates watching streams: every tick credits one minute to
// the first minable drop of the first active campaign and publishes the
// result to the tracker.
type WatchWorker struct {
	tracker     *miner.Tracker
	sessionFile string
	interval    time.Duration
	autoClaim   bool
	claims      *Pool

	mu        sync.Mutex
	started   bool
	lastState string
	shutdown  chan struct{}
	wg        sync.WaitGroup
}

// NewWatchWorker creates a worker publishing into tracker
func NewWatchWorker(tracker *miner.Tracker, opts WatchOptions) *WatchWorker {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &WatchWorker{
		tracker:     tracker,
		sessionFile: opts.SessionFile,
		interval:    interval,
		autoClaim:   opts.AutoClaim,
		claims:      NewPool(claimWorkers, claimQueueSize),
		shutdown:    make(chan struct{}),
	}
}

// Start loads the session, publishes the inventory and starts the watch loop.
// A missing session file is not an error; a malformed one is.
func (w *WatchWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgWatchWorkerStarting, "session_file", w.sessionFile, "interval", w.interval, "auto_claim", w.autoClaim)

	w.setState(ctx, domain.MinerStateInventoryFetch)

	session, err := miner.LoadSession(w.sessionFile)
	switch {
	case errors.Is(err, domain.ErrSessionFileNotFound):
		log.Warn(LogMsgSessionMissing, "path", w.sessionFile)
	case err != nil:
		w.setState(ctx, domain.MinerStateExit)
		return fmt.Errorf("failed to start watch worker: %w", err)
	default:
		if session.UserID != "" {
			w.tracker.Login(session.UserID)
		}
		log.Info(LogMsgSessionLoaded, "logged_in", session.UserID != "", "campaigns", len(session.Campaigns))
	}
	w.tracker.SetInventory(session.Campaigns)

	w.setState(ctx, domain.MinerStateGamesUpdate)
	log.Info(LogMsgGamesUpdated, "games", activeGames(w.tracker.Inventory()))

	w.setState(ctx, domain.MinerStateChannelSwitch)
	w.refresh(ctx)

	w.claims.Start()
	w.wg.Add(1)
	go w.loop()

	return nil
}

func (w *WatchWorker) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	ctx := context.Background()
	for {
		select {
		case <-ticker.C:
			w.Tick(ctx)
		case <-w.shutdown:
			return
		}
	}
}

// Tick credits one watched minute. With nothing to mine the worker goes IDLE
// and the progress view is cleared.
func (w *WatchWorker) Tick(ctx context.Context) {
	log := logger.FromContext(ctx)

	if w.autoClaim {
		w.queueClaims(ctx)
	}

	campaign, drop, ok := nextDrop(w.tracker.Inventory())
	if !ok {
		w.goIdle(ctx)
		return
	}

	updated, ok := w.tracker.UpdateDrop(campaign.ID, drop.ID, func(d *domain.Drop) {
		d.CurrentMinutes++
		if d.RemainingMinutes() == 0 {
			d.CanClaim = true
		}
	})
	if !ok {
		// Inventory was replaced between the read and the update
		return
	}
	metrics.WatchedMinutes.WithLabelValues(campaign.Game.Name).Inc()

	watched, _ := findDrop(updated, drop.ID)
	w.tracker.SetProgress(miner.DescribeProgress(updated, watched))
	w.setState(ctx, domain.MinerStateMining)

	log.Debug(LogMsgMinuteWatched,
		"campaign", updated.Name,
		"drop", watched.RewardsText(),
		"current_minutes", watched.CurrentMinutes,
		"required_minutes", watched.RequiredMinutes)

	if watched.CanClaim {
		log.Info(LogMsgDropClaimable, "campaign", updated.Name, "drop", watched.RewardsText())
		if w.autoClaim {
			w.enqueueClaim(ctx, updated, watched)
		}
	}
}

// refresh publishes what would be mined next without crediting any time
func (w *WatchWorker) refresh(ctx context.Context) {
	campaign, drop, ok := nextDrop(w.tracker.Inventory())
	if !ok {
		w.goIdle(ctx)
		return
	}
	w.tracker.SetProgress(miner.DescribeProgress(campaign, drop))
	w.setState(ctx, domain.MinerStateMining)
}

func (w *WatchWorker) goIdle(ctx context.Context) {
	w.tracker.ClearProgress()
	if w.setState(ctx, domain.MinerStateIdle) {
		logger.FromContext(ctx).Info(LogMsgNothingToMine)
	}
}

// queueClaims picks up drops that completed while auto-claim could not run
func (w *WatchWorker) queueClaims(ctx context.Context) {
	for _, c := range w.tracker.Inventory() {
		for _, d := range c.Drops {
			if d.CanClaim && !d.IsClaimed {
				w.enqueueClaim(ctx, c, d)
			}
		}
	}
}

func (w *WatchWorker) enqueueClaim(ctx context.Context, c domain.Campaign, d domain.Drop) {
	job := &claimJob{tracker: w.tracker, campaignID: c.ID, dropID: d.ID, game: c.Game.Name}
	if !w.claims.Enqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgClaimQueueFull, "campaign", c.Name, "drop", d.ID)
	}
}

// setState records state and reports whether it changed
func (w *WatchWorker) setState(ctx context.Context, state domain.MinerState) bool {
	name := state.String()

	w.mu.Lock()
	previous := w.lastState
	w.lastState = name
	w.mu.Unlock()

	w.tracker.SetState(state)
	metrics.SetMinerState(previous, name)

	if previous == name {
		return false
	}
	logger.FromContext(ctx).Info(LogMsgStateChanged, "from", previous, "to", name)
	return true
}

// Shutdown stops the watch loop, finishes queued claims and marks the worker EXIT
func (w *WatchWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWatchWorkerStopping)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		w.claims.Stop()
		close(done)
	}()

	var err error
	select {
	case <-done:
		log.Info(LogMsgWatchWorkerStopped)
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimedOut)
		err = ctx.Err()
	}

	w.setState(ctx, domain.MinerStateExit)
	return err
}

// claimJob claims one completed drop
type claimJob struct {
	tracker    *miner.Tracker
	campaignID string
	dropID     string
	game       string
}

func (j *claimJob) Process(ctx context.Context) error {
	claimed := false
	updated, ok := j.tracker.UpdateDrop(j.campaignID, j.dropID, func(d *domain.Drop) {
		if d.CanClaim && !d.IsClaimed {
			d.IsClaimed = true
			d.CanClaim = false
			claimed = true
		}
	})
	if !ok {
		return fmt.Errorf("%w: %s/%s", domain.ErrDropNotFound, j.campaignID, j.dropID)
	}
	if !claimed {
		return nil
	}

	metrics.DropsClaimed.WithLabelValues(j.game).Inc()
	drop, _ := findDrop(updated, j.dropID)
	logger.FromContext(ctx).Info(LogMsgDropClaimed, "campaign", updated.Name, "drop", drop.RewardsText())
	return nil
}

// nextDrop returns the first minable drop of the first active campaign, in inventory order
func nextDrop(campaigns []domain.Campaign) (domain.Campaign, domain.Drop, bool) {
	for _, c := range campaigns {
		if !c.Active {
			continue
		}
		for _, d := range c.Drops {
			if d.Minable() {
				return c, d, true
			}
		}
	}
	return domain.Campaign{}, domain.Drop{}, false
}

func findDrop(c domain.Campaign, dropID string) (domain.Drop, bool) {
	for _, d := range c.Drops {
		if d.ID == dropID {
			return d, true
		}
	}
	return domain.Drop{}, false
}

// activeGames lists the distinct games of active campaigns in inventory order
func activeGames(campaigns []domain.Campaign) []string {
	seen := make(map[string]struct{})
	var games []string
	for _, c := range campaigns {
		if !c.Active {
			continue
		}
		if _, ok := seen[c.Game.Name]; ok {
			continue
		}
		seen[c.Game.Name] = struct{}{}
		games = append(games, c.Game.Name)
	}
	return games
}
