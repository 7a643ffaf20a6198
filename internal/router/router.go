package router

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kitedesk/kitedesk/internal/protocol"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

// Stats contains runtime statistics.
type Stats struct {
	Received   int64
	Replaced   int64 // initial_data tick snapshots applied
	Merged     int64 // tick_update batches applied
	Ignored    int64 // heartbeats, empty updates
	ServerErrs int64
}

// Router applies events to client state.
type Router struct {
	logger *slog.Logger

	input <-chan protocol.Event
	ticks *tickstore.Store
	lists *watchlist.Collection

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.RWMutex
	stats Stats
}

// New creates a router over the manager's event channel.
func New(input <-chan protocol.Event, ticks *tickstore.Store, lists *watchlist.Collection, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	return &Router{
		logger: logger,
		input:  input,
		ticks:  ticks,
		lists:  lists,
	}
}

// Start begins applying events.
func (r *Router) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.routeLoop()

	r.logger.Info("router started")
}

// Stop shuts the router down, waiting up to ctx for the loop to drain.
func (r *Router) Stop(ctx context.Context) {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("router stopped")
	case <-ctx.Done():
		r.logger.Warn("router stop timed out")
	}
}

// Stats returns current statistics.
func (r *Router) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

func (r *Router) routeLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case ev, ok := <-r.input:
			if !ok {
				r.logger.Debug("event channel closed")
				return
			}
			r.route(ev)
		}
	}
}

func (r *Router) route(ev protocol.Event) {
	r.mu.Lock()
	r.stats.Received++
	r.mu.Unlock()

	switch ev := ev.(type) {
	case protocol.InitialData:
		// A fresh snapshot is the new source of truth; each present payload
		// replaces the corresponding local state wholesale.
		if ev.Watchlists != nil {
			r.lists.SetAll(ev.Watchlists)
		}
		if ev.Ticks != nil {
			r.ticks.ReplaceAll(ev.Ticks)
			r.bump(func(s *Stats) { s.Replaced++ })
		}
		r.logger.Debug("initial data applied",
			"watchlists", len(ev.Watchlists),
			"ticks", len(ev.Ticks),
		)

	case protocol.TickUpdate:
		if len(ev.Ticks) == 0 {
			r.bump(func(s *Stats) { s.Ignored++ })
			return
		}
		r.ticks.MergeMany(ev.Ticks)
		r.bump(func(s *Stats) { s.Merged++ })

	case protocol.ServerError:
		r.bump(func(s *Stats) { s.ServerErrs++ })
		r.logger.Warn("server error frame", "code", ev.Code, "message", ev.Message)

	case protocol.Heartbeat:
		r.bump(func(s *Stats) { s.Ignored++ })
	}
}

func (r *Router) bump(f func(*Stats)) {
	r.mu.Lock()
	f(&r.stats)
	r.mu.Unlock()
}
