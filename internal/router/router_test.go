package router

import (
	"context"
	"testing"
	"time"

	"github.com/kitedesk/kitedesk/internal/model"
	"github.com/kitedesk/kitedesk/internal/protocol"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

type fixture struct {
	events chan protocol.Event
	ticks  *tickstore.Store
	lists  *watchlist.Collection
	router *Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		events: make(chan protocol.Event, 16),
		ticks:  tickstore.New(),
		lists:  watchlist.New(),
	}
	f.router = New(f.events, f.ticks, f.lists, nil)
	f.router.Start(context.Background())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		f.router.Stop(ctx)
	})

	return f
}

// waitFor polls cond until it holds or the timeout expires.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func cmp(v float64) *float64 { return &v }

func TestRouter_InitialData(t *testing.T) {
	f := newFixture(t)

	f.events <- protocol.InitialData{
		Watchlists: []model.Watchlist{
			{ID: "default", Name: "Default", Symbols: []model.Entry{{Symbol: "RELIANCE", Exchange: "NSE"}}},
		},
		Ticks: []model.Tick{
			{Symbol: "RELIANCE", Exchange: "NSE", CMP: cmp(2950)},
		},
	}

	waitFor(t, func() bool { return f.ticks.Len() == 1 }, "snapshot not applied")
	if f.lists.Len() != 1 {
		t.Errorf("watchlists = %d, want 1", f.lists.Len())
	}
	if got := f.router.Stats().Replaced; got != 1 {
		t.Errorf("Replaced = %d, want 1", got)
	}
}

func TestRouter_InitialDataPartial(t *testing.T) {
	f := newFixture(t)

	f.events <- protocol.InitialData{
		Ticks: []model.Tick{{Symbol: "TCS", Exchange: "NSE", CMP: cmp(4100)}},
	}
	waitFor(t, func() bool { return f.ticks.Len() == 1 }, "ticks not applied")

	// A frame without a watchlists payload must not clear local watchlists.
	f.lists.SetAll([]model.Watchlist{{ID: "default", Name: "Default"}})
	f.events <- protocol.InitialData{
		Ticks: []model.Tick{{Symbol: "INFY", Exchange: "NSE", CMP: cmp(1650)}},
	}
	waitFor(t, func() bool { return f.router.Stats().Replaced == 2 }, "second snapshot not applied")

	if f.lists.Len() != 1 {
		t.Errorf("watchlists = %d, want 1", f.lists.Len())
	}
	if f.ticks.Len() != 1 {
		t.Errorf("ticks = %d, want 1 (snapshot replaces wholesale)", f.ticks.Len())
	}
}

func TestRouter_TickUpdateMerges(t *testing.T) {
	f := newFixture(t)

	f.events <- protocol.InitialData{Ticks: []model.Tick{
		{Symbol: "RELIANCE", Exchange: "NSE", CMP: cmp(2950)},
		{Symbol: "TCS", Exchange: "NSE", CMP: cmp(4100)},
	}}
	f.events <- protocol.TickUpdate{Ticks: []model.Tick{
		{Symbol: "RELIANCE", Exchange: "NSE", CMP: cmp(2960)},
	}}

	waitFor(t, func() bool { return f.router.Stats().Merged == 1 }, "update not applied")

	got, ok := f.ticks.Snapshot().Get("NSE", "RELIANCE")
	if !ok || *got.CMP != 2960 {
		t.Errorf("RELIANCE cmp = %v, want 2960", got.CMP)
	}
	if _, ok := f.ticks.Snapshot().Get("NSE", "TCS"); !ok {
		t.Error("TCS must survive a partial update")
	}
}

func TestRouter_EmptyUpdateIgnored(t *testing.T) {
	f := newFixture(t)

	f.events <- protocol.TickUpdate{}
	waitFor(t, func() bool { return f.router.Stats().Ignored == 1 }, "empty update not counted")

	if f.ticks.Len() != 0 {
		t.Errorf("ticks = %d, want 0", f.ticks.Len())
	}
	if f.router.Stats().Merged != 0 {
		t.Error("empty update must not count as a merge")
	}
}

func TestRouter_HeartbeatAndErrors(t *testing.T) {
	f := newFixture(t)

	f.events <- protocol.Heartbeat{}
	f.events <- protocol.ServerError{Code: "RATE_LIMIT", Message: "slow down"}

	waitFor(t, func() bool {
		s := f.router.Stats()
		return s.Ignored == 1 && s.ServerErrs == 1
	}, "events not counted")

	if got := f.router.Stats().Received; got != 2 {
		t.Errorf("Received = %d, want 2", got)
	}
}

func TestRouter_StopOnClosedChannel(t *testing.T) {
	events := make(chan protocol.Event)
	r := New(events, tickstore.New(), watchlist.New(), nil)
	r.Start(context.Background())

	close(events)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Stop(ctx) // must not hang
}
