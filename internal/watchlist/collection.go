// Package watchlist keeps the client's copy of the backend's watchlists.
// The backend owns persistence; every REST response is the new canonical
// state for the watchlist it describes.
package watchlist

import (
	"sync"

	"github.com/kitedesk/kitedesk/internal/model"
)

// Collection tracks all known watchlists plus which one is active. Exactly
// one watchlist is active at all times, falling back to "default" when the
// active one disappears.
type Collection struct {
	mu     sync.RWMutex
	order  []string // display order of watchlist IDs
	byID   map[string]model.Watchlist
	active string
}

// New creates an empty collection with "default" active.
func New() *Collection {
	return &Collection{
		byID:   make(map[string]model.Watchlist),
		active: model.DefaultWatchlistID,
	}
}

// SetAll replaces every watchlist with the given canonical set, as delivered
// by an initial_data frame. The active selection survives if its ID is still
// present, otherwise it falls back to "default".
func (c *Collection) SetAll(lists []model.Watchlist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = c.order[:0]
	c.byID = make(map[string]model.Watchlist, len(lists))
	for _, wl := range lists {
		if _, ok := c.byID[wl.ID]; !ok {
			c.order = append(c.order, wl.ID)
		}
		c.byID[wl.ID] = wl
	}

	if _, ok := c.byID[c.active]; !ok {
		c.active = model.DefaultWatchlistID
	}
}

// Apply upserts a single watchlist from a REST response, replacing the prior
// local copy wholesale.
func (c *Collection) Apply(wl model.Watchlist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[wl.ID]; !ok {
		c.order = append(c.order, wl.ID)
	}
	c.byID[wl.ID] = wl
}

// Remove forgets a watchlist after a successful delete. The "default"
// watchlist is never removed; deleting the active one activates "default".
func (c *Collection) Remove(id string) {
	if id == model.DefaultWatchlistID {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.active == id {
		c.active = model.DefaultWatchlistID
	}
}

// All returns the watchlists in display order.
func (c *Collection) All() []model.Watchlist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Watchlist, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get returns one watchlist by ID.
func (c *Collection) Get(id string) (model.Watchlist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	wl, ok := c.byID[id]
	return wl, ok
}

// Active returns the active watchlist. ok is false only before any state
// has been received.
func (c *Collection) Active() (model.Watchlist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	wl, ok := c.byID[c.active]
	return wl, ok
}

// ActiveID returns the active watchlist ID.
func (c *Collection) ActiveID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SetActive switches the active watchlist. Unknown IDs are rejected.
func (c *Collection) SetActive(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return false
	}
	c.active = id
	return true
}

// Contains reports whether a watchlist already holds (symbol, exchange).
// Callers check this before submitting an add, so duplicates are a no-op.
func (c *Collection) Contains(id, symbol, exchange string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wl, ok := c.byID[id]
	if !ok {
		return false
	}
	return wl.Contains(symbol, exchange)
}

// Len returns the number of watchlists.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
