package model

// -----------------------------------------------------------------------------
// Instruments
// -----------------------------------------------------------------------------

// Tick is one instrument's latest known field set as pushed by the backend.
// Pointer-typed fields are optional: nil means the value is not yet known,
// which is distinct from zero.
type Tick struct {
	Symbol   string `json:"symbol"`   // Trading symbol (e.g., "RELIANCE")
	Exchange string `json:"exchange"` // Exchange code (e.g., "NSE")
	Token    int64  `json:"token,omitempty"`

	CMP     *float64 `json:"cmp"`      // Current market price
	W52High *float64 `json:"w52_high"` // 52-week high
	W52Low  *float64 `json:"w52_low"`  // 52-week low
	DFL     *float64 `json:"dfl"`      // % distance of CMP from 52-week low
	DFH     *float64 `json:"dfh"`      // % distance of CMP from 52-week high
	DayLow  *float64 `json:"day_low"`
	DayHigh *float64 `json:"day_high"`
	DFDL    *float64 `json:"dfdl"` // % distance of CMP from day low
	DFDH    *float64 `json:"dfdh"` // % distance of CMP from day high
	Buyers  *float64 `json:"buyers"`
	Sellers *float64 `json:"sellers"`
	BSR     *float64 `json:"bsr"` // Buy quantity / sell quantity
	Change  *float64 `json:"change"`
	Volume  *float64 `json:"volume"`

	LastTradeTime string `json:"last_trade_time,omitempty"`
}

// Key returns the instrument identity used everywhere in the client.
func (t Tick) Key() string {
	return Key(t.Exchange, t.Symbol)
}

// Key joins exchange and symbol into the canonical instrument key.
// Case-sensitive, colon-joined, no normalization.
func Key(exchange, symbol string) string {
	return exchange + ":" + symbol
}

// -----------------------------------------------------------------------------
// Watchlists
// -----------------------------------------------------------------------------

// DefaultWatchlistID is the reserved, non-deletable watchlist.
const DefaultWatchlistID = "default"

// Entry is one watchlist membership. Entries are unique per
// (symbol, exchange) within a watchlist; order is display order.
type Entry struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// Key returns the instrument key this entry refers to.
func (e Entry) Key() string {
	return Key(e.Exchange, e.Symbol)
}

// Watchlist is a named, ordered collection of instrument memberships.
type Watchlist struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Symbols []Entry `json:"symbols"`
}

// Contains reports whether the watchlist already holds the given membership.
func (w Watchlist) Contains(symbol, exchange string) bool {
	for _, e := range w.Symbols {
		if e.Symbol == symbol && e.Exchange == exchange {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Search
// -----------------------------------------------------------------------------

// Instrument is one candidate match from the symbol search endpoint.
// The derivative fields are present only for F&O segments.
type Instrument struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
	Name     string `json:"name"`

	Category string   `json:"category,omitempty"` // e.g., "FUT", "OPT"
	Expiry   string   `json:"expiry,omitempty"`
	Strike   *float64 `json:"strike,omitempty"`
	LotSize  *int     `json:"lot_size,omitempty"`
}
