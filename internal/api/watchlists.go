package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/kitedesk/kitedesk/internal/model"
)

// watchlistEnvelope wraps single-watchlist responses.
type watchlistEnvelope struct {
	Watchlist model.Watchlist `json:"watchlist"`
}

// GetWatchlists fetches all watchlists. A missing payload is an empty
// result, not an error.
func (c *Client) GetWatchlists(ctx context.Context) ([]model.Watchlist, error) {
	var resp struct {
		Watchlists []model.Watchlist `json:"watchlists"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/watchlists", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Watchlists, nil
}

// GetWatchlist fetches one watchlist by ID.
func (c *Client) GetWatchlist(ctx context.Context, id string) (model.Watchlist, error) {
	var resp watchlistEnvelope
	if err := c.call(ctx, http.MethodGet, "/api/watchlists/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return model.Watchlist{}, err
	}
	return resp.Watchlist, nil
}

// CreateWatchlist creates a named watchlist and returns the canonical copy.
func (c *Client) CreateWatchlist(ctx context.Context, name string) (model.Watchlist, error) {
	body := map[string]string{"name": name}
	var resp watchlistEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/watchlists", nil, body, &resp); err != nil {
		return model.Watchlist{}, err
	}
	return resp.Watchlist, nil
}

// RenameWatchlist updates a watchlist's display name.
func (c *Client) RenameWatchlist(ctx context.Context, id, name string) (model.Watchlist, error) {
	body := map[string]string{"name": name}
	var resp watchlistEnvelope
	if err := c.call(ctx, http.MethodPut, "/api/watchlists/"+url.PathEscape(id), nil, body, &resp); err != nil {
		return model.Watchlist{}, err
	}
	return resp.Watchlist, nil
}

// DeleteWatchlist deletes a watchlist. The backend rejects deleting
// "default".
func (c *Client) DeleteWatchlist(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/watchlists/"+url.PathEscape(id), nil, nil, nil)
}

// AddSymbol adds a membership to a watchlist and returns the updated
// watchlist. Symbols are upper-cased before submission; exchange defaults
// to NSE.
func (c *Client) AddSymbol(ctx context.Context, id, symbol, exchange string) (model.Watchlist, error) {
	if exchange == "" {
		exchange = "NSE"
	}
	body := model.Entry{
		Symbol:   strings.ToUpper(symbol),
		Exchange: strings.ToUpper(exchange),
	}
	var resp watchlistEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/watchlists/"+url.PathEscape(id)+"/symbols", nil, body, &resp); err != nil {
		return model.Watchlist{}, err
	}
	return resp.Watchlist, nil
}

// RemoveSymbol removes a membership from a watchlist and returns the
// updated watchlist.
func (c *Client) RemoveSymbol(ctx context.Context, id, symbol, exchange string) (model.Watchlist, error) {
	if exchange == "" {
		exchange = "NSE"
	}
	query := url.Values{}
	query.Set("symbol", strings.ToUpper(symbol))
	query.Set("exchange", strings.ToUpper(exchange))

	var resp watchlistEnvelope
	if err := c.call(ctx, http.MethodDelete, "/api/watchlists/"+url.PathEscape(id)+"/symbols", query, nil, &resp); err != nil {
		return model.Watchlist{}, err
	}
	return resp.Watchlist, nil
}
