package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kitedesk/kitedesk/internal/model"
)

// SearchInstruments searches instruments by free-text query. segment
// optionally narrows the result (e.g. "NFO-FUT"); empty means all.
// A missing payload is an empty result, not an error.
func (c *Client) SearchInstruments(ctx context.Context, q, segment string) ([]model.Instrument, error) {
	query := url.Values{}
	query.Set("q", q)
	if segment != "" {
		query.Set("segment", segment)
	}

	var resp struct {
		Results []model.Instrument `json:"results"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/stocks/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetStock fetches the current data for one instrument.
func (c *Client) GetStock(ctx context.Context, exchange, symbol string) (model.Tick, error) {
	var resp struct {
		Stock model.Tick `json:"stock"`
	}
	path := "/api/stocks/" + url.PathEscape(exchange) + "/" + url.PathEscape(symbol)
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return model.Tick{}, err
	}
	return resp.Stock, nil
}
