package api

import (
	"context"
	"net/http"

	"carfleet/internal/fleet"
)

const (
	statisticsRoute = "/api/v1/vehicles/statistics"
	byDecadeRoute   = statisticsRoute + "/by-decade"
	byBrandRoute    = statisticsRoute + "/by-brand"
	lastWeekRoute   = statisticsRoute + "/last-week"
	brandsRoute     = "/api/v1/vehicles/brands"
)

// Statistics fetches the sold and unsold totals.
func (c *Client) Statistics(ctx context.Context) (fleet.Statistics, error) {
	var out fleet.Statistics
	err := c.do(ctx, call{method: http.MethodGet, route: statisticsRoute, path: statisticsRoute, schema: "statistics", out: &out})
	return out, err
}

// VehiclesByDecade fetches the vehicle count per manufacturing decade.
func (c *Client) VehiclesByDecade(ctx context.Context) (fleet.DecadeBreakdown, error) {
	var out fleet.DecadeBreakdown
	err := c.do(ctx, call{method: http.MethodGet, route: byDecadeRoute, path: byDecadeRoute, schema: "byDecade", out: &out})
	return out, err
}

// VehiclesByBrand fetches the vehicle count per brand.
func (c *Client) VehiclesByBrand(ctx context.Context) (fleet.BrandBreakdown, error) {
	var out fleet.BrandBreakdown
	err := c.do(ctx, call{method: http.MethodGet, route: byBrandRoute, path: byBrandRoute, schema: "byBrand", out: &out})
	return out, err
}

// RegisteredLastWeek fetches the vehicles registered in the last seven days.
func (c *Client) RegisteredLastWeek(ctx context.Context) (fleet.RecentRegistrations, error) {
	var out fleet.RecentRegistrations
	err := c.do(ctx, call{method: http.MethodGet, route: lastWeekRoute, path: lastWeekRoute, schema: "lastWeek", out: &out})
	return out, err
}

// ListBrands fetches the brand reference list for the form selector.
func (c *Client) ListBrands(ctx context.Context) ([]fleet.Brand, error) {
	var out []fleet.Brand
	err := c.do(ctx, call{method: http.MethodGet, route: brandsRoute, path: brandsRoute, schema: "brandList", out: &out})
	if err != nil {
		return nil, err
	}
	return out, nil
}
