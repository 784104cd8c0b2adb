package api

import (
	"context"
	"net/http"
	"net/url"

	"carfleet/internal/fleet"
)

const (
	vehiclesRoute = "/api/v1/vehicles"
	vehicleRoute  = "/api/v1/vehicles/{id}"
	searchRoute   = "/api/v1/vehicles/search"
)

func vehiclePath(id string) string {
	return vehiclesRoute + "/" + url.PathEscape(id)
}

// ListVehicles fetches the whole collection.
func (c *Client) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	var out []fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodGet, route: vehiclesRoute, path: vehiclesRoute, schema: "vehicleList", out: &out})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetVehicle fetches one vehicle by id.
func (c *Client) GetVehicle(ctx context.Context, id string) (fleet.Vehicle, error) {
	var out fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodGet, route: vehicleRoute, path: vehiclePath(id), schema: "vehicle", out: &out})
	return out, err
}

// CreateVehicle posts a new vehicle and returns it as stored.
func (c *Client) CreateVehicle(ctx context.Context, in fleet.VehicleInput) (fleet.Vehicle, error) {
	var out fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodPost, route: vehiclesRoute, path: vehiclesRoute, body: in, schema: "vehicle", out: &out})
	return out, err
}

// UpdateVehicle replaces every field of the vehicle (PUT).
func (c *Client) UpdateVehicle(ctx context.Context, id string, in fleet.VehicleInput) (fleet.Vehicle, error) {
	var out fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodPut, route: vehicleRoute, path: vehiclePath(id), body: in, schema: "vehicle", out: &out})
	return out, err
}

// PatchVehicle changes only the non-nil fields of patch (PATCH).
func (c *Client) PatchVehicle(ctx context.Context, id string, patch fleet.VehiclePatch) (fleet.Vehicle, error) {
	var out fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodPatch, route: vehicleRoute, path: vehiclePath(id), body: patch, schema: "vehicle", out: &out})
	return out, err
}

// DeleteVehicle removes the vehicle. Any response body is ignored.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, route: vehicleRoute, path: vehiclePath(id)})
}

// SearchVehicles runs a server-side search with the given criteria.
func (c *Client) SearchVehicles(ctx context.Context, criteria fleet.Criteria) ([]fleet.Vehicle, error) {
	var out []fleet.Vehicle
	err := c.do(ctx, call{method: http.MethodGet, route: searchRoute, path: searchRoute, query: criteria.Query(), schema: "vehicleList", out: &out})
	if err != nil {
		return nil, err
	}
	return out, nil
}
