package ui

import "strings"

// Screen identifies which view a route renders.
type Screen int

const (
	ScreenVehicles Screen = iota
	ScreenVehicleForm
	ScreenStatistics
	ScreenExercises
)

func (s Screen) String() string {
	switch s {
	case ScreenVehicles:
		return "Vehicles"
	case ScreenVehicleForm:
		return "VehicleForm"
	case ScreenStatistics:
		return "Statistics"
	case ScreenExercises:
		return "Exercises"
	default:
		return "Unknown"
	}
}

// Route is a parsed client path. VehicleID is set only for
// /vehicles/edit/:id.
type Route struct {
	Screen    Screen
	VehicleID string
}

// Route paths.
const (
	PathVehicles   = "/vehicles"
	PathNewVehicle = "/vehicles/new"
	PathStatistics = "/statistics"
	PathExercises  = "/exercises"
	editPrefix     = "/vehicles/edit/"
)

// EditVehiclePath returns the edit route for a vehicle.
func EditVehiclePath(id string) string {
	return editPrefix + id
}

// ParseRoute maps a path to a route. "/" and unknown paths resolve to the
// vehicle list.
func ParseRoute(path string) Route {
	p := strings.TrimSpace(path)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	switch p {
	case PathNewVehicle:
		return Route{Screen: ScreenVehicleForm}
	case PathStatistics:
		return Route{Screen: ScreenStatistics}
	case PathExercises:
		return Route{Screen: ScreenExercises}
	}
	if id := strings.TrimPrefix(p, editPrefix); id != p && id != "" && !strings.Contains(id, "/") {
		return Route{Screen: ScreenVehicleForm, VehicleID: id}
	}
	return Route{Screen: ScreenVehicles}
}

// Path renders the canonical path of the route.
func (r Route) Path() string {
	switch r.Screen {
	case ScreenVehicleForm:
		if r.VehicleID != "" {
			return EditVehiclePath(r.VehicleID)
		}
		return PathNewVehicle
	case ScreenStatistics:
		return PathStatistics
	case ScreenExercises:
		return PathExercises
	default:
		return PathVehicles
	}
}

// Section is the nav bar entry highlighted for the route. The form belongs
// to the vehicles section.
func (r Route) Section() Screen {
	if r.Screen == ScreenVehicleForm {
		return ScreenVehicles
	}
	return r.Screen
}
