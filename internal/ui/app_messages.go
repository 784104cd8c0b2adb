package ui

import (
	"carfleet/internal/exercise"
	"carfleet/internal/fleet"
)

// NavigateMsg switches to the screen for Path. A non-empty Notice replaces
// the status line after navigating.
type NavigateMsg struct {
	Path          string
	Notice        string
	NoticeIsError bool
}

// NoticeMsg replaces the status line.
type NoticeMsg struct {
	Text    string
	IsError bool
}

// ShowDeleteVehicleMsg asks for confirmation before deleting Vehicle.
type ShowDeleteVehicleMsg struct {
	Vehicle fleet.Vehicle
}

// DeleteVehicleMsg is sent when the user confirms a delete.
type DeleteVehicleMsg struct {
	ID string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// VehiclesLoadedMsg carries the result of fetching the full collection.
type VehiclesLoadedMsg struct {
	Vehicles []fleet.Vehicle
	Err      error
}

type VehicleDeletedMsg struct {
	ID  string
	Err error
}

// VehiclePatchedMsg carries the result of toggling the sold flag.
type VehiclePatchedMsg struct {
	Vehicle fleet.Vehicle
	Err     error
}

type BrandsLoadedMsg struct {
	Brands []fleet.Brand
	Err    error
}

// VehicleLoadedMsg carries the vehicle being edited. Token identifies the
// form that asked for it.
type VehicleLoadedMsg struct {
	Token   uint64
	ID      string
	Vehicle fleet.Vehicle
	Err     error
}

type VehicleSavedMsg struct {
	Token   uint64
	Vehicle fleet.Vehicle
	Err     error
}

// StatisticsLoadedMsg carries the joined statistics reads. Report is the
// zero value whenever Err is set.
type StatisticsLoadedMsg struct {
	Report fleet.Report
	Err    error
}

// Exercise results carry the Token of the screen that submitted them.
type VotingResultMsg struct {
	Token  uint64
	Result exercise.VotingResult
	Err    error
}

type BubbleSortResultMsg struct {
	Token  uint64
	Result exercise.BubbleSortResult
	Err    error
}

type FactorialResultMsg struct {
	Token  uint64
	Result exercise.FactorialResult
	Err    error
}

type MultiplesResultMsg struct {
	Token  uint64
	Result exercise.MultiplesResult
	Err    error
}
