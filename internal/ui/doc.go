// Package ui is the terminal front end of the car fleet manager, built on
// Bubble Tea.
//
// Core abstractions:
//   - View: a screen or modal with its own model, update and view (Elm-style)
//   - AppModel: routes between screens, owns overlays, global keys and the status line
//   - OverlayStack: modals drawn above the current screen (delete confirmation)
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed leader sequences
//   - FocusManager: tab order across the inputs of a screen
//
// Screens talk to the API through FleetClient inside tea.Cmd functions and
// receive the results as typed messages carrying an Err field.
package ui
