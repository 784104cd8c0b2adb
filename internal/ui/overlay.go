package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn in place of the screen body. While any overlay
// is open the topmost one receives every key.
type Overlay struct {
	View View
}

// OverlayStack holds the open overlays, last pushed on top.
type OverlayStack struct {
	items []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes the top overlay. It reports false when none is open.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Clear closes every overlay.
func (s *OverlayStack) Clear() {
	s.items = nil
}

func (s *OverlayStack) Len() int {
	return len(s.items)
}

// UpdateTop routes msg to the top overlay and stores the updated view. The
// caller runs the returned command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
