package ui

// FocusManager tracks and rotates focus across the inputs of a screen.
// OnChange runs whenever the focused id changes, so screens can blur and
// focus the underlying bubbles.
type FocusManager struct {
	Current  string   // id of the focused input
	Order    []string // tab order
	OnChange func(from, to string)
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next moves focus forward, wrapping at the end, and returns the new id.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.Index()
	var next int
	switch {
	case idx == -1 && delta < 0:
		next = len(f.Order) - 1
	case idx == -1:
		next = 0
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses id. It returns false when id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
