package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Corolla", 10, "Corolla"},
		{"Corolla", 7, "Corolla"},
		{"Corolla", 5, "Coro…"},
		{"Descrição longa", 6, "Descr…"},
		{"abc", 0, ""},
		{"abc", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadVisual(t *testing.T) {
	if got := PadRightVisual("ção", 5); got != "ção  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadLeftVisual("7", 3); got != "  7" {
		t.Errorf("PadLeftVisual = %q", got)
	}
	if got := PadRightVisual("Volkswagen", 5); got != "Volk…" {
		t.Errorf("PadRightVisual truncates: %q", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		ratio float64
		width int
		want  string
	}{
		{1, 4, "████"},
		{0.5, 4, "██"},
		{0.25, 3, "▊"},
		{0.001, 10, "▏"},
		{0, 10, ""},
		{2, 2, "██"},
		{1, 0, ""},
	}
	for _, tt := range tests {
		if got := Bar(tt.ratio, tt.width); got != tt.want {
			t.Errorf("Bar(%v, %d) = %q, want %q", tt.ratio, tt.width, got, tt.want)
		}
	}
}
