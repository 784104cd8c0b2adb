package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands. Sequences are written
// with SPC for the leader: "SPC v" is space then v; "q" and "ctrl+c" are
// single keys.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	screenFilter map[string][]Screen // absent: every screen
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		screenFilter: make(map[string][]Screen),
	}
}

// Bind registers seq without a description, replacing any earlier binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers seq on every screen with a help description.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForScreens(seq, cmd, desc, nil)
}

// BindWithDescForScreens registers seq and limits its hint to screens.
// An empty screens list means every screen.
func (r *KeybindRegistry) BindWithDescForScreens(seq string, cmd tea.Cmd, desc string, screens []Screen) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(screens) > 0 {
		r.screenFilter[n] = screens
	}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists the next keys after currentSeq ("" means right after
// SPC) that apply on screen, mapped to their descriptions. A key that opens
// a longer sequence is shown as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, screen Screen) map[string]string {
	base := "SPC"
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		rest, ok := strings.CutPrefix(seq, base+" ")
		if cmd == nil || !ok || !r.appliesTo(seq, screen) {
			continue
		}
		next, _, _ := strings.Cut(rest, " ")
		switch desc := r.descriptions[seq]; {
		case r.HasPrefix(base + " " + next):
			out[next] = next + "…"
		case desc != "":
			out[next] = desc
		default:
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, screen Screen) bool {
	screens, ok := r.screenFilter[seq]
	if !ok {
		return true
	}
	for _, s := range screens {
		if s == screen {
			return true
		}
	}
	return false
}

// normalizeSeq rewrites "space" and " " as SPC so bindings may be written
// either way.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks the leader state and resolves keys against a registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // leader as reported by tea.KeyMsg.String()
	LeaderSeq     string   // leader in registry notation
	LeaderWaiting bool     // a sequence is in progress
	Buffer        []string // parts typed since the leader
}

// NewKeyHandler creates a handler with SPC as leader. Bubble Tea reports
// the space bar as " ".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Reset abandons any sequence in progress.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle resolves msg. When consumed is false the key belongs to the
// screen; otherwise cmd (possibly nil) is the bound command.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.Reset()
		return true, nil
	case s == h.LeaderKey && !h.LeaderWaiting:
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.Reset()
			return true, c
		}
		// an unknown sequence ends leader mode and swallows the key
		if !h.Registry.HasPrefix(seq) {
			h.Reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// It turns the leader hints of the current screen and sequence into key.Binding values.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	screen     Screen
}

// NewKeyMap creates a KeyMap for the given registry, handler, and screen.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, screen Screen) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		screen:     screen,
	}
}

// ShortHelp returns the leader hints sorted by key, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.screen)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancelar"),
	))
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) == 0 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}
