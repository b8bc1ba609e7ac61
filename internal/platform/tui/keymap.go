package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icy-tower/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// Terminals report presses and autorepeats but never releases, so a
// movement key counts as held for a short window after each report.
const (
	tapHold    = 300 * time.Millisecond // First press, covers the autorepeat delay
	repeatHold = 120 * time.Millisecond // Between autorepeats
)

// HeldKeys emulates held movement keys from key press reports.
type HeldKeys struct {
	lastSeen  map[core.Action]time.Time
	repeating map[core.Action]bool
}

// NewHeldKeys creates an empty held-key tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		lastSeen:  make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Press records a press of a at now. Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if last, ok := h.lastSeen[a]; ok && now.Sub(last) <= h.window(a) {
		h.repeating[a] = true
	} else {
		h.repeating[a] = false
	}
	h.lastSeen[a] = now

	if other := opposite(a); other != core.ActionNone {
		h.release(other)
	}
}

// Apply marks every still-held action on frame and forgets expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, last := range h.lastSeen {
		if now.Sub(last) > h.window(a) {
			h.release(a)
			continue
		}
		frame.Hold(a)
	}
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	last, ok := h.lastSeen[a]
	return ok && now.Sub(last) <= h.window(a)
}

func (h *HeldKeys) window(a core.Action) time.Duration {
	if h.repeating[a] {
		return repeatHold
	}
	return tapHold
}

func (h *HeldKeys) release(a core.Action) {
	delete(h.lastSeen, a)
	delete(h.repeating, a)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
