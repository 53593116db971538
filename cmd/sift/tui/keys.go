package tui

import (
	"fmt"
	"maps"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/sift/internal/config"
	"github.com/ruminaider/sift/internal/session"
)

// DefaultKeys maps bubbletea key strings to action names.
var DefaultKeys = map[string]string{
	"left":       "left",
	"right":      "right",
	"up":         "up",
	"down":       "down",
	"pgup":       "page-up",
	"pgdown":     "page-down",
	"home":       "home",
	"end":        "end",
	"backspace":  "delete-back",
	"delete":     "delete-forward",
	"tab":        "complete",
	"enter":      "accept",
	"alt+enter":  "accept-mark",
	"shift+tab":  "accept-input",
	"esc":        "cancel",
	"ctrl+left":  "word-left",
	"ctrl+right": "word-right",

	"ctrl+a": "home",
	"ctrl+e": "end",
	"ctrl+b": "left",
	"ctrl+f": "right",
	"ctrl+n": "down",
	"ctrl+p": "up",
	"ctrl+h": "delete-back",
	"ctrl+d": "delete-forward",
	"ctrl+k": "delete-to-end",
	"ctrl+u": "delete-to-start",
	"ctrl+w": "delete-word-back",
	"ctrl+j": "accept",
	"ctrl+c": "cancel",
	"ctrl+g": "cancel",
	"ctrl+y": config.PasteAction,

	"alt+b": "word-left",
	"alt+f": "word-right",
	"alt+g": "home",
	"alt+G": "end",
	"alt+h": "up",
	"alt+j": "page-down",
	"alt+k": "page-up",
	"alt+l": "down",
}

// binding is a resolved key: either a session command or the paste action.
type binding struct {
	cmd   session.Command
	paste bool
}

// KeyMap resolves key strings to commands.
type KeyMap struct {
	keys map[string]binding
}

// NewKeyMap layers overrides on top of DefaultKeys. An override naming an
// unknown action is an error.
func NewKeyMap(overrides map[string]string) (KeyMap, error) {
	all := maps.Clone(DefaultKeys)
	maps.Copy(all, overrides)

	km := KeyMap{keys: make(map[string]binding, len(all))}
	for key, action := range all {
		if action == config.PasteAction {
			km.keys[key] = binding{paste: true}
			continue
		}
		cmd, ok := session.Action(action)
		if !ok {
			return KeyMap{}, fmt.Errorf("key %q: unknown action %q", key, action)
		}
		km.keys[key] = binding{cmd: cmd}
	}
	return km, nil
}

// lookup resolves a key press. Unbound printable input becomes InsertText and
// a bracketed paste becomes Paste.
func (km KeyMap) lookup(msg tea.KeyMsg) (binding, bool) {
	if msg.Paste {
		return binding{cmd: session.Paste(string(msg.Runes))}, true
	}
	if b, ok := km.keys[msg.String()]; ok {
		return b, true
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return binding{}, false
		}
		return binding{cmd: session.InsertText(string(msg.Runes))}, true
	case tea.KeySpace:
		return binding{cmd: session.InsertText(" ")}, true
	}
	return binding{}, false
}
