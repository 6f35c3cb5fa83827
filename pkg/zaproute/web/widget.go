package web

import (
	"slices"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/state"
)

// WidgetKind is the type of an input widget.
type WidgetKind int

const (
	WidgetButton WidgetKind = iota // Fires on every press
	WidgetSelect                   // Drop-down, fires when the choice changes
	WidgetRadio                    // Exclusive choice, fires when the choice changes
	WidgetText                     // Single line text, fires when the text changes
)

func (k WidgetKind) GetName() string {
	switch k {
	case WidgetButton:
		return "button"
	case WidgetSelect:
		return "select"
	case WidgetRadio:
		return "radio"
	case WidgetText:
		return "text"
	default:
		return "unknown"
	}
}

// widget is an input drawn during a cycle, kept until the next one so a posted
// form can find its callback.
type widget struct {
	kind     WidgetKind
	label    string
	key      string
	options  []string
	value    string // Displayed choice or text
	onClick  func()
	onChange func(string)
}

// activate applies a posted value and runs the callback. It reports whether
// the callback ran.
func (w *widget) activate(value string, session *state.Session) bool {
	switch w.kind {
	case WidgetButton:
		if w.onClick != nil {
			w.onClick()
		}
		return w.onClick != nil
	case WidgetText:
		session.Set(widgetStateKey(w.key), value)
	case WidgetSelect, WidgetRadio:
		if !slices.Contains(w.options, value) {
			return false
		}
	default:
		return false
	}

	if value == w.value || w.onChange == nil {
		return false
	}
	w.onChange(value)
	return true
}

func widgetStateKey(key string) string {
	return constants.WidgetStatePrefix + key
}
