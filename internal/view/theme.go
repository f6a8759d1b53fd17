package view

import "strings"

// DarkClass is the class the root wrapper carries in dark mode.
const DarkClass = "dark"

// Theme is the page's only piece of mutable view state. It is never stored;
// each toggle request carries the current value and gets back the next one.
type Theme struct {
	Dark bool
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	return Theme{Dark: !t.Dark}
}

// RootClass is the class attribute for the root wrapper.
func (t Theme) RootClass() string {
	if t.Dark {
		return DarkClass
	}
	return ""
}

// Value is the form value that round-trips through ParseTheme.
func (t Theme) Value() string {
	if t.Dark {
		return "true"
	}
	return "false"
}

// Icon is the glyph shown on the toggle button.
func (t Theme) Icon() string {
	if t.Dark {
		return "☾"
	}
	return "☀︎"
}

// ParseTheme reads a theme flag from a request value. Anything that is not a
// recognised "on" value means light mode.
func ParseTheme(v string) Theme {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "dark":
		return Theme{Dark: true}
	default:
		return Theme{}
	}
}

// Mode selects how the page wires its two interactive controls.
type Mode int

const (
	// ModeServer posts the theme toggle and contact form back to the server
	// with htmx.
	ModeServer Mode = iota
	// ModeStatic handles both controls in the browser, for exported builds
	// that have no server behind them.
	ModeStatic
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	default:
		return "server"
	}
}
