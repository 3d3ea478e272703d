// Package input defines the closed vocabularies of mouse buttons and keyboard
// modifiers that may appear in a camera control mapping.
package input

// KeyboardModifier is a keyboard key held while pressing a mouse button.
type KeyboardModifier int

const (
	Shift KeyboardModifier = iota
	Control
	Alt
)

var modifierNames = [...]string{
	Shift:   "shift",
	Control: "control",
	Alt:     "alt",
}

// ParseKeyboardModifier returns the modifier whose setting name is exactly name.
// Matching is case-sensitive and performs no trimming.
func ParseKeyboardModifier(name string) (KeyboardModifier, bool) {
	for i, n := range modifierNames {
		if n == name {
			return KeyboardModifier(i), true
		}
	}

	return 0, false
}

// String returns the setting name of the modifier.
func (m KeyboardModifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return unknownName
	}

	return modifierNames[m]
}

// ModifierNames returns all modifier setting names in declaration order.
func ModifierNames() []string {
	return append([]string(nil), modifierNames[:]...)
}

// MouseButton is a physical mouse button. The zero value is Left.
type MouseButton int

const (
	Left MouseButton = iota
	Right
	Middle
	Back
	Forward
)

var mouseButtonNames = [...]string{
	Left:    "left",
	Right:   "right",
	Middle:  "middle",
	Back:    "back",
	Forward: "forward",
}

// ParseMouseButton returns the button whose setting name is exactly name.
func ParseMouseButton(name string) (MouseButton, bool) {
	for i, n := range mouseButtonNames {
		if n == name {
			return MouseButton(i), true
		}
	}

	return Left, false
}

// String returns the setting name of the button.
func (b MouseButton) String() string {
	if b < 0 || int(b) >= len(mouseButtonNames) {
		return unknownName
	}

	return mouseButtonNames[b]
}

// MouseButtonNames returns all button setting names in declaration order.
func MouseButtonNames() []string {
	return append([]string(nil), mouseButtonNames[:]...)
}

const unknownName = "unknown"
