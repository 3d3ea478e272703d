package mapping

import (
	"strings"

	"camera-settings/internal/input"
)

// Setting names recognized in a settings file.
const (
	SettingLookMapping  = "cameraLookMapping"
	SettingLookMapping2 = "cameraLookMapping2"
	SettingPanMapping   = "cameraPanMapping"
	SettingPanMapping2  = "cameraPanMapping2"
	SettingZoomMapping  = "cameraZoomMapping"
	SettingZoomMapping2 = "cameraZoomMapping2"

	SettingMouseButton = "mouseButton"
	SettingModifiers   = "modifiers"
)

// MaxModifiers is the number of distinct modifiers a mapping can hold.
const MaxModifiers = 3

// ModifierSet is an insertion-ordered set of at most MaxModifiers distinct
// keyboard modifiers. The zero value is empty.
type ModifierSet struct {
	mods [MaxModifiers]input.KeyboardModifier
	n    int
}

// Modifiers builds a set from mods in order, skipping duplicates and anything
// past capacity.
func Modifiers(mods ...input.KeyboardModifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s.Add(m)
	}

	return s
}

// Add appends m and reports whether it was added. A full set or an m already
// present leaves the set unchanged.
func (s *ModifierSet) Add(m input.KeyboardModifier) bool {
	if s.Full() || s.Contains(m) {
		return false
	}

	s.mods[s.n] = m
	s.n++

	return true
}

// Contains reports whether m is in the set.
func (s ModifierSet) Contains(m input.KeyboardModifier) bool {
	for i := 0; i < s.n; i++ {
		if s.mods[i] == m {
			return true
		}
	}

	return false
}

// Full reports whether the set holds MaxModifiers modifiers.
func (s ModifierSet) Full() bool {
	return s.n == MaxModifiers
}

// Len returns the number of modifiers in the set.
func (s ModifierSet) Len() int {
	return s.n
}

// Slice returns the modifiers in insertion order.
func (s ModifierSet) Slice() []input.KeyboardModifier {
	return append([]input.KeyboardModifier(nil), s.mods[:s.n]...)
}

// MouseMapping is a mouse button pressed together with a set of held modifiers.
type MouseMapping struct {
	Button    input.MouseButton
	Modifiers ModifierSet
}

// String renders the mapping as "shift+alt+right".
func (m MouseMapping) String() string {
	parts := make([]string, 0, m.Modifiers.Len()+1)
	for _, mod := range m.Modifiers.Slice() {
		parts = append(parts, mod.String())
	}

	return strings.Join(append(parts, m.Button.String()), "+")
}

// Control is a camera action driven by mouse movement.
type Control int

const (
	Look Control = iota
	Pan
	Zoom
)

// String returns the lowercase control name.
func (c Control) String() string {
	switch c {
	case Look:
		return "look"
	case Pan:
		return "pan"
	case Zoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// Controls lists every control in display order.
var Controls = []Control{Look, Pan, Zoom}

// CameraControlMappings holds the primary and optional secondary mapping of
// every camera control.
type CameraControlMappings struct {
	Look  MouseMapping
	Look2 *MouseMapping
	Pan   MouseMapping
	Pan2  *MouseMapping
	Zoom  MouseMapping
	Zoom2 *MouseMapping
}

// DefaultCameraControlMappings returns look on the left button, pan on the
// right button and zoom on the middle button, without modifiers or secondary
// mappings.
func DefaultCameraControlMappings() CameraControlMappings {
	return CameraControlMappings{
		Look: MouseMapping{Button: input.Left},
		Pan:  MouseMapping{Button: input.Right},
		Zoom: MouseMapping{Button: input.Middle},
	}
}

// Primary returns the mandatory mapping of c.
func (m *CameraControlMappings) Primary(c Control) MouseMapping {
	return *m.primary(c)
}

// Secondary returns the optional mapping of c, or nil when absent.
func (m *CameraControlMappings) Secondary(c Control) *MouseMapping {
	return *m.secondary(c)
}

func (m *CameraControlMappings) primary(c Control) *MouseMapping {
	switch c {
	case Pan:
		return &m.Pan
	case Zoom:
		return &m.Zoom
	default:
		return &m.Look
	}
}

func (m *CameraControlMappings) secondary(c Control) **MouseMapping {
	switch c {
	case Pan:
		return &m.Pan2
	case Zoom:
		return &m.Zoom2
	default:
		return &m.Look2
	}
}

// Binding is one populated slot of the table.
type Binding struct {
	Setting   string
	Control   Control
	Secondary bool
	Mapping   MouseMapping
}

// Bindings returns every populated slot, control by control in Controls
// order, each primary followed by its secondary.
func (m *CameraControlMappings) Bindings() []Binding {
	out := make([]Binding, 0, len(slots))

	for _, c := range Controls {
		out = append(out, Binding{Setting: slotOf(c, false).setting, Control: c, Mapping: m.Primary(c)})

		if mm := m.Secondary(c); mm != nil {
			out = append(out, Binding{Setting: slotOf(c, true).setting, Control: c, Secondary: true, Mapping: *mm})
		}
	}

	return out
}

// slot ties a top-level setting to the table entry it fills.
type slot struct {
	setting   string
	control   Control
	secondary bool
}

// slots is the fixed processing order.
var slots = [...]slot{
	{SettingLookMapping, Look, false},
	{SettingLookMapping2, Look, true},
	{SettingPanMapping, Pan, false},
	{SettingPanMapping2, Pan, true},
	{SettingZoomMapping, Zoom, false},
	{SettingZoomMapping2, Zoom, true},
}

func slotOf(c Control, secondary bool) slot {
	for _, s := range slots {
		if s.control == c && s.secondary == secondary {
			return s
		}
	}

	return slots[0]
}

func (m *CameraControlMappings) set(s slot, mm MouseMapping) {
	if s.secondary {
		*m.secondary(s.control) = &mm
		return
	}

	*m.primary(s.control) = mm
}

// SettingNames returns the recognized top-level setting names in slot order.
func SettingNames() []string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.setting
	}

	return names
}

var slotPropertyNames = []string{SettingMouseButton, SettingModifiers}
