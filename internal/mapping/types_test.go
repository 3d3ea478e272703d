package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-settings/internal/input"
)

func TestModifierSet(t *testing.T) {
	var s ModifierSet

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Full())
	assert.Empty(t, s.Slice())

	assert.True(t, s.Add(input.Alt))
	assert.False(t, s.Add(input.Alt), "duplicate must not be added")
	assert.True(t, s.Add(input.Shift))
	assert.True(t, s.Contains(input.Shift))
	assert.False(t, s.Contains(input.Control))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Add(input.Control))
	assert.True(t, s.Full())
	assert.False(t, s.Add(input.Shift))
	assert.Equal(t, []input.KeyboardModifier{input.Alt, input.Shift, input.Control}, s.Slice())
}

func TestModifiers_SkipsDuplicates(t *testing.T) {
	s := Modifiers(input.Shift, input.Shift, input.Alt)

	assert.Equal(t, []input.KeyboardModifier{input.Shift, input.Alt}, s.Slice())
	assert.Equal(t, Modifiers(input.Shift, input.Alt), s)
}

func TestModifierSet_SliceIsCopy(t *testing.T) {
	s := Modifiers(input.Shift)
	out := s.Slice()
	out[0] = input.Alt

	assert.True(t, s.Contains(input.Shift))
	assert.False(t, s.Contains(input.Alt))
}

func TestMouseMapping_String(t *testing.T) {
	tests := []struct {
		name     string
		mapping  MouseMapping
		expected string
	}{
		{"button only", MouseMapping{Button: input.Middle}, "middle"},
		{"one modifier", MouseMapping{Button: input.Back, Modifiers: Modifiers(input.Control)}, "control+back"},
		{"input order kept", MouseMapping{Button: input.Right, Modifiers: Modifiers(input.Alt, input.Shift)}, "alt+shift+right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mapping.String())
		})
	}
}

func TestDefaultCameraControlMappings(t *testing.T) {
	m := DefaultCameraControlMappings()

	assert.Equal(t, MouseMapping{Button: input.Left}, m.Look)
	assert.Equal(t, MouseMapping{Button: input.Right}, m.Pan)
	assert.Equal(t, MouseMapping{Button: input.Middle}, m.Zoom)
	assert.Nil(t, m.Look2)
	assert.Nil(t, m.Pan2)
	assert.Nil(t, m.Zoom2)
}

func TestCameraControlMappings_Accessors(t *testing.T) {
	m := DefaultCameraControlMappings()
	m.set(slots[3], MouseMapping{Button: input.Forward})
	m.set(slots[4], MouseMapping{Button: input.Back, Modifiers: Modifiers(input.Shift)})

	assert.Equal(t, input.Left, m.Primary(Look).Button)
	assert.Equal(t, input.Right, m.Primary(Pan).Button)
	assert.Equal(t, "shift+back", m.Primary(Zoom).String())

	assert.Nil(t, m.Secondary(Look))
	require.NotNil(t, m.Secondary(Pan))
	assert.Equal(t, input.Forward, m.Secondary(Pan).Button)
	assert.Same(t, m.Pan2, m.Secondary(Pan))
	assert.Nil(t, m.Secondary(Zoom))
}

func TestCameraControlMappings_Bindings(t *testing.T) {
	m := DefaultCameraControlMappings()
	m.Look2 = &MouseMapping{Button: input.Back}

	bindings := m.Bindings()
	require.Len(t, bindings, 4)

	assert.Equal(t, Binding{Setting: SettingLookMapping, Control: Look, Mapping: m.Look}, bindings[0])
	assert.Equal(t, Binding{Setting: SettingLookMapping2, Control: Look, Secondary: true, Mapping: *m.Look2}, bindings[1])
	assert.Equal(t, SettingPanMapping, bindings[2].Setting)
	assert.Equal(t, SettingZoomMapping, bindings[3].Setting)
}

func TestCameraControlMappings_BindingsFollowControls(t *testing.T) {
	m := DefaultCameraControlMappings()
	m.Look2 = &MouseMapping{Button: input.Back}
	m.Pan2 = &MouseMapping{Button: input.Forward}
	m.Zoom2 = &MouseMapping{Button: input.Left}

	bindings := m.Bindings()
	require.Len(t, bindings, 6)

	settingsSeen := make([]string, len(bindings))
	for i, b := range bindings {
		settingsSeen[i] = b.Setting
		assert.Equal(t, Controls[i/2], b.Control)
		assert.Equal(t, i%2 == 1, b.Secondary)
	}

	assert.Equal(t, SettingNames(), settingsSeen)
}

func TestSettingNames(t *testing.T) {
	assert.Equal(t, []string{
		"cameraLookMapping", "cameraLookMapping2",
		"cameraPanMapping", "cameraPanMapping2",
		"cameraZoomMapping", "cameraZoomMapping2",
	}, SettingNames())
}

func TestControl_String(t *testing.T) {
	assert.Equal(t, "look", Look.String())
	assert.Equal(t, "pan", Pan.String())
	assert.Equal(t, "zoom", Zoom.String())
	assert.Equal(t, "unknown", Control(9).String())
	assert.Equal(t, []Control{Look, Pan, Zoom}, Controls)
}
