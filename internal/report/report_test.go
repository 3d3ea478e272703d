package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-settings/internal/diagnostic"
	"camera-settings/internal/input"
	"camera-settings/internal/mapping"
)

func sample() (mapping.CameraControlMappings, diagnostic.Diagnostics) {
	m := mapping.DefaultCameraControlMappings()
	m.Look2 = &mapping.MouseMapping{Button: input.Back, Modifiers: mapping.Modifiers(input.Shift)}

	var diags diagnostic.Diagnostics
	diags.Report(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Message:     "invalid mouseButton property: Right",
		Slot:        mapping.SettingPanMapping,
		Suggestions: []string{"right"},
	})
	diags.Report(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Message:  "invalid setting: extraKey",
	})

	return m, diags
}

func TestPrinter_Print(t *testing.T) {
	m, diags := sample()

	var buf bytes.Buffer
	New(&buf, Options{Suggestions: true}).Print(m, diags)

	expected := "Camera controls\n" +
		"  look    left (cameraLookMapping)\n" +
		"  look 2  shift+back (cameraLookMapping2)\n" +
		"  pan     right (cameraPanMapping)\n" +
		"  zoom    middle (cameraZoomMapping)\n" +
		"\n" +
		"Diagnostics\n" +
		"  error   [cameraPanMapping] invalid mouseButton property: Right (did you mean \"right\"?)\n" +
		"  warning invalid setting: extraKey\n" +
		"\n" +
		"1 error, 1 warning\n"

	assert.Equal(t, expected, buf.String())
}

func TestPrinter_HidesSuggestions(t *testing.T) {
	_, diags := sample()

	var buf bytes.Buffer
	New(&buf, Options{}).Diagnostics(diags)

	assert.NotContains(t, buf.String(), "did you mean")
	assert.Contains(t, buf.String(), "invalid mouseButton property: Right\n")
	require.Equal(t, []string{"right"}, diags.Items[0].Suggestions, "caller's diagnostics are left alone")
}

func TestPrinter_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})

	p.Diagnostics(diagnostic.Diagnostics{})
	assert.Empty(t, buf.String())

	p.Print(mapping.DefaultCameraControlMappings(), diagnostic.Diagnostics{})
	assert.Contains(t, buf.String(), "\nsettings OK\n")
	assert.NotContains(t, buf.String(), "Diagnostics")
}

func TestPrinter_SummaryCounts(t *testing.T) {
	var diags diagnostic.Diagnostics
	for range 2 {
		diags.Report(diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: "w"})
	}

	var buf bytes.Buffer
	New(&buf, Options{}).Summary(diags)

	assert.Equal(t, "0 errors, 2 warnings\n", buf.String())
}

func TestPrinter_ColorKeepsText(t *testing.T) {
	m, diags := sample()

	var buf bytes.Buffer
	New(&buf, Options{Color: true, Suggestions: true}).Print(m, diags)

	assert.Contains(t, buf.String(), "shift+back")
	assert.Contains(t, buf.String(), "invalid setting: extraKey")
}

func TestDump(t *testing.T) {
	m, _ := sample()

	var buf bytes.Buffer
	Dump(&buf, m)

	out := buf.String()
	assert.Contains(t, out, "mapping.CameraControlMappings")
	assert.Contains(t, out, "Look2: (*mapping.MouseMapping)")
	assert.Contains(t, out, "Pan2: (*mapping.MouseMapping)(<nil>)")
}
