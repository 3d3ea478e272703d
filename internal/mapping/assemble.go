package mapping

import (
	"camera-settings/internal/diagnostic"
	"camera-settings/internal/match"
	"camera-settings/internal/settings"
)

// Assemble consumes the six mapping slots from tree, in fixed order, and
// stores every mapping that parses into m. Slots that are absent or rejected
// keep their current value.
func Assemble(tree *settings.Tree, m *CameraControlMappings, r diagnostic.Reporter) {
	for _, s := range slots {
		raw, ok := tree.Take(s.setting)
		if !ok {
			continue
		}

		obj, ok := raw.(*settings.Tree)
		if !ok {
			r.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityError,
				Category:  diagnostic.CategoryFormat,
				Code:      CodeInvalidSlotFormat,
				Message:   "invalid format for camera control setting: " + s.setting,
				Slot:      s.setting,
				FieldPath: s.setting,
			})

			continue
		}

		if mm, ok := ParseMouseMapping(obj, s.setting, r); ok {
			m.set(s, mm)
		}
	}
}

// ReportResidual reports every key left in tree as an invalid setting, in
// the tree's key order.
func ReportResidual(tree *settings.Tree, r diagnostic.Reporter) {
	known := SettingNames()

	tree.Each(func(key string, _ any) {
		r.Report(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Category:    diagnostic.CategoryUnknownKey,
			Code:        CodeUnknownSetting,
			Message:     "invalid setting: " + key,
			FieldPath:   key,
			Suggestions: match.Suggest(key, known),
		})
	})
}

// Load builds the mapping table from tree, starting from the defaults.
// tree itself is left untouched.
func Load(tree *settings.Tree, r diagnostic.Reporter) CameraControlMappings {
	m := DefaultCameraControlMappings()

	work := tree.Clone()
	Assemble(work, &m, r)
	ReportResidual(work, r)

	return m
}

// LoadFile reads the settings file at path and builds the mapping table.
// An error means the file could not be loaded at all.
func LoadFile(path string, r diagnostic.Reporter) (CameraControlMappings, error) {
	tree, err := settings.LoadFile(path)
	if err != nil {
		return CameraControlMappings{}, err
	}

	return Load(tree, r), nil
}
