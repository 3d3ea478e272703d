package mapping

import (
	"fmt"

	"camera-settings/internal/diagnostic"
	"camera-settings/internal/input"
	"camera-settings/internal/match"
	"camera-settings/internal/settings"
)

// Diagnostic codes reported while loading mappings.
const (
	CodeInvalidSlotFormat        = "invalid_slot_format"
	CodeMissingMouseButton       = "missing_mouse_button"
	CodeInvalidMouseButtonFormat = "invalid_mouse_button_format"
	CodeUnknownMouseButton       = "unknown_mouse_button"
	CodeInvalidModifiersFormat   = "invalid_modifiers_format"
	CodeTooManyModifiers         = "too_many_modifiers"
	CodeInvalidModifierEntry     = "invalid_modifier_entry"
	CodeUnknownModifier          = "unknown_modifier"
	CodeDuplicateModifier        = "duplicate_modifier"
	CodeUnknownProperty          = "unknown_property"
	CodeUnknownSetting           = "unknown_setting"
)

// ParseMouseMapping validates one slot object. The "mouseButton" and
// "modifiers" keys are removed from obj as they are consumed.
//
// It returns false, with the reason reported, when the button is missing or
// invalid; nothing else in obj is looked at in that case. Problems with
// modifiers or extra properties are reported but do not reject the mapping.
func ParseMouseMapping(obj *settings.Tree, slot string, r diagnostic.Reporter) (MouseMapping, bool) {
	var mm MouseMapping

	button, ok := parseMouseButton(obj, slot, r)
	if !ok {
		return mm, false
	}

	mm.Button = button

	if raw, ok := obj.Take(SettingModifiers); ok {
		list, isList := raw.([]any)
		if isList {
			parseModifiers(list, slot, &mm.Modifiers, r)
		} else {
			r.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Category:  diagnostic.CategoryFormat,
				Code:      CodeInvalidModifiersFormat,
				Message:   fmt.Sprintf("invalid format for %s setting", SettingModifiers),
				Slot:      slot,
				FieldPath: slot + "." + SettingModifiers,
			})
		}
	}

	obj.Each(func(key string, _ any) {
		r.Report(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Category:    diagnostic.CategoryUnknownKey,
			Code:        CodeUnknownProperty,
			Message:     "invalid property: " + key,
			Slot:        slot,
			FieldPath:   slot + "." + key,
			Suggestions: match.Suggest(key, slotPropertyNames),
		})
	})

	return mm, true
}

func parseMouseButton(obj *settings.Tree, slot string, r diagnostic.Reporter) (input.MouseButton, bool) {
	path := slot + "." + SettingMouseButton

	raw, ok := obj.Take(SettingMouseButton)
	if !ok {
		r.Report(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityError,
			Category:  diagnostic.CategoryMissing,
			Code:      CodeMissingMouseButton,
			Message:   fmt.Sprintf("mapping must include a %s value", SettingMouseButton),
			Slot:      slot,
			FieldPath: path,
		})

		return input.Left, false
	}

	name, ok := raw.(string)
	if !ok {
		r.Report(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityError,
			Category:  diagnostic.CategoryFormat,
			Code:      CodeInvalidMouseButtonFormat,
			Message:   fmt.Sprintf("invalid format for %s setting", SettingMouseButton),
			Slot:      slot,
			FieldPath: path,
		})

		return input.Left, false
	}

	button, ok := input.ParseMouseButton(name)
	if !ok {
		r.Report(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Category:    diagnostic.CategoryUnknownName,
			Code:        CodeUnknownMouseButton,
			Message:     fmt.Sprintf("invalid %s property: %s", SettingMouseButton, name),
			Slot:        slot,
			FieldPath:   path,
			Suggestions: match.Suggest(name, input.MouseButtonNames()),
		})

		return input.Left, false
	}

	return button, true
}

func parseModifiers(list []any, slot string, set *ModifierSet, r diagnostic.Reporter) {
	for i, item := range list {
		path := fmt.Sprintf("%s.%s[%d]", slot, SettingModifiers, i)

		if set.Full() {
			r.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Category:  diagnostic.CategoryCapacity,
				Code:      CodeTooManyModifiers,
				Message:   fmt.Sprintf("there can only be maximum of %d unique modifiers per mouse mapping", MaxModifiers),
				Slot:      slot,
				FieldPath: path,
			})

			return
		}

		name, ok := item.(string)
		if !ok {
			r.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Category:  diagnostic.CategoryFormat,
				Code:      CodeInvalidModifierEntry,
				Message:   fmt.Sprintf("invalid property found in %s array: %s", SettingModifiers, settings.Format(item)),
				Slot:      slot,
				FieldPath: path,
			})

			continue
		}

		mod, ok := input.ParseKeyboardModifier(name)
		if !ok {
			r.Report(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Category:    diagnostic.CategoryUnknownName,
				Code:        CodeUnknownModifier,
				Message:     "invalid keyboard modifier name: " + name,
				Slot:        slot,
				FieldPath:   path,
				Suggestions: match.Suggest(name, input.ModifierNames()),
			})

			continue
		}

		if !set.Add(mod) {
			r.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Category:  diagnostic.CategoryDuplicate,
				Code:      CodeDuplicateModifier,
				Message:   fmt.Sprintf("duplicate modifier found for %s setting: %s", slot, mod),
				Slot:      slot,
				FieldPath: path,
			})
		}
	}
}
