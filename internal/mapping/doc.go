// Package mapping turns a loosely typed settings tree into the camera control
// mapping table, reporting every fragment it had to reject or ignore.
//
// A single bad field never aborts the load: the offending fragment is dropped,
// a diagnostic is reported, and processing continues with the next field or
// slot. At worst a mapping falls back to its default.
//
// # Schema Overview
//
//	{
//	  "cameraLookMapping":  {"mouseButton": "left", "modifiers": ["shift"]},
//	  "cameraLookMapping2": {"mouseButton": "back"},
//	  "cameraPanMapping":   {"mouseButton": "right"},
//	  "cameraPanMapping2":  {"mouseButton": "left", "modifiers": ["control", "alt"]},
//	  "cameraZoomMapping":  {"mouseButton": "middle"},
//	  "cameraZoomMapping2": {"mouseButton": "forward"}
//	}
//
// Every key is optional. Primary slots default to left (look), right (pan) and
// middle (zoom) without modifiers; secondary slots default to absent.
//
// # Pipeline
//
//  1. Assemble visits the six slots in fixed order (look, look2, pan, pan2,
//     zoom, zoom2), removing each key it finds and handing objects to
//     ParseMouseMapping.
//  2. ParseMouseMapping removes "mouseButton" and "modifiers" from the slot
//     object and reports whatever is left as invalid properties.
//  3. ReportResidual reports every top-level key nobody consumed.
//
// Load runs all three on a clone of the tree, so the caller's tree is never
// modified.
//
// # Modifiers
//
// A mapping holds at most MaxModifiers distinct modifiers in input order. Once
// the set is full the rest of the array is skipped with a single capacity
// diagnostic; duplicates are reported and do not use up a place.
package mapping
