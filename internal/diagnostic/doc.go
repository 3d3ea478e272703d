// Package diagnostic provides structured, ordered reports about settings
// fragments that were rejected or ignored while loading camera mappings.
//
// Key capabilities:
//   - Severity: error when a mapping fell back to its default, warning when only
//     a fragment was dropped
//   - Category and stable code for every diagnostic
//   - "Did you mean" suggestions for misspelled names
//   - Reporter sinks: an in-memory collector and a log-backed streamer
package diagnostic
