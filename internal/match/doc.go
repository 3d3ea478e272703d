// Package match ranks known setting names against a misspelled input so that
// diagnostics can offer "did you mean" hints.
//
// Key functions:
//   - NormalizeIdent: folds case and separators out of an identifier
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: scores every known name against an input
//   - Suggest: returns the closest names above a similarity threshold
package match
