package match

import "sort"

// Candidate is a known name scored against an input.
type Candidate struct {
	Name string

	// Score is the best of the raw and normalized Levenshtein similarity (0-1).
	Score float64

	// Normalized forms, kept for explanation output.
	NormalizedInput string
	NormalizedName  string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against input.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(input string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	inputNorm := NormalizeIdent(input)

	for _, name := range known {
		nameNorm := NormalizeIdent(name)

		score := LevenshteinNormalized(input, name)
		if normScore := LevenshteinNormalized(inputNorm, nameNorm); normScore > score {
			score = normScore
		}

		candidates = append(candidates, Candidate{
			Name:            name,
			Score:           score,
			NormalizedInput: inputNorm,
			NormalizedName:  nameNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous returns true if the top two candidates are within gap of each other.
func (c CandidateList) IsAmbiguous(gap float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < gap
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Name
	}

	return names
}

const (
	// DefaultThreshold is the minimum score a name needs to be suggested.
	DefaultThreshold = 0.6
	// ambiguityGap decides when the runner-up is offered alongside the best name.
	ambiguityGap = 0.05
)

// Suggest returns up to two known names close enough to input to be worth a
// "did you mean" hint. An exact match of input is never suggested.
func Suggest(input string, known []string) []string {
	ranked := RankCandidates(input, known).AboveThreshold(DefaultThreshold)

	filtered := ranked[:0:0]
	for _, cand := range ranked {
		if cand.Name != input {
			filtered = append(filtered, cand)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	if filtered.IsAmbiguous(ambiguityGap) {
		return filtered.Top(2).Names()
	}

	return filtered.Top(1).Names()
}
