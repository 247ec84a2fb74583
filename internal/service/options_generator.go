package service

import "fmt"

// DefaultDistractorCount is the number of wrong options offered next to the correct one.
const DefaultDistractorCount = 3

// OptionGenerator builds multiple choice option sets.
type OptionGenerator struct {
	rnd Random
}

// NewOptionGenerator creates a new option generator backed by rnd.
func NewOptionGenerator(rnd Random) *OptionGenerator {
	return &OptionGenerator{rnd: rnd}
}

// Generate returns exactly distractors+1 unique options in random order,
// containing correct exactly once. Distractors are drawn from pool; when the
// pool has too few distinct values, "Option N" placeholders fill the gap.
// A non-positive distractors means DefaultDistractorCount.
func (g *OptionGenerator) Generate(correct string, pool []string, distractors int) []string {
	if distractors <= 0 {
		distractors = DefaultDistractorCount
	}

	candidates := make([]string, 0, len(pool))
	for _, c := range pool {
		if c != correct {
			candidates = append(candidates, c)
		}
	}
	shuffle(g.rnd, candidates)

	// Pick wrong options.
	wrong := make([]string, 0, distractors)
	picked := make(map[string]bool, distractors)
	for _, c := range candidates {
		if len(wrong) >= distractors {
			break
		}
		if picked[c] {
			continue
		}
		picked[c] = true
		wrong = append(wrong, c)
	}

	for len(wrong) < distractors {
		wrong = append(wrong, fmt.Sprintf("Option %d", len(wrong)+1))
	}

	// A placeholder may collide with a real candidate or with the correct answer.
	options := make([]string, 0, distractors+1)
	seen := make(map[string]bool, distractors+1)
	for _, opt := range append([]string{correct}, wrong...) {
		if seen[opt] {
			continue
		}
		seen[opt] = true
		options = append(options, opt)
	}

	for n := len(options); len(options) < distractors+1; n++ {
		filler := fmt.Sprintf("Additional Option %d", n)
		if seen[filler] {
			continue
		}
		seen[filler] = true
		options = append(options, filler)
	}

	shuffle(g.rnd, options)
	return options
}
