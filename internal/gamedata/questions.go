package gamedata

import (
	"errors"
	"math/rand"

	"github.com/pvaldes/bugdungeon/data"
)

// QuestionBank holds the authored question sets, grouped by tier.
type QuestionBank struct {
	byTier map[string][]data.QuestionDef
}

// NewQuestionBank creates a bank from loaded question sets.
func NewQuestionBank(sets []data.QuestionSetDef) *QuestionBank {
	byTier := make(map[string][]data.QuestionDef, len(sets))
	for _, set := range sets {
		byTier[set.Tier] = append(byTier[set.Tier], set.Questions...)
	}
	return &QuestionBank{byTier: byTier}
}

// LoadQuestionBank loads and creates a bank from the embedded questions.json.
func LoadQuestionBank() (*QuestionBank, error) {
	sets, err := data.LoadQuestionSets()
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, errors.New("no question sets loaded from questions.json")
	}
	return NewQuestionBank(sets), nil
}

// MustLoadQuestionBank loads a bank, panicking on error.
func MustLoadQuestionBank() *QuestionBank {
	bank, err := LoadQuestionBank()
	if err != nil {
		panic(err)
	}
	return bank
}

// ForTier returns every question authored for the given tier.
func (b *QuestionBank) ForTier(tier string) []data.QuestionDef {
	return b.byTier[tier]
}

// Draw returns up to n distinct questions for the tier, chosen at random.
// If the tier has fewer than n questions, all of them are returned.
func (b *QuestionBank) Draw(tier string, n int, rng *rand.Rand) []data.QuestionDef {
	pool := b.byTier[tier]
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n >= len(pool) {
		drawn := make([]data.QuestionDef, len(pool))
		copy(drawn, pool)
		return drawn
	}

	perm := rng.Perm(len(pool))
	drawn := make([]data.QuestionDef, 0, n)
	for _, idx := range perm[:n] {
		drawn = append(drawn, pool[idx])
	}
	return drawn
}

// Tiers returns the tier names present in the bank.
func (b *QuestionBank) Tiers() []string {
	tiers := make([]string, 0, len(b.byTier))
	for tier := range b.byTier {
		tiers = append(tiers, tier)
	}
	return tiers
}

// Count returns the total number of questions across all tiers.
func (b *QuestionBank) Count() int {
	total := 0
	for _, pool := range b.byTier {
		total += len(pool)
	}
	return total
}
