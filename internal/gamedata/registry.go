package gamedata

import (
	"errors"
	"math/rand"

	"github.com/pvaldes/bugdungeon/data"
)

// BugRegistry holds loaded bug definitions and provides lookup and
// spawning utilities.
type BugRegistry struct {
	bugs []data.BugDef
}

// NewBugRegistry creates a registry from loaded bug definitions.
func NewBugRegistry(bugs []data.BugDef) *BugRegistry {
	return &BugRegistry{bugs: bugs}
}

// LoadBugRegistry loads and creates a registry from the embedded bugs.json.
func LoadBugRegistry() (*BugRegistry, error) {
	bugs, err := data.LoadBugs()
	if err != nil {
		return nil, err
	}
	if len(bugs) == 0 {
		return nil, errors.New("no bugs loaded from bugs.json")
	}
	return NewBugRegistry(bugs), nil
}

// MustLoadBugRegistry loads a registry, panicking on error.
func MustLoadBugRegistry() *BugRegistry {
	registry, err := LoadBugRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a weighted-random bug among the tier's bugs.
// Bugs with higher spawnWeight are more likely to be selected. Returns
// nil when the tier has no spawnable bugs.
func (r *BugRegistry) SpawnRandom(tier string, rng *rand.Rand) *data.BugDef {
	pool := r.ForTier(tier)
	totalWeight := 0
	for _, b := range pool {
		totalWeight += b.SpawnWeight
	}
	if totalWeight <= 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(totalWeight)

	// Find which bug this roll corresponds to
	cumulative := 0
	for _, b := range pool {
		cumulative += b.SpawnWeight
		if roll < cumulative {
			return b
		}
	}

	// Fallback (shouldn't happen)
	return pool[0]
}

// GetByID returns the bug definition with the given ID, or nil if not found.
func (r *BugRegistry) GetByID(id string) *data.BugDef {
	for i := range r.bugs {
		if r.bugs[i].ID == id {
			return &r.bugs[i]
		}
	}
	return nil
}

// ForTier returns the bug definitions available at the given tier.
func (r *BugRegistry) ForTier(tier string) []*data.BugDef {
	var result []*data.BugDef
	for i := range r.bugs {
		if r.bugs[i].Tier == tier {
			result = append(result, &r.bugs[i])
		}
	}
	return result
}

// All returns all bug definitions.
func (r *BugRegistry) All() []data.BugDef {
	return r.bugs
}

// Count returns the number of bug types in the registry.
func (r *BugRegistry) Count() int {
	return len(r.bugs)
}
