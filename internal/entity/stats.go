// Package entity provides the player actor: stat block, inventory,
// tier, position, and discrete state.
package entity

import "github.com/pvaldes/bugdungeon/internal/gamedata"

// StatBlock holds the player's mutable counters with bounded arithmetic.
// All mutators silently ignore non-positive input; nothing here returns
// an error or panics.
type StatBlock struct {
	health           int
	maxHealth        int
	power            int
	defense          int
	level            int
	experience       int
	experienceToNext int

	roomsExplored   int
	enemiesDefeated int
	treasuresFound  int

	balance gamedata.Balance
}

// NewStatBlock creates a stat block seeded from the balance table.
func NewStatBlock(balance gamedata.Balance) *StatBlock {
	return &StatBlock{
		health:           balance.InitialHealth,
		maxHealth:        balance.InitialHealth,
		power:            balance.InitialPower,
		defense:          balance.InitialDefense,
		level:            1,
		experienceToNext: balance.ExperienceToNext,
		balance:          balance,
	}
}

// HP returns current health.
func (s *StatBlock) HP() int { return s.health }

// MaxHP returns maximum health.
func (s *StatBlock) MaxHP() int { return s.maxHealth }

// Power returns the power stat.
func (s *StatBlock) Power() int { return s.power }

// Defense returns the defense stat.
func (s *StatBlock) Defense() int { return s.defense }

// Level returns the current level.
func (s *StatBlock) Level() int { return s.level }

// Experience returns accumulated experience toward the next level.
func (s *StatBlock) Experience() int { return s.experience }

// ExperienceToNext returns the next level-up threshold.
func (s *StatBlock) ExperienceToNext() int { return s.experienceToNext }

// RoomsExplored returns how many rooms have been visited for the first time.
func (s *StatBlock) RoomsExplored() int { return s.roomsExplored }

// EnemiesDefeated returns how many enemies have been beaten.
func (s *StatBlock) EnemiesDefeated() int { return s.enemiesDefeated }

// TreasuresFound returns how many treasures have been found.
func (s *StatBlock) TreasuresFound() int { return s.treasuresFound }

// ReduceHealth lowers health, clamping at zero.
func (s *StatBlock) ReduceHealth(amount int) {
	if amount <= 0 {
		return
	}
	s.health -= amount
	if s.health < 0 {
		s.health = 0
	}
}

// Heal raises health, clamping at max, and returns the delta actually
// applied. Callers must message with the return value, not the request.
func (s *StatBlock) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if s.health+actual > s.maxHealth {
		actual = s.maxHealth - s.health
	}
	s.health += actual
	return actual
}

// FullHeal restores health to max.
func (s *StatBlock) FullHeal() {
	s.health = s.maxHealth
}

// RaiseMaxHealth adds to max health and current health alike.
func (s *StatBlock) RaiseMaxHealth(amount int) {
	if amount <= 0 {
		return
	}
	s.maxHealth += amount
	s.health += amount
}

// IncreasePower raises the power stat.
func (s *StatBlock) IncreasePower(amount int) {
	if amount <= 0 {
		return
	}
	s.power += amount
}

// IncreaseDefense raises the defense stat.
func (s *StatBlock) IncreaseDefense(amount int) {
	if amount <= 0 {
		return
	}
	s.defense += amount
}

// AddExperience accumulates experience and returns whether a level-up
// fired. At most one level-up triggers per call, even when the amount
// crosses two thresholds at once.
func (s *StatBlock) AddExperience(amount int) bool {
	if amount <= 0 {
		return false
	}
	s.experience += amount

	if s.experience < s.experienceToNext {
		return false
	}

	s.experience -= s.experienceToNext
	s.experienceToNext = int(float64(s.experienceToNext) * s.balance.ExperienceGrowth)
	s.level++
	s.maxHealth += s.balance.LevelUpHealthBonus
	s.health += s.balance.LevelUpHealthBonus
	s.power += s.balance.LevelUpPowerBonus
	s.defense += s.balance.LevelUpDefenseBonus
	return true
}

// IsCritical reports whether health is at or below a quarter of max.
func (s *StatBlock) IsCritical() bool {
	return s.health <= s.maxHealth/4
}

// RecordRoomExplored counts a first visit and awards its experience.
// Returns whether the award triggered a level-up.
func (s *StatBlock) RecordRoomExplored() bool {
	s.roomsExplored++
	return s.AddExperience(s.balance.XPPerRoomExplored)
}

// RecordEnemyDefeated counts a victory and awards its experience.
func (s *StatBlock) RecordEnemyDefeated() bool {
	s.enemiesDefeated++
	return s.AddExperience(s.balance.XPPerEnemyDefeated)
}

// RecordTreasureFound counts a treasure and awards its experience.
func (s *StatBlock) RecordTreasureFound() bool {
	s.treasuresFound++
	return s.AddExperience(s.balance.XPPerTreasureFound)
}
