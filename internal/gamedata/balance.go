// Package gamedata provides runtime access to embedded game content:
// the bug registry, the question bank, and the balance table.
package gamedata

// Balance holds every gameplay tunable in one immutable struct.
// It is built once at startup and passed by value into constructors;
// nothing mutates it at runtime.
type Balance struct {
	// Player starting stats
	InitialHealth    int
	InitialPower     int
	InitialDefense   int
	ExperienceToNext int
	InventorySize    int

	// Leveling curve
	ExperienceGrowth    float64 // Next threshold multiplier per level
	LevelUpHealthBonus  int
	LevelUpPowerBonus   int
	LevelUpDefenseBonus int
	TierPowerBonus      int // Power gained when advancing a difficulty tier

	// Experience awards
	XPPerRoomExplored   int
	XPPerEnemyDefeated  int
	XPPerTreasureFound  int
	XPPerSecretFound    int
	XPPerUnlock         int
	XPFlavorInteraction int

	// Combat
	MinDamage      int
	AttemptCap     int // Wrong-or-right answers allowed per encounter
	RoomTurnCap    int // Outer safety valve, independent of AttemptCap
	VictoryHealing int

	// Empty rooms
	RestHealCap      int
	SecretHealing    int
	SecretBaseChance float64
	SecretChanceStep float64
	SecretAttemptCap int
}

// DefaultBalance returns the standard balance table.
func DefaultBalance() Balance {
	return Balance{
		InitialHealth:    100,
		InitialPower:     10,
		InitialDefense:   5,
		ExperienceToNext: 100,
		InventorySize:    10,

		ExperienceGrowth:    1.5,
		LevelUpHealthBonus:  20,
		LevelUpPowerBonus:   5,
		LevelUpDefenseBonus: 3,
		TierPowerBonus:      10,

		XPPerRoomExplored:   10,
		XPPerEnemyDefeated:  25,
		XPPerTreasureFound:  15,
		XPPerSecretFound:    25,
		XPPerUnlock:         30,
		XPFlavorInteraction: 5,

		MinDamage:      1,
		AttemptCap:     5,
		RoomTurnCap:    10,
		VictoryHealing: 10,

		RestHealCap:      20,
		SecretHealing:    10,
		SecretBaseChance: 0.3,
		SecretChanceStep: 0.2,
		SecretAttemptCap: 3,
	}
}
