package entity

import (
	"github.com/google/uuid"

	"github.com/pvaldes/bugdungeon/internal/combat"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/item"
)

// DefaultName is used when an actor is created with a blank name.
const DefaultName = "Recruit"

// State represents the actor's discrete state.
type State int

const (
	// StateActive - exploring normally.
	StateActive State = iota
	// StateInCombat - locked in an encounter.
	StateInCombat
	// StateResting - recovering in a safe room.
	StateResting
	// StateTransition - between levels; input is ignored.
	StateTransition
	// StateDead - health reached zero; terminal.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateInCombat:
		return "in_combat"
	case StateResting:
		return "resting"
	case StateTransition:
		return "transition"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Actor is the player: a stat block, an inventory, a grid position, a
// difficulty tier, and a discrete state. Health reaching zero moves the
// actor to StateDead, which is terminal.
type Actor struct {
	id    string
	name  string
	tier  Tier
	state State

	stats     *StatBlock
	inventory *Inventory

	x, y int
}

// NewActor creates a player seeded from the balance table. A blank name
// falls back to DefaultName.
func NewActor(name string, balance gamedata.Balance) *Actor {
	if name == "" {
		name = DefaultName
	}
	return &Actor{
		id:        uuid.NewString(),
		name:      name,
		tier:      TierTrainee,
		state:     StateActive,
		stats:     NewStatBlock(balance),
		inventory: NewInventory(balance.InventorySize),
	}
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() string { return a.id }

// Tier returns the current difficulty tier.
func (a *Actor) Tier() Tier { return a.tier }

// State returns the actor's discrete state.
func (a *Actor) State() State { return a.state }

// SetState transitions the actor's state. Dead is terminal: once
// entered, no other state can replace it.
func (a *Actor) SetState(state State) {
	if a.state == StateDead {
		return
	}
	a.state = state
}

// Stats returns the actor's stat block.
func (a *Actor) Stats() *StatBlock { return a.stats }

// Inventory returns the actor's inventory.
func (a *Actor) Inventory() *Inventory { return a.inventory }

// Position returns the actor's grid coordinates.
func (a *Actor) Position() (int, int) { return a.x, a.y }

// SetPosition moves the actor. Only successful moves call this.
func (a *Actor) SetPosition(x, y int) {
	a.x = x
	a.y = y
}

// AdvanceTier promotes the actor to the next tier and applies the tier
// power bonus. Returns false at the final tier.
func (a *Actor) AdvanceTier(balance gamedata.Balance) bool {
	next, ok := a.tier.Next()
	if !ok {
		return false
	}
	a.tier = next
	a.stats.IncreasePower(balance.TierPowerBonus)
	return true
}

// CanInteract reports whether the actor may interact with rooms: alive
// and either exploring or already in combat.
func (a *Actor) CanInteract() bool {
	if !a.IsAlive() {
		return false
	}
	return a.state == StateActive || a.state == StateInCombat
}

// HasItem reports whether the inventory holds an item with the name.
func (a *Actor) HasItem(name string) bool {
	return a.inventory.Has(name)
}

// AddToInventory adds an item, returning false when the pack is full.
func (a *Actor) AddToInventory(it item.Item) bool {
	return a.inventory.Add(it)
}

// =============================================================================
// combat.Combatant implementation
// =============================================================================

// GetName returns the actor's display name.
func (a *Actor) GetName() string { return a.name }

// IsAlive reports whether the actor has health remaining.
func (a *Actor) IsAlive() bool {
	return a.state != StateDead && a.stats.HP() > 0
}

// GetPower returns the power stat.
func (a *Actor) GetPower() int { return a.stats.Power() }

// TakeDamage applies incoming damage after defense mitigation, floored
// at the balance table's damage minimum, and returns the health
// actually lost. Reaching zero health moves the actor to StateDead.
func (a *Actor) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	mitigated := amount - a.stats.Defense()
	if floor := a.stats.balance.MinDamage; mitigated < floor {
		mitigated = floor
	}
	before := a.stats.HP()
	a.stats.ReduceHealth(mitigated)
	if a.stats.HP() == 0 {
		a.state = StateDead
	}
	return before - a.stats.HP()
}

// AddExperience awards experience, returning whether a level-up fired.
func (a *Actor) AddExperience(amount int) bool {
	return a.stats.AddExperience(amount)
}

// =============================================================================
// item.User implementation (remaining methods)
// =============================================================================

// GetHP returns current health.
func (a *Actor) GetHP() int { return a.stats.HP() }

// GetMaxHP returns maximum health.
func (a *Actor) GetMaxHP() int { return a.stats.MaxHP() }

// Heal restores health and returns the amount actually healed.
func (a *Actor) Heal(amount int) int {
	return a.stats.Heal(amount)
}

// FullHeal restores health to max.
func (a *Actor) FullHeal() {
	a.stats.FullHeal()
}

// RaiseMaxHealth adds to max and current health.
func (a *Actor) RaiseMaxHealth(amount int) {
	a.stats.RaiseMaxHealth(amount)
}

// IncreasePower raises the power stat.
func (a *Actor) IncreasePower(amount int) {
	a.stats.IncreasePower(amount)
}

// IncreaseDefense raises the defense stat.
func (a *Actor) IncreaseDefense(amount int) {
	a.stats.IncreaseDefense(amount)
}

// RecordTreasureFound counts a found treasure and awards its experience.
func (a *Actor) RecordTreasureFound() {
	a.stats.RecordTreasureFound()
}

// Ensure Actor implements the combat and item contracts
var (
	_ combat.Combatant = (*Actor)(nil)
	_ item.User        = (*Actor)(nil)
)
