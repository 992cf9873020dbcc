package world

import "github.com/pvaldes/bugdungeon/internal/entity"

// RoomType identifies the room variant.
type RoomType int

const (
	RoomEmpty RoomType = iota
	RoomTreasure
	RoomEnemy
	RoomLocked
)

// String returns the room type name.
func (t RoomType) String() string {
	switch t {
	case RoomEmpty:
		return "empty"
	case RoomTreasure:
		return "treasure"
	case RoomEnemy:
		return "enemy"
	case RoomLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// ResultKind categorizes an interaction result for the caller's rendering.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultDialogue
	ResultCombat
	ResultLoot
	ResultUnlock
	ResultHeal
	ResultDamage
)

// String returns the result kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultDialogue:
		return "dialogue"
	case ResultCombat:
		return "combat"
	case ResultLoot:
		return "loot"
	case ResultUnlock:
		return "unlock"
	case ResultHeal:
		return "heal"
	case ResultDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Offer is a decision a room puts to the caller instead of resolving it
// internally. The caller answers by invoking the matching room method.
type Offer int

const (
	// OfferNone - nothing to decide.
	OfferNone Offer = iota
	// OfferSearch - the room hides a secret; call Search to look for it.
	OfferSearch
	// OfferRest - the room is safe; call Rest to recover health.
	OfferRest
)

// Result is the typed outcome of a room interaction.
type Result struct {
	Success bool
	Kind    ResultKind
	Offer   Offer
	Message string
}

// Room is the interface every room variant implements.
type Room interface {
	Name() string
	Description() string
	Type() RoomType
	IsVisited() bool
	VisitCount() int
	IsAccessible() bool
	SetAccessible(accessible bool)
	Interact(actor *entity.Actor) Result
}

// =============================================================================
// Shared interaction pipeline
// =============================================================================

// core holds the state every room shares and drives the fixed
// interaction pipeline: eligibility check, visit bookkeeping, then the
// variant's effect.
type core struct {
	name        string
	description string
	visited     bool
	visits      int
	accessible  bool
}

// newCore creates room core state. Rooms start accessible.
func newCore(name, description string) core {
	return core{
		name:        name,
		description: description,
		accessible:  true,
	}
}

// Name returns the room's display name.
func (c *core) Name() string { return c.name }

// Description returns the room's flavor text.
func (c *core) Description() string { return c.description }

// IsVisited reports whether the room has been entered at least once.
func (c *core) IsVisited() bool { return c.visited }

// VisitCount returns how many times the room has been interacted with.
func (c *core) VisitCount() int { return c.visits }

// IsAccessible reports whether the room accepts interactions.
func (c *core) IsAccessible() bool { return c.accessible }

// SetAccessible opens or seals the room.
func (c *core) SetAccessible(accessible bool) { c.accessible = accessible }

// interact runs the shared pipeline around a variant's effect. An
// ineligible interaction changes no state. The first visit marks the
// room visited and awards the exploration experience.
func (c *core) interact(actor *entity.Actor, effect func(*entity.Actor) Result) Result {
	if !c.accessible {
		return Result{Kind: ResultNone, Message: c.name + " is sealed shut."}
	}
	if actor == nil || !actor.CanInteract() {
		return Result{Kind: ResultNone, Message: "You are in no condition to do anything here."}
	}

	if !c.visited {
		c.visited = true
		c.visits++
		actor.Stats().RecordRoomExplored()
	} else {
		c.visits++
	}

	return effect(actor)
}
