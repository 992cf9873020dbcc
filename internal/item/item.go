// Package item provides the inventory item variants: healing treasures
// and door-opening keys, sharing a common usage pipeline.
package item

// Kind identifies the item variant.
type Kind int

const (
	KindTreasure Kind = iota
	KindKey
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTreasure:
		return "treasure"
	case KindKey:
		return "key"
	default:
		return "unknown"
	}
}

// Rarity represents how precious an item is. Higher is rarer.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// ParseRarity converts a rarity name to a Rarity, defaulting to common.
func ParseRarity(name string) Rarity {
	switch name {
	case "uncommon":
		return RarityUncommon
	case "rare":
		return RarityRare
	case "epic":
		return RarityEpic
	case "legendary":
		return RarityLegendary
	default:
		return RarityCommon
	}
}

// User is the actor-side contract items need to apply their effects.
// entity.Actor implements this interface.
type User interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int
	Heal(amount int) int
	FullHeal()
	RaiseMaxHealth(amount int)
	IncreasePower(amount int)
	IncreaseDefense(amount int)
	AddExperience(amount int) bool
	RecordTreasureFound()
}

// Item is the interface all inventory items implement.
type Item interface {
	Name() string
	Description() string
	Value() int
	Rarity() Rarity
	Kind() Kind
	Consumable() bool
	UseCount() int
	MaxUses() int // -1 means unlimited
	CanBeUsed() bool
	Use(user User) UseResult
}

// UseResult reports what happened when an item was used.
type UseResult struct {
	Success  bool
	Consumed bool // The item retired itself and should leave the inventory
	Message  string
}

// =============================================================================
// Shared usage pipeline
// =============================================================================

// usage holds the fields and consumption bookkeeping every item shares.
// Variants embed it and hand their effect to run.
type usage struct {
	name        string
	description string
	value       int
	rarity      Rarity
	kind        Kind
	consumable  bool
	useCount    int
	maxUses     int // -1 = unlimited
	used        bool
}

// Name returns the item's display name.
func (u *usage) Name() string { return u.name }

// Description returns the item's flavor text.
func (u *usage) Description() string { return u.description }

// Value returns the item's gold value.
func (u *usage) Value() int { return u.value }

// Rarity returns the item's rarity tier.
func (u *usage) Rarity() Rarity { return u.rarity }

// Kind returns the item variant.
func (u *usage) Kind() Kind { return u.kind }

// Consumable reports whether the item retires after a successful use.
func (u *usage) Consumable() bool { return u.consumable }

// UseCount returns how many times the item has been used successfully.
func (u *usage) UseCount() int { return u.useCount }

// MaxUses returns the usage cap, or -1 for unlimited.
func (u *usage) MaxUses() int { return u.maxUses }

// CanBeUsed reports whether the item has uses left.
func (u *usage) CanBeUsed() bool {
	if u.used {
		return false
	}
	if u.maxUses >= 0 && u.useCount >= u.maxUses {
		return false
	}
	return true
}

// run drives the fixed use pipeline: eligibility check, variant effect,
// then usage accounting and the consumption policy. A failed effect
// never advances the use counter.
func (u *usage) run(user User, effect func(User) (bool, string)) UseResult {
	if !u.CanBeUsed() {
		return UseResult{Success: false, Message: u.name + " is spent and cannot be used again."}
	}

	ok, message := effect(user)
	if !ok {
		return UseResult{Success: false, Message: message}
	}

	u.useCount++
	if u.consumable || (u.maxUses >= 0 && u.useCount >= u.maxUses) {
		u.used = true
	}

	return UseResult{Success: true, Consumed: u.used, Message: message}
}
