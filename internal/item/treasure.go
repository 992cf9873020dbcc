package item

import "fmt"

// BonusEffect is an optional secondary effect a treasure applies on use.
type BonusEffect int

const (
	BonusNone BonusEffect = iota
	BonusPower
	BonusDefense
	BonusExperience
	BonusFullRestore
	BonusLuck // Cosmetic only
)

// Bonus magnitudes applied on a successful treasure use.
const (
	bonusPowerAmount      = 5
	bonusDefenseAmount    = 3
	bonusExperienceAmount = 50
)

// String returns the bonus effect name.
func (b BonusEffect) String() string {
	switch b {
	case BonusNone:
		return "none"
	case BonusPower:
		return "power"
	case BonusDefense:
		return "defense"
	case BonusExperience:
		return "experience"
	case BonusFullRestore:
		return "restore"
	case BonusLuck:
		return "luck"
	default:
		return "unknown"
	}
}

// ParseBonusEffect converts a bonus effect name to a BonusEffect,
// defaulting to none.
func ParseBonusEffect(name string) BonusEffect {
	switch name {
	case "power":
		return BonusPower
	case "defense":
		return BonusDefense
	case "experience":
		return BonusExperience
	case "restore":
		return BonusFullRestore
	case "luck":
		return BonusLuck
	default:
		return BonusNone
	}
}

// Treasure is a consumable item that heals its user, optionally raising
// max health and applying one secondary bonus effect.
type Treasure struct {
	usage
	healingPower int
	overheal     bool
	bonus        BonusEffect
}

// NewTreasure creates a consumable treasure. Healing power is clamped to
// a minimum of 1.
func NewTreasure(name, description string, value int, rarity Rarity, healingPower int) *Treasure {
	if healingPower < 1 {
		healingPower = 1
	}
	return &Treasure{
		usage: usage{
			name:        name,
			description: description,
			value:       value,
			rarity:      rarity,
			kind:        KindTreasure,
			consumable:  true,
			maxUses:     1,
		},
		healingPower: healingPower,
	}
}

// SetOverheal allows the treasure to raise the user's max health past
// its cap before healing.
func (t *Treasure) SetOverheal(overheal bool) {
	t.overheal = overheal
}

// SetBonus sets the secondary effect applied on a successful use.
func (t *Treasure) SetBonus(bonus BonusEffect) {
	t.bonus = bonus
}

// HealingPower returns the configured healing amount.
func (t *Treasure) HealingPower() int { return t.healingPower }

// Bonus returns the configured secondary effect.
func (t *Treasure) Bonus() BonusEffect { return t.bonus }

// Use applies the treasure to the user. Using it at full health without
// overheal fails without consuming the treasure.
func (t *Treasure) Use(user User) UseResult {
	return t.run(user, t.apply)
}

// apply is the treasure's effect step in the usage pipeline.
func (t *Treasure) apply(user User) (bool, string) {
	if !user.IsAlive() {
		return false, "The fallen cannot be healed by " + t.name + "."
	}
	if user.GetHP() >= user.GetMaxHP() && !t.overheal {
		return false, user.GetName() + " is already at full health; " + t.name + " stays in the pack."
	}

	if t.overheal {
		user.RaiseMaxHealth(t.healingPower / 2)
	}
	healed := user.Heal(t.healingPower)

	message := t.useMessage(user, healed)
	switch t.bonus {
	case BonusPower:
		user.IncreasePower(bonusPowerAmount)
		message += fmt.Sprintf(" Power rises by %d!", bonusPowerAmount)
	case BonusDefense:
		user.IncreaseDefense(bonusDefenseAmount)
		message += fmt.Sprintf(" Defense rises by %d!", bonusDefenseAmount)
	case BonusExperience:
		user.AddExperience(bonusExperienceAmount)
		message += fmt.Sprintf(" Insight grants %d experience!", bonusExperienceAmount)
	case BonusFullRestore:
		user.FullHeal()
		message += " A warm glow restores every wound!"
	case BonusLuck:
		message += " Somehow, the day feels luckier."
	}

	user.RecordTreasureFound()
	return true, message
}

// useMessage phrases the healing report according to the treasure's rarity.
func (t *Treasure) useMessage(user User, healed int) string {
	switch {
	case t.rarity >= RarityLegendary:
		return fmt.Sprintf("%s opens %s and ancient knowledge mends %d health.", user.GetName(), t.name, healed)
	case t.rarity >= RarityRare:
		return fmt.Sprintf("%s uses %s and recovers %d health in a shimmer of light.", user.GetName(), t.name, healed)
	default:
		return fmt.Sprintf("%s uses %s and recovers %d health.", user.GetName(), t.name, healed)
	}
}

// Ensure Treasure implements Item
var _ Item = (*Treasure)(nil)
