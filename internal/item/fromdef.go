package item

import "github.com/pvaldes/bugdungeon/data"

// FromDef builds an item from its JSON definition. Unknown kinds fall
// back to treasure.
func FromDef(def data.ItemDef) Item {
	rarity := ParseRarity(def.Rarity)

	switch def.Kind {
	case "key":
		key := NewKey(def.Name, def.Description, def.Value, rarity, ParseKeyKind(def.KeyKind), def.Targets)
		if def.MultiUse {
			key.SetSingleUse(false)
		}
		return key
	default:
		treasure := NewTreasure(def.Name, def.Description, def.Value, rarity, def.Healing)
		treasure.SetOverheal(def.Overheal)
		treasure.SetBonus(ParseBonusEffect(def.Bonus))
		return treasure
	}
}
