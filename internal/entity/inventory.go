package entity

import (
	"sort"

	"github.com/pvaldes/bugdungeon/internal/item"
)

// Inventory is a bounded, ordered collection of items. Capacity is
// fixed at construction; a full inventory rejects additions with a
// boolean, never an error.
type Inventory struct {
	items    []item.Item
	capacity int
}

// NewInventory creates an inventory with the given capacity, clamped to
// a minimum of 1.
func NewInventory(capacity int) *Inventory {
	if capacity < 1 {
		capacity = 1
	}
	return &Inventory{
		items:    make([]item.Item, 0, capacity),
		capacity: capacity,
	}
}

// Add appends an item. Returns false when the item is nil or the
// inventory is full.
func (inv *Inventory) Add(it item.Item) bool {
	if it == nil || len(inv.items) >= inv.capacity {
		return false
	}
	inv.items = append(inv.items, it)
	return true
}

// Remove removes the first item with the given name and returns it, or
// nil if no item matches. When two items share a name only the first is
// removed.
func (inv *Inventory) Remove(name string) item.Item {
	for i, it := range inv.items {
		if it.Name() == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it
		}
	}
	return nil
}

// RemoveItem removes the exact item by reference. Returns false if the
// item is not present.
func (inv *Inventory) RemoveItem(target item.Item) bool {
	for i, it := range inv.items {
		if it == target {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the item at the given index, or nil if
// the index is out of range.
func (inv *Inventory) RemoveAt(index int) item.Item {
	if index < 0 || index >= len(inv.items) {
		return nil
	}
	it := inv.items[index]
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return it
}

// Find returns the first item with the given name, or nil.
func (inv *Inventory) Find(name string) item.Item {
	for _, it := range inv.items {
		if it.Name() == name {
			return it
		}
	}
	return nil
}

// Has reports whether an item with the given name is present.
func (inv *Inventory) Has(name string) bool {
	return inv.Find(name) != nil
}

// At returns the item at the given index, or nil if out of range.
func (inv *Inventory) At(index int) item.Item {
	if index < 0 || index >= len(inv.items) {
		return nil
	}
	return inv.items[index]
}

// Items returns the items in their current order.
func (inv *Inventory) Items() []item.Item {
	return inv.items
}

// Size returns the number of items held.
func (inv *Inventory) Size() int { return len(inv.items) }

// Capacity returns the fixed capacity.
func (inv *Inventory) Capacity() int { return inv.capacity }

// IsFull reports whether no more items fit.
func (inv *Inventory) IsFull() bool { return len(inv.items) >= inv.capacity }

// FilterByKind returns the items of the given kind, in order.
func (inv *Inventory) FilterByKind(kind item.Kind) []item.Item {
	var result []item.Item
	for _, it := range inv.items {
		if it.Kind() == kind {
			result = append(result, it)
		}
	}
	return result
}

// FilterByRarity returns the items of the given rarity, in order.
func (inv *Inventory) FilterByRarity(rarity item.Rarity) []item.Item {
	var result []item.Item
	for _, it := range inv.items {
		if it.Rarity() == rarity {
			result = append(result, it)
		}
	}
	return result
}

// Consumables returns the consumable items, in order.
func (inv *Inventory) Consumables() []item.Item {
	var result []item.Item
	for _, it := range inv.items {
		if it.Consumable() {
			result = append(result, it)
		}
	}
	return result
}

// SortByName sorts items in place, ascending by name.
func (inv *Inventory) SortByName() {
	sort.SliceStable(inv.items, func(i, j int) bool {
		return inv.items[i].Name() < inv.items[j].Name()
	})
}

// SortByKind sorts items in place, ascending by kind.
func (inv *Inventory) SortByKind() {
	sort.SliceStable(inv.items, func(i, j int) bool {
		return inv.items[i].Kind() < inv.items[j].Kind()
	})
}

// SortByRarity sorts items in place, rarest first.
func (inv *Inventory) SortByRarity() {
	sort.SliceStable(inv.items, func(i, j int) bool {
		return inv.items[i].Rarity() > inv.items[j].Rarity()
	})
}

// SortByValue sorts items in place, most valuable first.
func (inv *Inventory) SortByValue() {
	sort.SliceStable(inv.items, func(i, j int) bool {
		return inv.items[i].Value() > inv.items[j].Value()
	})
}

// Statistics returns a count of held items per kind.
func (inv *Inventory) Statistics() map[item.Kind]int {
	stats := make(map[item.Kind]int)
	for _, it := range inv.items {
		stats[it.Kind()]++
	}
	return stats
}

// TotalValue returns the summed gold value of every held item.
func (inv *Inventory) TotalValue() int {
	total := 0
	for _, it := range inv.items {
		total += it.Value()
	}
	return total
}
