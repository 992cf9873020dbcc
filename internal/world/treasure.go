package world

import (
	"fmt"
	"strings"

	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/item"
)

// TreasureRoom holds items for the player to collect. Collection
// de-duplicates by item NAME, not identity: once a name is collected
// the room never offers it again, even across different instances.
type TreasureRoom struct {
	core
	items     []item.Item
	collected map[string]bool

	lootAttempts int
	lootCap      int // -1 = unlimited
}

// NewTreasureRoom creates a treasure room allowing one loot attempt.
func NewTreasureRoom(name, description string) *TreasureRoom {
	return &TreasureRoom{
		core:      newCore(name, description),
		collected: make(map[string]bool),
		lootCap:   1,
	}
}

// SetLootCap overrides the allowed loot attempts. Pass -1 for unlimited;
// zero is ignored.
func (r *TreasureRoom) SetLootCap(cap int) {
	if cap != 0 {
		r.lootCap = cap
	}
}

// AddItem places an item in the room.
func (r *TreasureRoom) AddItem(it item.Item) {
	if it != nil {
		r.items = append(r.items, it)
	}
}

// Type returns RoomTreasure.
func (r *TreasureRoom) Type() RoomType { return RoomTreasure }

// RemainingItems returns how many items are still collectible.
func (r *TreasureRoom) RemainingItems() int {
	count := 0
	for _, it := range r.items {
		if !r.collected[it.Name()] {
			count++
		}
	}
	return count
}

// Interact transfers every uncollected item into the actor's inventory.
// An item stays behind only when the inventory is full at that moment.
func (r *TreasureRoom) Interact(actor *entity.Actor) Result {
	return r.interact(actor, r.loot)
}

// loot is the treasure room's effect step in the interaction pipeline.
func (r *TreasureRoom) loot(actor *entity.Actor) Result {
	if r.RemainingItems() == 0 {
		return Result{
			Success: true,
			Kind:    ResultDialogue,
			Message: r.name + " has been picked clean. Only dust remains.",
		}
	}

	if r.lootCap >= 0 && r.lootAttempts >= r.lootCap {
		return Result{
			Kind:    ResultDialogue,
			Message: "You have taken all " + r.name + " will give you.",
		}
	}
	r.lootAttempts++

	var taken []string
	remaining := r.items[:0]
	for _, it := range r.items {
		if r.collected[it.Name()] {
			continue
		}
		if actor.AddToInventory(it) {
			// Ownership moves to the inventory; the name is retired forever
			r.collected[it.Name()] = true
			actor.RecordTreasureFound()
			taken = append(taken, it.Name())
		} else {
			remaining = append(remaining, it)
		}
	}
	r.items = remaining

	if len(taken) == 0 {
		return Result{
			Kind:    ResultLoot,
			Message: "Your pack is full. The treasures of " + r.name + " stay where they are.",
		}
	}

	message := fmt.Sprintf("You collect: %s.", strings.Join(taken, ", "))
	if len(remaining) > 0 {
		message += fmt.Sprintf(" %d item(s) would not fit in your pack.", len(remaining))
	}
	return Result{Success: true, Kind: ResultLoot, Message: message}
}

// Ensure TreasureRoom implements Room
var _ Room = (*TreasureRoom)(nil)
