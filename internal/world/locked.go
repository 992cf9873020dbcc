package world

import (
	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/item"
)

// LockedRoom is a gating proxy: it wraps a hidden inner room behind a
// named key. A successful unlock consumes the key (if single-use),
// awards experience, and delegates to the inner room in the same call.
// Once unlocked, every interaction passes straight through; the key is
// never checked again.
type LockedRoom struct {
	core
	balance     gamedata.Balance
	requiredKey string
	inner       Room
	unlocked    bool
}

// NewLockedRoom creates a locked room gating the inner room.
func NewLockedRoom(name, description, requiredKey string, inner Room, balance gamedata.Balance) *LockedRoom {
	return &LockedRoom{
		core:        newCore(name, description),
		balance:     balance,
		requiredKey: requiredKey,
		inner:       inner,
	}
}

// Type returns RoomLocked.
func (r *LockedRoom) Type() RoomType { return RoomLocked }

// IsUnlocked reports whether the gate is open.
func (r *LockedRoom) IsUnlocked() bool { return r.unlocked }

// RequiredKey returns the name of the key that opens this room.
func (r *LockedRoom) RequiredKey() string { return r.requiredKey }

// Inner returns the wrapped room.
func (r *LockedRoom) Inner() Room { return r.inner }

// Interact delegates to the inner room when unlocked; otherwise it
// tries the player's key and, on success, unlocks and delegates within
// the same call. Without the key it only hints.
func (r *LockedRoom) Interact(actor *entity.Actor) Result {
	if r.unlocked {
		return r.inner.Interact(actor)
	}
	return r.interact(actor, r.tryUnlock)
}

// tryUnlock is the locked room's effect step in the interaction pipeline.
func (r *LockedRoom) tryUnlock(actor *entity.Actor) Result {
	held := actor.Inventory().Find(r.requiredKey)
	if held == nil {
		return Result{
			Kind:    ResultUnlock,
			Message: r.name + " is locked tight. You need " + r.requiredKey + " to open it.",
		}
	}

	key, ok := held.(*item.Key)
	if !ok {
		return Result{
			Kind:    ResultUnlock,
			Message: held.Name() + " will not fit this lock. It is not even a key.",
		}
	}

	unlock := key.AttemptUnlock(r.name, actor)
	if !unlock.Success {
		return Result{Kind: ResultUnlock, Message: unlock.Message}
	}

	if unlock.KeyConsumed {
		actor.Inventory().RemoveItem(key)
	}
	r.unlocked = true
	actor.AddExperience(r.balance.XPPerUnlock)

	// The gate is just a proxy: the inner room takes over immediately
	innerResult := r.inner.Interact(actor)
	innerResult.Message = unlock.Message + " " + innerResult.Message
	return innerResult
}

// Ensure LockedRoom implements Room
var _ Room = (*LockedRoom)(nil)
