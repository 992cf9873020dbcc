package world

import (
	"fmt"
	"math/rand"

	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
)

// EmptyRoom is a room with no enemy or treasure. It may hide a secret
// worth searching for, and offers rest when the player is hurt. Search
// and rest are explicit caller decisions: Interact only surfaces the
// offer, and the caller answers by calling Search or Rest.
type EmptyRoom struct {
	core
	balance gamedata.Balance
	rng     *rand.Rand

	secret         string
	hasSecret      bool
	secretRevealed bool
	searchAttempts int
}

// NewEmptyRoom creates an empty room without a secret.
func NewEmptyRoom(name, description string, balance gamedata.Balance, rng *rand.Rand) *EmptyRoom {
	return &EmptyRoom{
		core:    newCore(name, description),
		balance: balance,
		rng:     rng,
	}
}

// SetSecret hides a secret in the room. An empty string clears it.
func (r *EmptyRoom) SetSecret(secret string) {
	r.secret = secret
	r.hasSecret = secret != ""
}

// Type returns RoomEmpty.
func (r *EmptyRoom) Type() RoomType { return RoomEmpty }

// SecretRevealed reports whether the hidden secret has been found.
func (r *EmptyRoom) SecretRevealed() bool { return r.secretRevealed }

// secretPending reports whether there is still a secret to find.
func (r *EmptyRoom) secretPending() bool {
	return r.hasSecret && !r.secretRevealed
}

// Interact surfaces the room's current offer: a search when a secret is
// pending, a rest when the player is hurt, otherwise idle flavor.
func (r *EmptyRoom) Interact(actor *entity.Actor) Result {
	return r.interact(actor, r.enter)
}

// enter is the empty room's effect step in the interaction pipeline.
func (r *EmptyRoom) enter(actor *entity.Actor) Result {
	if r.secretPending() {
		return Result{
			Success: true,
			Kind:    ResultDialogue,
			Offer:   OfferSearch,
			Message: "Something about " + r.name + " feels off. You could search the place.",
		}
	}

	if actor.GetHP() < actor.GetMaxHP() {
		return Result{
			Success: true,
			Kind:    ResultDialogue,
			Offer:   OfferRest,
			Message: r.name + " is quiet. You could rest here for a while.",
		}
	}

	actor.AddExperience(r.balance.XPFlavorInteraction)
	return Result{
		Success: true,
		Kind:    ResultDialogue,
		Message: r.description,
	}
}

// Search attempts to find the pending secret. The success chance grows
// with each failed attempt and is forced at the attempt cap. Finding
// the secret reveals it permanently, heals a little, and awards
// experience.
func (r *EmptyRoom) Search(actor *entity.Actor) Result {
	if actor == nil || !actor.CanInteract() {
		return Result{Kind: ResultNone, Message: "You are in no condition to search."}
	}
	if !r.secretPending() {
		return Result{Kind: ResultDialogue, Message: "There is nothing left to find in " + r.name + "."}
	}

	prior := r.searchAttempts
	r.searchAttempts++

	chance := r.balance.SecretBaseChance + r.balance.SecretChanceStep*float64(prior)
	forced := r.searchAttempts >= r.balance.SecretAttemptCap
	if !forced && r.rng.Float64() >= chance {
		return Result{
			Kind:    ResultDialogue,
			Message: "You search " + r.name + " but find nothing. Yet.",
		}
	}

	r.secretRevealed = true
	actor.AddExperience(r.balance.XPPerSecretFound)
	healed := actor.Heal(r.balance.SecretHealing)

	message := fmt.Sprintf("You find %s! The discovery restores %d health.", r.secret, healed)
	return Result{Success: true, Kind: ResultHeal, Message: message}
}

// Rest recovers health up to the rest cap.
func (r *EmptyRoom) Rest(actor *entity.Actor) Result {
	if actor == nil || !actor.CanInteract() {
		return Result{Kind: ResultNone, Message: "You are in no condition to rest."}
	}

	healed := actor.Heal(r.balance.RestHealCap)
	if healed == 0 {
		return Result{Kind: ResultDialogue, Message: "You feel fine. No rest needed."}
	}
	return Result{
		Success: true,
		Kind:    ResultHeal,
		Message: fmt.Sprintf("You rest in %s and recover %d health.", r.name, healed),
	}
}

// Ensure EmptyRoom implements Room
var _ Room = (*EmptyRoom)(nil)
