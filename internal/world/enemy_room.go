package world

import (
	"fmt"

	"github.com/pvaldes/bugdungeon/internal/combat"
	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
)

// EnemyRoom wraps one enemy and drives its combat encounters. The room
// keeps its own turn counter with a cap larger than the enemy's attempt
// cap, a secondary safety valve that forcibly ends runaway combats with
// a timeout penalty.
type EnemyRoom struct {
	core
	balance gamedata.Balance
	enemy   *combat.Enemy
	respawn bool
	cleared bool

	turns   int
	turnCap int
	current *combat.Question
}

// NewEnemyRoom creates a room around the given enemy.
func NewEnemyRoom(name, description string, enemy *combat.Enemy, balance gamedata.Balance) *EnemyRoom {
	return &EnemyRoom{
		core:    newCore(name, description),
		balance: balance,
		enemy:   enemy,
		turnCap: balance.RoomTurnCap,
	}
}

// SetRespawn controls whether a defeated enemy returns on re-entry.
func (r *EnemyRoom) SetRespawn(respawn bool) {
	r.respawn = respawn
}

// Type returns RoomEnemy.
func (r *EnemyRoom) Type() RoomType { return RoomEnemy }

// Enemy returns the wrapped enemy, for rendering.
func (r *EnemyRoom) Enemy() *combat.Enemy { return r.enemy }

// IsCleared reports whether the enemy has been beaten for good.
func (r *EnemyRoom) IsCleared() bool { return r.cleared }

// CombatActive reports whether an encounter is in progress.
func (r *EnemyRoom) CombatActive() bool { return r.enemy.IsActive() }

// CurrentQuestion returns the question awaiting an answer, selecting a
// new one when none is pending. Returns nil outside combat.
func (r *EnemyRoom) CurrentQuestion() *combat.Question {
	if !r.enemy.IsActive() {
		return nil
	}
	if r.current == nil {
		r.current = r.enemy.CurrentQuestion()
	}
	return r.current
}

// Interact starts a combat encounter, resumes one already in progress,
// or reports a cleared room.
func (r *EnemyRoom) Interact(actor *entity.Actor) Result {
	return r.interact(actor, r.encounter)
}

// encounter is the enemy room's effect step in the interaction pipeline.
func (r *EnemyRoom) encounter(actor *entity.Actor) Result {
	if r.enemy.IsDefeated() && !r.respawn {
		actor.AddExperience(r.balance.XPFlavorInteraction)
		return Result{
			Success: true,
			Kind:    ResultDialogue,
			Message: "Fragments of the squashed " + r.enemy.Name() + " litter the floor. Nothing stirs.",
		}
	}

	if r.enemy.IsActive() {
		if r.turns >= r.turnCap {
			return r.timeout(actor)
		}
		return Result{
			Success: true,
			Kind:    ResultCombat,
			Message: r.enemy.Name() + " still bars the way. Answer its question!",
		}
	}

	if r.respawn && r.enemy.IsDefeated() {
		r.enemy.Reset()
	}

	r.turns = 0
	r.current = nil
	res := r.enemy.StartCombat(actor)
	if res.Outcome == combat.OutcomeAlreadyDefeated {
		return Result{Kind: ResultDialogue, Message: res.Message}
	}
	if res.Success {
		actor.SetState(entity.StateInCombat)
	}
	return Result{Success: res.Success, Kind: ResultCombat, Message: res.Message}
}

// SubmitAnswer resolves one combat turn against the pending question
// and maps the engine's outcome to a room-level result.
func (r *EnemyRoom) SubmitAnswer(raw string, actor *entity.Actor) Result {
	if actor == nil || !r.enemy.IsActive() {
		return Result{Kind: ResultNone, Message: "There is no fight to answer for."}
	}

	r.turns++
	if r.turns > r.turnCap {
		return r.timeout(actor)
	}

	q := r.CurrentQuestion()
	res := r.enemy.ProcessAnswer(raw, q, actor)
	r.current = nil

	switch res.Outcome {
	case combat.OutcomeEnemyDefeated:
		r.cleared = true
		actor.Stats().RecordEnemyDefeated()
		// Victory bonus stacks with the engine's own reward grant
		actor.AddExperience(r.enemy.XPReward())
		healed := actor.Heal(r.balance.VictoryHealing)
		actor.SetState(entity.StateActive)
		message := res.Message
		if healed > 0 {
			message += fmt.Sprintf(" Victory restores %d health.", healed)
		}
		return Result{Success: true, Kind: ResultCombat, Message: message}

	case combat.OutcomeAttemptsExhausted:
		// Reset so a later encounter restarts cleanly
		r.enemy.Reset()
		actor.SetState(entity.StateActive)
		return Result{Success: res.Success, Kind: ResultCombat, Message: res.Message}

	case combat.OutcomePlayerDefeated:
		return Result{Kind: ResultCombat, Message: res.Message}

	case combat.OutcomeInvalid:
		return Result{Kind: ResultNone, Message: res.Message}

	default:
		return Result{Success: res.Success, Kind: ResultCombat, Message: res.Message}
	}
}

// timeout forcibly ends a combat that has dragged past the room's turn
// cap: the player takes half the enemy's damage and the enemy stands
// down without a winner.
func (r *EnemyRoom) timeout(actor *entity.Actor) Result {
	penalty := r.enemy.Damage() / 2
	if penalty < 1 {
		penalty = 1
	}
	taken := actor.TakeDamage(penalty)
	r.enemy.ForceEndCombat()
	r.current = nil
	actor.SetState(entity.StateActive)

	return Result{
		Kind: ResultDamage,
		Message: fmt.Sprintf("The fight drags on too long. %s wears you down for %d damage and withdraws into the code.",
			r.enemy.Name(), taken),
	}
}

// Ensure EnemyRoom implements Room
var _ Room = (*EnemyRoom)(nil)
