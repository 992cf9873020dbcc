// Package combat provides the quiz-driven combat resolution engine:
// question pools, answer validation, damage math, and the per-enemy
// combat state machine.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/pvaldes/bugdungeon/data"
)

// DefaultAttemptCap is the number of answers allowed per encounter
// before combat ends without a winner.
const DefaultAttemptCap = 5

// defaultMinDamage floors every damage roll until a balance table is
// applied through SetMinDamage.
const defaultMinDamage = 1

// Combatant is the player-side interface the engine needs to resolve a
// turn. entity.Actor implements this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetPower() int
	TakeDamage(amount int) int     // Returns actual damage taken after mitigation
	AddExperience(amount int) bool // Returns true if a level-up fired
}

// State represents the enemy's combat state machine.
type State int

const (
	// StateIdle - not fighting; combat may start.
	StateIdle State = iota
	// StateInCombat - an encounter is in progress.
	StateInCombat
	// StateDefeated - health reached zero; terminal until Reset.
	StateDefeated
	// StateVictorious - the player fell; terminal until Reset.
	StateVictorious
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInCombat:
		return "in_combat"
	case StateDefeated:
		return "defeated"
	case StateVictorious:
		return "victorious"
	default:
		return "unknown"
	}
}

// Enemy is a quiz-gated bug. It owns its question pool and tracks the
// attempt and turn counters of the current encounter. One enemy belongs
// to exactly one room.
type Enemy struct {
	def *data.BugDef

	hp         int
	maxHP      int
	damage     int
	defense    int
	xpReward   int
	multiplier float64

	questions  []Question
	used       map[string]bool
	attempts   int
	turns      int
	attemptCap int
	minDamage  int
	active     bool
	state      State

	rng *rand.Rand
}

// NewEnemy creates an enemy from a bug definition with the given
// question pool. Stats start at the definition's base values; use
// OverrideStats for boss placements.
func NewEnemy(def *data.BugDef, questions []Question, rng *rand.Rand) *Enemy {
	return &Enemy{
		def:        def,
		hp:         def.HP,
		maxHP:      def.HP,
		damage:     def.Damage,
		defense:    def.Defense,
		xpReward:   def.XPReward,
		multiplier: def.Multiplier,
		questions:  questions,
		used:       make(map[string]bool),
		attemptCap: DefaultAttemptCap,
		minDamage:  defaultMinDamage,
		state:      StateIdle,
		rng:        rng,
	}
}

// OverrideStats replaces base stats for boss placements. Non-positive
// values keep the current stat.
func (e *Enemy) OverrideStats(hp, damage, defense, xpReward int) {
	if hp > 0 {
		e.hp = hp
		e.maxHP = hp
	}
	if damage > 0 {
		e.damage = damage
	}
	if defense > 0 {
		e.defense = defense
	}
	if xpReward > 0 {
		e.xpReward = xpReward
	}
}

// SetAttemptCap overrides the per-encounter answer limit. Non-positive
// values are ignored.
func (e *Enemy) SetAttemptCap(cap int) {
	if cap > 0 {
		e.attemptCap = cap
	}
}

// SetMinDamage overrides the floor applied to both sides' damage
// rolls. Non-positive values are ignored.
func (e *Enemy) SetMinDamage(v int) {
	if v > 0 {
		e.minDamage = v
	}
}

// Def returns the enemy's immutable bug definition.
func (e *Enemy) Def() *data.BugDef { return e.def }

// Name returns the enemy's display name.
func (e *Enemy) Name() string { return e.def.Name }

// Description returns the enemy's flavor text.
func (e *Enemy) Description() string { return e.def.Description }

// HP returns current hit points.
func (e *Enemy) HP() int { return e.hp }

// MaxHP returns maximum hit points.
func (e *Enemy) MaxHP() int { return e.maxHP }

// Damage returns the damage dealt on a wrong answer.
func (e *Enemy) Damage() int { return e.damage }

// Defense returns the defense value.
func (e *Enemy) Defense() int { return e.defense }

// XPReward returns the experience granted when this enemy is defeated.
func (e *Enemy) XPReward() int { return e.xpReward }

// State returns the current combat state.
func (e *Enemy) State() State { return e.state }

// IsDefeated reports whether the enemy's health has reached zero.
func (e *Enemy) IsDefeated() bool { return e.state == StateDefeated }

// IsActive reports whether an encounter is in progress.
func (e *Enemy) IsActive() bool { return e.active }

// Attempts returns the answers submitted this encounter.
func (e *Enemy) Attempts() int { return e.attempts }

// Turns returns the total turns taken this encounter.
func (e *Enemy) Turns() int { return e.turns }

// AttemptCap returns the per-encounter answer limit.
func (e *Enemy) AttemptCap() int { return e.attemptCap }

// StartCombat begins an encounter. Starting against a defeated enemy
// fails without mutating anything; starting while already in combat is
// idempotent and never resets in-flight counters.
func (e *Enemy) StartCombat(actor Combatant) Result {
	if e.state == StateDefeated {
		return Result{
			Outcome: OutcomeAlreadyDefeated,
			Message: e.Name() + " has already been squashed. Only fragments remain.",
		}
	}
	if e.state == StateVictorious {
		return Result{
			Outcome: OutcomeInvalid,
			Message: e.Name() + " stands victorious and ignores the challenge.",
		}
	}
	if e.active && e.state == StateInCombat {
		return Result{
			Outcome: OutcomeCombatStarted,
			Success: true,
			Message: e.Name() + " is already locked in combat with you.",
		}
	}

	e.active = true
	e.state = StateInCombat
	e.attempts = 0
	e.turns = 0
	e.used = make(map[string]bool)

	return Result{
		Outcome: OutcomeCombatStarted,
		Success: true,
		Message: fmt.Sprintf("%s blocks your path! %s", e.Name(), e.Description()),
	}
}

// CurrentQuestion selects a question uniformly at random among those not
// yet asked, marking it used. An exhausted pool recycles while attempts
// remain; an empty pool falls back to a built-in generic question so
// combat never stalls.
func (e *Enemy) CurrentQuestion() *Question {
	if len(e.questions) == 0 {
		q := fallbackQuestions[e.rng.Intn(len(fallbackQuestions))]
		return &q
	}

	unused := make([]int, 0, len(e.questions))
	for i := range e.questions {
		if !e.used[e.questions[i].ID] {
			unused = append(unused, i)
		}
	}

	if len(unused) == 0 {
		// Pool exhausted: recycle while attempts remain
		if len(e.questions) > 1 && e.attempts < e.attemptCap {
			e.used = make(map[string]bool)
			for i := range e.questions {
				unused = append(unused, i)
			}
		} else {
			q := e.questions[0]
			return &q
		}
	}

	pick := unused[e.rng.Intn(len(unused))]
	q := e.questions[pick]
	e.used[q.ID] = true
	return &q
}

// ProcessAnswer resolves one combat turn. A nil question or inactive
// combat returns an invalid outcome without touching any counter.
func (e *Enemy) ProcessAnswer(raw string, q *Question, actor Combatant) Result {
	if q == nil {
		return Result{Outcome: OutcomeInvalid, Message: "There is no question to answer."}
	}
	if !e.active || e.state != StateInCombat {
		return Result{Outcome: OutcomeInvalid, Message: e.Name() + " is not fighting you right now."}
	}

	e.attempts++
	e.turns++

	if q.IsCorrect(raw) {
		return e.resolveCorrect(q, actor)
	}
	return e.resolveIncorrect(q, actor)
}

// resolveCorrect applies player damage to the enemy and decides between
// victory, stalemate, and an ongoing fight.
func (e *Enemy) resolveCorrect(q *Question, actor Combatant) Result {
	damage := e.damageFrom(actor)
	e.hp -= damage
	if e.hp < 0 {
		e.hp = 0
	}

	if e.hp == 0 {
		e.state = StateDefeated
		e.active = false
		actor.AddExperience(e.xpReward)
		return Result{
			Outcome:     OutcomeEnemyDefeated,
			Success:     true,
			Explanation: q.Explanation,
			DamageDealt: damage,
			Message:     fmt.Sprintf("Correct! Your answer strikes for %d and %s collapses into harmless log output.", damage, e.Name()),
		}
	}

	if e.attempts >= e.attemptCap {
		e.active = false
		e.state = StateIdle
		return Result{
			Outcome:     OutcomeAttemptsExhausted,
			Success:     true,
			Explanation: q.Explanation,
			DamageDealt: damage,
			Message:     fmt.Sprintf("Correct, for %d damage, but the encounter drags on too long. %s slinks back into the code.", damage, e.Name()),
		}
	}

	return Result{
		Outcome:     OutcomeDamageDealt,
		Success:     true,
		Explanation: q.Explanation,
		DamageDealt: damage,
		Message:     fmt.Sprintf("Correct! You hit %s for %d damage (%d/%d HP left).", e.Name(), damage, e.hp, e.maxHP),
	}
}

// resolveIncorrect applies enemy damage to the player and decides
// between player defeat, stalemate, and an ongoing fight.
func (e *Enemy) resolveIncorrect(q *Question, actor Combatant) Result {
	damage := e.damage
	if damage < e.minDamage {
		damage = e.minDamage
	}
	taken := actor.TakeDamage(damage)

	if !actor.IsAlive() {
		e.state = StateVictorious
		e.active = false
		return Result{
			Outcome:     OutcomePlayerDefeated,
			Explanation: q.Explanation,
			DamageTaken: taken,
			Message:     fmt.Sprintf("Wrong! %s strikes for %d and %s falls.", e.Name(), taken, actor.GetName()),
		}
	}

	if e.attempts >= e.attemptCap {
		e.state = StateIdle
		e.active = false
		return Result{
			Outcome:     OutcomeAttemptsExhausted,
			Explanation: q.Explanation,
			DamageTaken: taken,
			Message:     fmt.Sprintf("Wrong! %s hits for %d, then loses interest and burrows away.", e.Name(), taken),
		}
	}

	return Result{
		Outcome:     OutcomeIncorrectAnswer,
		Explanation: q.Explanation,
		DamageTaken: taken,
		Message:     fmt.Sprintf("Wrong! %s hits you for %d damage.", e.Name(), taken),
	}
}

// damageFrom computes the damage a correct answer deals: power minus
// defense, floored at the damage minimum, scaled by the bug's
// difficulty multiplier and truncated to an integer.
func (e *Enemy) damageFrom(actor Combatant) int {
	base := actor.GetPower() - e.defense
	if base < e.minDamage {
		base = e.minDamage
	}
	return int(float64(base) * (1 + 0.1*e.multiplier))
}

// Reset returns the enemy to idle with full health and a cleared
// question history. This is the only exit from a terminal state.
func (e *Enemy) Reset() {
	e.hp = e.maxHP
	e.state = StateIdle
	e.active = false
	e.attempts = 0
	e.turns = 0
	e.used = make(map[string]bool)
}

// ForceEndCombat aborts the encounter, leaving health as-is. Used by
// callers to recover into a safe state after timeouts or errors.
func (e *Enemy) ForceEndCombat() {
	if e.active {
		e.active = false
		if e.state == StateInCombat {
			e.state = StateIdle
		}
	}
}

// CanContinueCombat reports whether another turn may be taken.
func (e *Enemy) CanContinueCombat() bool {
	return e.active && e.state == StateInCombat && e.attempts < e.attemptCap && e.hp > 0
}
