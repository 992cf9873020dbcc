package combat

// Outcome categorizes the result of a combat operation.
type Outcome int

const (
	// OutcomeInvalid - malformed call (nil question, no active combat); nothing mutated.
	OutcomeInvalid Outcome = iota
	// OutcomeCombatStarted - combat began, or was already active (idempotent).
	OutcomeCombatStarted
	// OutcomeAlreadyDefeated - the enemy is dead; nothing to fight.
	OutcomeAlreadyDefeated
	// OutcomeDamageDealt - correct answer, the enemy survives.
	OutcomeDamageDealt
	// OutcomeIncorrectAnswer - wrong answer, the player survives.
	OutcomeIncorrectAnswer
	// OutcomeEnemyDefeated - correct answer dropped the enemy to zero.
	OutcomeEnemyDefeated
	// OutcomePlayerDefeated - wrong answers dropped the player to zero.
	OutcomePlayerDefeated
	// OutcomeAttemptsExhausted - the attempt cap ended combat without a winner.
	OutcomeAttemptsExhausted
)

// String returns a machine-friendly outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCombatStarted:
		return "combat_started"
	case OutcomeAlreadyDefeated:
		return "already_defeated"
	case OutcomeDamageDealt:
		return "damage_dealt"
	case OutcomeIncorrectAnswer:
		return "incorrect_answer"
	case OutcomeEnemyDefeated:
		return "enemy_defeated"
	case OutcomePlayerDefeated:
		return "player_defeated"
	case OutcomeAttemptsExhausted:
		return "attempts_exhausted"
	default:
		return "unknown"
	}
}

// Result describes what a combat operation did. Callers render Message;
// the Outcome drives state handling.
type Result struct {
	Outcome     Outcome
	Success     bool
	Message     string
	Explanation string // The answered question's explanation, when one resolved
	DamageDealt int    // Damage applied to the enemy this turn
	DamageTaken int    // Damage applied to the player this turn
}
