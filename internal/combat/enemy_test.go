package combat

import (
	"math/rand"
	"testing"

	"github.com/pvaldes/bugdungeon/data"
)

// mockCombatant is a test implementation of the Combatant interface.
// Unlike the real actor it applies no defense mitigation.
type mockCombatant struct {
	name     string
	hp       int
	maxHP    int
	power    int
	xp       int
	levelUps int
}

func newMockCombatant(name string, hp, power int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: hp, power: power}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) IsAlive() bool   { return m.hp > 0 }
func (m *mockCombatant) GetPower() int   { return m.power }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

func (m *mockCombatant) AddExperience(amount int) bool {
	m.xp += amount
	return false
}

func testBugDef() *data.BugDef {
	return &data.BugDef{
		ID:          "test_bug",
		Name:        "Test Bug",
		Description: "A bug bred in captivity.",
		Glyph:       "t",
		Color:       "#FF0000",
		HP:          30,
		Damage:      15,
		Defense:     2,
		XPReward:    25,
		Multiplier:  1.0,
		Tier:        "trainee",
		SpawnWeight: 50,
	}
}

func testQuestions() []Question {
	return []Question{
		{ID: "q1", Prompt: "One?", Options: []string{"yes", "no"}, Answer: "yes"},
		{ID: "q2", Prompt: "Two?", Options: []string{"up", "down"}, Answer: "down"},
		{ID: "q3", Prompt: "Three?", Options: []string{"left", "right"}, Answer: "left"},
	}
}

func testEnemy() *Enemy {
	return NewEnemy(testBugDef(), testQuestions(), rand.New(rand.NewSource(1)))
}

func TestStartCombat(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)

	res := enemy.StartCombat(actor)
	if res.Outcome != OutcomeCombatStarted {
		t.Fatalf("Expected combat started, got %s", res.Outcome)
	}
	if !enemy.IsActive() || enemy.State() != StateInCombat {
		t.Error("Enemy should be active and in combat")
	}

	// Starting again mid-combat is idempotent
	enemy.ProcessAnswer("no", &enemy.questions[0], actor)
	attempts := enemy.Attempts()
	res = enemy.StartCombat(actor)
	if res.Outcome != OutcomeCombatStarted {
		t.Errorf("Expected combat started on re-entry, got %s", res.Outcome)
	}
	if enemy.Attempts() != attempts {
		t.Errorf("Re-entry reset attempts: %d != %d", enemy.Attempts(), attempts)
	}
}

func TestCorrectAnswerDamage(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	// Power 10, defense 2, multiplier 1.0
	// Expected: (10 - 2) * 1.1 = 8.8 -> 8 damage
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("yes", q, actor)

	if res.Outcome != OutcomeDamageDealt {
		t.Fatalf("Expected damage dealt, got %s", res.Outcome)
	}
	if res.DamageDealt != 8 {
		t.Errorf("Expected 8 damage, got %d", res.DamageDealt)
	}
	if enemy.HP() != 22 {
		t.Errorf("Expected enemy HP 22, got %d", enemy.HP())
	}
}

func TestCorrectAnswerByLetter(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	// "A" maps to option 0 which equals the answer
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("a", q, actor)

	if !res.Success {
		t.Errorf("Letter answer should resolve as correct: %s", res.Message)
	}
}

func TestEnemyDefeated(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	// 30 HP at 8 damage per correct answer: defeated on the 4th
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	var res Result
	for i := 0; i < 4; i++ {
		res = enemy.ProcessAnswer("yes", q, actor)
	}

	if res.Outcome != OutcomeEnemyDefeated {
		t.Fatalf("Expected enemy defeated, got %s", res.Outcome)
	}
	if !enemy.IsDefeated() || enemy.IsActive() {
		t.Error("Enemy should be defeated and inactive")
	}
	if actor.xp != 25 {
		t.Errorf("Expected 25 XP reward, got %d", actor.xp)
	}
}

func TestIncorrectAnswerDamage(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("no", q, actor)

	if res.Outcome != OutcomeIncorrectAnswer {
		t.Fatalf("Expected incorrect answer, got %s", res.Outcome)
	}
	if res.DamageTaken != 15 {
		t.Errorf("Expected 15 damage taken, got %d", res.DamageTaken)
	}
	if actor.hp != 85 {
		t.Errorf("Expected actor HP 85, got %d", actor.hp)
	}
}

func TestPlayerDefeated(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Fragile", 10, 10)
	enemy.StartCombat(actor)

	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("no", q, actor)

	if res.Outcome != OutcomePlayerDefeated {
		t.Fatalf("Expected player defeated, got %s", res.Outcome)
	}
	if enemy.State() != StateVictorious {
		t.Errorf("Expected victorious state, got %s", enemy.State())
	}
	if enemy.IsActive() {
		t.Error("Combat should have ended")
	}
}

func TestAttemptsExhausted(t *testing.T) {
	enemy := testEnemy()
	enemy.SetAttemptCap(2)
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	enemy.ProcessAnswer("no", q, actor)
	res := enemy.ProcessAnswer("no", q, actor)

	if res.Outcome != OutcomeAttemptsExhausted {
		t.Fatalf("Expected attempts exhausted, got %s", res.Outcome)
	}
	if enemy.State() != StateIdle || enemy.IsActive() {
		t.Error("Enemy should be back to idle after a stalemate")
	}
}

func TestStartCombatAlreadyDefeated(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	for i := 0; i < 4; i++ {
		enemy.ProcessAnswer("yes", q, actor)
	}
	if !enemy.IsDefeated() {
		t.Fatal("Setup failed: enemy should be defeated")
	}

	res := enemy.StartCombat(actor)
	if res.Outcome != OutcomeAlreadyDefeated {
		t.Errorf("Expected already defeated, got %s", res.Outcome)
	}
	if enemy.IsActive() || enemy.State() != StateDefeated {
		t.Error("Starting combat against a defeated enemy must not mutate state")
	}
}

func TestProcessAnswerInvalid(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	res := enemy.ProcessAnswer("yes", nil, actor)
	if res.Outcome != OutcomeInvalid {
		t.Errorf("Expected invalid for nil question, got %s", res.Outcome)
	}
	if enemy.Attempts() != 0 || enemy.Turns() != 0 {
		t.Error("Invalid answers must not consume attempts or turns")
	}

	enemy.ForceEndCombat()
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res = enemy.ProcessAnswer("yes", q, actor)
	if res.Outcome != OutcomeInvalid {
		t.Errorf("Expected invalid outside combat, got %s", res.Outcome)
	}
}

func TestCurrentQuestionNoImmediateRepeat(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		q := enemy.CurrentQuestion()
		if q == nil {
			t.Fatal("Expected a question")
		}
		if seen[q.ID] {
			t.Errorf("Question %s repeated before the pool was exhausted", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestCurrentQuestionEmptyPoolFallback(t *testing.T) {
	enemy := NewEnemy(testBugDef(), nil, rand.New(rand.NewSource(1)))
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	q := enemy.CurrentQuestion()
	if q == nil {
		t.Fatal("Empty pool must fall back to a built-in question")
	}
	if len(q.Options) == 0 || q.Answer == "" {
		t.Error("Fallback question is not answerable")
	}
}

func TestReset(t *testing.T) {
	enemy := testEnemy()
	actor := newMockCombatant("Recruit", 100, 10)
	enemy.StartCombat(actor)

	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	for i := 0; i < 4; i++ {
		enemy.ProcessAnswer("yes", q, actor)
	}
	if !enemy.IsDefeated() {
		t.Fatal("Setup failed: enemy should be defeated")
	}

	enemy.Reset()
	if enemy.HP() != enemy.MaxHP() {
		t.Errorf("Expected full health after reset, got %d/%d", enemy.HP(), enemy.MaxHP())
	}
	if enemy.State() != StateIdle || enemy.Attempts() != 0 {
		t.Error("Reset should return the enemy to a fresh idle state")
	}

	res := enemy.StartCombat(actor)
	if res.Outcome != OutcomeCombatStarted {
		t.Errorf("Expected combat to start after reset, got %s", res.Outcome)
	}
}

func TestOverrideStats(t *testing.T) {
	enemy := testEnemy()
	enemy.OverrideStats(90, 30, 5, 100)

	if enemy.HP() != 90 || enemy.MaxHP() != 90 {
		t.Errorf("Expected HP 90/90, got %d/%d", enemy.HP(), enemy.MaxHP())
	}
	if enemy.Damage() != 30 || enemy.Defense() != 5 || enemy.XPReward() != 100 {
		t.Error("Boss override did not apply")
	}

	// Non-positive values keep the current stat
	enemy.OverrideStats(0, -1, 0, 0)
	if enemy.HP() != 90 || enemy.Damage() != 30 {
		t.Error("Non-positive overrides must be ignored")
	}
}

func TestMinimumDamageFloor(t *testing.T) {
	def := testBugDef()
	def.Defense = 50
	enemy := NewEnemy(def, testQuestions(), rand.New(rand.NewSource(1)))
	actor := newMockCombatant("Weak", 100, 2)
	enemy.StartCombat(actor)

	// Power 2, defense 50: base clamps to 1, * 1.1 = 1.1 -> 1
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("yes", q, actor)
	if res.DamageDealt != 1 {
		t.Errorf("Expected minimum 1 damage, got %d", res.DamageDealt)
	}
}

func TestSetMinDamage(t *testing.T) {
	def := testBugDef()
	def.Defense = 50
	def.Damage = 2
	enemy := NewEnemy(def, testQuestions(), rand.New(rand.NewSource(1)))
	enemy.SetMinDamage(5)
	actor := newMockCombatant("Weak", 100, 2)
	enemy.StartCombat(actor)

	// Power 2, defense 50: base clamps to the 5 floor, * 1.1 = 5.5 -> 5
	q := &Question{ID: "q", Prompt: "?", Options: []string{"yes", "no"}, Answer: "yes"}
	res := enemy.ProcessAnswer("yes", q, actor)
	if res.DamageDealt != 5 {
		t.Errorf("Expected the 5 damage floor, got %d", res.DamageDealt)
	}

	// The enemy's feeble 2 damage is lifted to the same floor
	res = enemy.ProcessAnswer("no", q, actor)
	if res.DamageTaken != 5 {
		t.Errorf("Expected the enemy hit lifted to 5, got %d", res.DamageTaken)
	}

	enemy.SetMinDamage(0)
	res = enemy.ProcessAnswer("yes", q, actor)
	if res.DamageDealt != 5 {
		t.Errorf("A non-positive floor should be ignored, got %d damage", res.DamageDealt)
	}
}
