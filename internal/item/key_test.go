package item

import (
	"math/rand"
	"testing"
)

func TestKeyMatches(t *testing.T) {
	key := NewKey("Rusty Key", "old iron", 10, RarityCommon, KeyStandard, []string{"Debugging Vault", "Review Chamber"})

	if !key.Matches("Debugging Vault") {
		t.Error("Exact target should match")
	}
	if key.Matches("debugging vault") {
		t.Error("A standard key requires an exact match")
	}
	if key.Matches("Archive") {
		t.Error("A standard key must not open unlisted locks")
	}
}

func TestMasterKeySubstringMatch(t *testing.T) {
	master := NewKey("Master Key", "opens nearly everything", 100, RarityLegendary, KeyMaster, []string{"Archive"})

	// Substring matching runs both directions, case-insensitive
	if !master.Matches("Archive of Mastery") {
		t.Error("Master key target should match as a substring of the lock name")
	}
	if !master.Matches("arch") {
		t.Error("Master key lock name should match as a substring of the target")
	}
	if master.Matches("Vault") {
		t.Error("Unrelated names must not match")
	}
}

func TestAttemptUnlockConsumesSingleUseKey(t *testing.T) {
	user := newMockUser("Recruit", 100)
	key := NewKey("Rusty Key", "old iron", 10, RarityCommon, KeyStandard, []string{"Debugging Vault"})

	res := key.AttemptUnlock("Debugging Vault", user)
	if !res.Success {
		t.Fatalf("Expected unlock to succeed: %s", res.Message)
	}
	if !res.KeyConsumed {
		t.Error("A single-use key is spent by a successful unlock")
	}
	// Standard base power 10 * 1 target * 2 = 20 XP
	if user.xp != 20 {
		t.Errorf("Expected 20 unlock XP, got %d", user.xp)
	}

	res = key.AttemptUnlock("Debugging Vault", user)
	if res.Success {
		t.Error("A spent key must not unlock again")
	}
}

func TestAttemptUnlockMultiUseKey(t *testing.T) {
	user := newMockUser("Recruit", 100)
	key := NewKey("Master Key", "opens nearly everything", 100, RarityLegendary, KeyMaster, []string{"Archive", "Gate"})
	key.SetSingleUse(false)

	res := key.AttemptUnlock("Archive", user)
	if !res.Success || res.KeyConsumed {
		t.Fatalf("A multi-use key unlocks without being spent: %+v", res)
	}
	// Master base power 50 * 2 targets * 2 = 200 XP
	if user.xp != 200 {
		t.Errorf("Expected 200 unlock XP, got %d", user.xp)
	}

	res = key.AttemptUnlock("Gate", user)
	if !res.Success {
		t.Error("A multi-use key should keep unlocking")
	}
}

func TestAttemptUnlockWrongLock(t *testing.T) {
	user := newMockUser("Recruit", 100)
	key := NewKey("Rusty Key", "old iron", 10, RarityCommon, KeyStandard, []string{"Debugging Vault"})

	res := key.AttemptUnlock("Release Gate", user)
	if res.Success || res.KeyConsumed {
		t.Error("A non-matching lock must fail without spending the key")
	}
	if user.xp != 0 {
		t.Error("A failed unlock awards no experience")
	}
	if !key.CanBeUsed() {
		t.Error("The key should remain intact")
	}
}

func TestProbabilisticUnlockRetryable(t *testing.T) {
	user := newMockUser("Recruit", 100)
	key := NewKey("Bone Key", "carved from something", 15, RarityUncommon, KeySkeleton, []string{"Crypt"})
	key.SetSingleUse(false)
	key.SetRand(rand.New(rand.NewSource(7)))

	// Skeleton keys succeed 80% of the time; over enough rolls both
	// outcomes must appear, and failures must never spend the key
	successes, failures := 0, 0
	for i := 0; i < 100; i++ {
		res := key.AttemptUnlock("Crypt", user)
		if res.Success {
			successes++
		} else {
			failures++
			if res.KeyConsumed {
				t.Fatal("A failed roll must not consume the key")
			}
		}
	}
	if successes == 0 || failures == 0 {
		t.Errorf("Expected a mix of outcomes over 100 rolls, got %d/%d", successes, failures)
	}
}

func TestKeyUseIsInformational(t *testing.T) {
	user := newMockUser("Recruit", 100)
	key := NewKey("Rusty Key", "old iron", 10, RarityCommon, KeyStandard, []string{"Debugging Vault"})

	res := key.Use(user)
	if res.Success || res.Consumed {
		t.Error("Using a key outside a lock does nothing")
	}
	if !key.CanBeUsed() {
		t.Error("An informational use must not spend the key")
	}
}

func TestParseKeyKind(t *testing.T) {
	tests := []struct {
		name string
		want KeyKind
	}{
		{"skeleton", KeySkeleton},
		{"magical", KeyMagical},
		{"ancient", KeyAncient},
		{"master", KeyMaster},
		{"standard", KeyStandard},
		{"", KeyStandard},
	}
	for _, tt := range tests {
		if got := ParseKeyKind(tt.name); got != tt.want {
			t.Errorf("ParseKeyKind(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
