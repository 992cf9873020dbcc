package item

import (
	"fmt"
	"math/rand"
	"strings"
)

// KeyKind identifies how a key behaves at a lock.
type KeyKind int

const (
	KeyStandard KeyKind = iota
	KeySkeleton
	KeyMagical
	KeyAncient
	KeyMaster
)

// String returns the key kind name.
func (k KeyKind) String() string {
	switch k {
	case KeyStandard:
		return "standard"
	case KeySkeleton:
		return "skeleton"
	case KeyMagical:
		return "magical"
	case KeyAncient:
		return "ancient"
	case KeyMaster:
		return "master"
	default:
		return "unknown"
	}
}

// ParseKeyKind converts a key kind name to a KeyKind, defaulting to standard.
func ParseKeyKind(name string) KeyKind {
	switch name {
	case "skeleton":
		return KeySkeleton
	case "magical":
		return KeyMagical
	case "ancient":
		return KeyAncient
	case "master":
		return KeyMaster
	default:
		return KeyStandard
	}
}

// basePower returns the experience base awarded per unlock for this kind.
func (k KeyKind) basePower() int {
	switch k {
	case KeyStandard:
		return 10
	case KeySkeleton:
		return 15
	case KeyMagical:
		return 25
	case KeyAncient:
		return 30
	case KeyMaster:
		return 50
	default:
		return 10
	}
}

// successChance returns the probability that a matching unlock succeeds.
func (k KeyKind) successChance() float64 {
	switch k {
	case KeyMagical:
		return 0.90
	case KeyAncient:
		return 0.95
	case KeySkeleton:
		return 0.80
	default:
		// Standard and master keys always turn
		return 1.0
	}
}

// UnlockResult reports the outcome of an unlock attempt.
type UnlockResult struct {
	Success     bool
	KeyConsumed bool // The caller must remove the key from the inventory
	Message     string
}

// Key opens locks whose names appear in its target set. Keys are not
// consumable through Use; only a successful unlock can spend one.
type Key struct {
	usage
	keyKind   KeyKind
	targets   []string
	singleUse bool
	rng       *rand.Rand
}

// NewKey creates a single-use key for the given targets.
func NewKey(name, description string, value int, rarity Rarity, kind KeyKind, targets []string) *Key {
	return &Key{
		usage: usage{
			name:        name,
			description: description,
			value:       value,
			rarity:      rarity,
			kind:        KindKey,
			maxUses:     -1,
		},
		keyKind:   kind,
		targets:   targets,
		singleUse: true,
	}
}

// SetSingleUse controls whether a successful unlock spends the key.
func (k *Key) SetSingleUse(singleUse bool) {
	k.singleUse = singleUse
}

// SetRand sets the random source used for probabilistic unlocks.
// When unset, the shared global source is used.
func (k *Key) SetRand(rng *rand.Rand) {
	k.rng = rng
}

// KeyKind returns the key's kind.
func (k *Key) KeyKind() KeyKind { return k.keyKind }

// Targets returns the lock names this key opens.
func (k *Key) Targets() []string { return k.targets }

// SingleUse reports whether a successful unlock spends the key.
func (k *Key) SingleUse() bool { return k.singleUse }

// Use has no standalone effect; keys only matter at a lock.
func (k *Key) Use(user User) UseResult {
	return k.run(user, func(User) (bool, string) {
		return false, k.name + " does nothing on its own. Find the lock it belongs to."
	})
}

// Matches reports whether this key fits the named lock. Standard keys
// require exact membership in the target set; master keys also accept a
// case-insensitive substring match in either direction.
func (k *Key) Matches(targetName string) bool {
	for _, target := range k.targets {
		if target == targetName {
			return true
		}
		if k.keyKind == KeyMaster {
			a := strings.ToLower(target)
			b := strings.ToLower(targetName)
			if strings.Contains(a, b) || strings.Contains(b, a) {
				return true
			}
		}
	}
	return false
}

// AttemptUnlock tries the key on the named lock. A probabilistic failure
// leaves the key intact and retryable; only success can spend it.
func (k *Key) AttemptUnlock(targetName string, user User) UnlockResult {
	if k.used {
		return UnlockResult{Success: false, Message: k.name + " has already been spent."}
	}
	if !k.Matches(targetName) {
		return UnlockResult{Success: false, Message: k.name + " does not fit the lock on " + targetName + "."}
	}

	if chance := k.keyKind.successChance(); chance < 1.0 {
		if k.roll() >= chance {
			return UnlockResult{
				Success: false,
				Message: k.name + " rattles in the lock but will not turn. It might on another try.",
			}
		}
	}

	if k.singleUse {
		k.useCount++
		k.used = true
	}

	unlockPower := k.keyKind.basePower() * maxInt(1, len(k.targets))
	user.AddExperience(unlockPower * 2)

	return UnlockResult{
		Success:     true,
		KeyConsumed: k.singleUse,
		Message:     fmt.Sprintf("%s turns smoothly and %s swings open.", k.name, targetName),
	}
}

// roll returns a uniform value in [0, 1).
func (k *Key) roll() float64 {
	if k.rng != nil {
		return k.rng.Float64()
	}
	return rand.Float64()
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Ensure Key implements Item
var _ Item = (*Key)(nil)
