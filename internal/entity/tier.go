package entity

// Tier represents the player's difficulty tier.
type Tier int

const (
	TierTrainee Tier = iota
	TierJunior
	TierSenior
)

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierTrainee:
		return "Trainee"
	case TierJunior:
		return "Junior"
	case TierSenior:
		return "Senior"
	default:
		return "Unknown"
	}
}

// ID returns the tier identifier for data lookup.
func (t Tier) ID() string {
	switch t {
	case TierTrainee:
		return "trainee"
	case TierJunior:
		return "junior"
	case TierSenior:
		return "senior"
	default:
		return "unknown"
	}
}

// Next returns the following tier. The second value is false at the
// final tier.
func (t Tier) Next() (Tier, bool) {
	switch t {
	case TierTrainee:
		return TierJunior, true
	case TierJunior:
		return TierSenior, true
	default:
		return t, false
	}
}
