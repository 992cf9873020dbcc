package data

// ItemDef defines an item placed in a room, loaded from JSON.
type ItemDef struct {
	Kind        string `json:"kind"`        // "treasure" or "key"
	Name        string `json:"name"`        // Display name; also the de-dup key for collection
	Description string `json:"description"` // Flavor text
	Value       int    `json:"value"`       // Gold value
	Rarity      string `json:"rarity"`      // common/uncommon/rare/epic/legendary

	// Treasure fields
	Healing  int    `json:"healing,omitempty"`  // Healing power
	Overheal bool   `json:"overheal,omitempty"` // May raise max health past the cap
	Bonus    string `json:"bonus,omitempty"`    // Secondary effect: power/defense/experience/restore/luck

	// Key fields
	KeyKind  string   `json:"keyKind,omitempty"`  // standard/skeleton/magical/ancient/master
	Targets  []string `json:"targets,omitempty"`  // Lock names this key opens
	MultiUse bool     `json:"multiUse,omitempty"` // Survives a successful unlock
}

// StatOverrideDef overrides a bug's base stats for boss placements.
// Zero fields keep the base value.
type StatOverrideDef struct {
	HP       int `json:"hp,omitempty"`
	Damage   int `json:"damage,omitempty"`
	Defense  int `json:"defense,omitempty"`
	XPReward int `json:"xpReward,omitempty"`
}

// RoomDef defines one room placement within a level, loaded from JSON.
// Locked rooms embed the definition of the room behind the door.
type RoomDef struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Type        string `json:"type"` // empty/treasure/enemy/locked
	Name        string `json:"name"`
	Description string `json:"description"`

	// Empty room fields
	Secret string `json:"secret,omitempty"` // Hidden secret text; empty means no secret

	// Treasure room fields
	Items   []ItemDef `json:"items,omitempty"`
	LootCap int       `json:"lootCap,omitempty"` // Loot attempts allowed; 0 means default, -1 unlimited

	// Enemy room fields
	Bug       string           `json:"bug,omitempty"`       // Bug definition ID
	Questions int              `json:"questions,omitempty"` // Pool size drawn from the tier's question set
	Respawn   bool             `json:"respawn,omitempty"`
	Boss      *StatOverrideDef `json:"boss,omitempty"`

	// Locked room fields
	RequiredKey string   `json:"requiredKey,omitempty"`
	Inner       *RoomDef `json:"inner,omitempty"`
}

// LevelDef defines one difficulty tier's map, loaded from JSON.
type LevelDef struct {
	Tier        string    `json:"tier"` // trainee/junior/senior
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	StartX      int       `json:"startX"`
	StartY      int       `json:"startY"`
	GoalItem    string    `json:"goalItem"` // Owning this item completes the level
	Final       bool      `json:"final"`    // Completing the final level wins the game
	Rooms       []RoomDef `json:"rooms"`
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// MustLoadLevels loads level definitions, panicking on error.
func MustLoadLevels() []LevelDef {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
