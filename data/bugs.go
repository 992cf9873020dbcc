package data

import "github.com/gdamore/tcell/v2"

// BugDef defines a bug enemy type loaded from JSON.
type BugDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "null_pointer")
	Name        string  `json:"name"`        // Display name (e.g., "Null Pointer")
	Description string  `json:"description"` // Flavor text shown on encounter
	Glyph       string  `json:"glyph"`       // Single character for rendering (e.g., "N")
	Color       string  `json:"color"`       // Hex color code (e.g., "#FF5555")
	HP          int     `json:"hp"`          // Base hit points
	Damage      int     `json:"damage"`      // Damage dealt on a wrong answer
	Defense     int     `json:"defense"`     // Base defense value
	XPReward    int     `json:"xpReward"`    // Experience granted when defeated
	Multiplier  float64 `json:"multiplier"`  // Difficulty multiplier applied to damage dealt to it
	Tier        string  `json:"tier"`        // Lowest tier this bug appears in
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (b *BugDef) GlyphRune() rune {
	if len(b.Glyph) == 0 {
		return '?'
	}
	return rune(b.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (b *BugDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(b.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// BugsFile represents the structure of bugs.json.
type BugsFile struct {
	Bugs []BugDef `json:"bugs"`
}

// LoadBugs loads bug definitions from the embedded bugs.json file.
func LoadBugs() ([]BugDef, error) {
	file, err := Load[BugsFile]("bugs.json")
	if err != nil {
		return nil, err
	}
	return file.Bugs, nil
}

// MustLoadBugs loads bug definitions, panicking on error.
func MustLoadBugs() []BugDef {
	bugs, err := LoadBugs()
	if err != nil {
		panic(err)
	}
	return bugs
}
