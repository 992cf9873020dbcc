// Package game provides the main game loop and state management.
package game

// State represents the current game mode.
type State int

const (
	// StateExplore is the default mode: the player moves across the grid.
	StateExplore State = iota
	// StateCombat collects an answer for the active encounter.
	StateCombat
	// StatePrompt waits for a yes/no decision offered by a room.
	StatePrompt
	// StateInventory shows the pack; digits use items.
	StateInventory
	// StateHelp shows the key bindings.
	StateHelp
	// StateGameOver is terminal: the player fell.
	StateGameOver
	// StateVictory is terminal: the final treasure is claimed.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	case StatePrompt:
		return "prompt"
	case StateInventory:
		return "inventory"
	case StateHelp:
		return "help"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
