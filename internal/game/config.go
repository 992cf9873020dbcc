package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// PlayerName is the display name for the player. Blank falls back
	// to the default recruit name.
	PlayerName string
}
