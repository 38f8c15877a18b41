package core

// RuntimeConfig contains settings handed to the game loop and renderer at
// startup. Seed makes a session reproducible; 0 asks the platform layer to
// seed from the wall clock.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render frames per second (default 60)
	Seed     int64 // RNG seed for the piece bag
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
