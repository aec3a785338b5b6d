package gamedata

// StartDef positions the snake at the beginning of a session.
type StartDef struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"` // "up", "right", "down" or "left"
}

// Settings holds board and timing defaults loaded from JSON.
type Settings struct {
	Width             int      `json:"width"`             // Board columns
	Height            int      `json:"height"`            // Board rows
	Start             StartDef `json:"start"`             // Initial head position and heading
	TickIntervalMs    int      `json:"tickIntervalMs"`    // Minimum time between simulation ticks
	FrameIntervalMs   int      `json:"frameIntervalMs"`   // Time between frame callbacks
	FoodMinDistanceSq int      `json:"foodMinDistanceSq"` // Food must be strictly farther than this from the head
	FoodMaxAttempts   int      `json:"foodMaxAttempts"`   // Random samples before scanning the board
}

// LoadSettings loads the embedded settings.json file.
func LoadSettings() (Settings, error) {
	return Load[Settings]("settings.json")
}
