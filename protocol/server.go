package protocol

// Messages sent by the server.

type Welcome struct {
	PlayerID string `json:"playerId"`
	Pilot    bool   `json:"pilot"`
	TickHz   int    `json:"tickHz"`
}

// State is one broadcast snapshot of a run.
type State struct {
	Tick      int              `json:"tick"`
	Score     int              `json:"score"`
	Pilot     string           `json:"pilot,omitempty"`
	GameOver  bool             `json:"gameOver,omitempty"`
	Thickness float64          `json:"thickness"`
	Joints    []PointSnapshot  `json:"joints"`
	Chasers   []ChaserSnapshot `json:"chasers,omitempty"`
}

type PointSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ChaserSnapshot struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	R   float64 `json:"r"`
	Hue uint8   `json:"hue"`
}
