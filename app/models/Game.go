package models

type Game struct {
	Id      string      `json:"id"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Round   int         `json:"round"`
	Players []PlayerDto `json:"players"`
}

// TurnDto is published after every turn.
type TurnDto struct {
	Game_id string    `json:"game_id"`
	Round   int       `json:"round"`
	Player  PlayerDto `json:"player"`
	Rolls   [][2]int  `json:"rolls"`
	Doubles int       `json:"doubles"`
	Outcome string    `json:"outcome"`
	Skipped []string  `json:"skipped_unmortgages,omitempty"`
	Error   string    `json:"error,omitempty"`
}
