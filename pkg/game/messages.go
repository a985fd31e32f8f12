package game

// Events sent to an Observer while a game is played.

type GameStartedEvent struct {
	GameID    string `json:"gameID"`
	BoardSize int    `json:"boardSize"`
	Connect   int    `json:"connect"`
}

type MoveMadeEvent struct {
	GameID string   `json:"gameID"`
	Player string   `json:"player"`
	Row    int      `json:"row"`
	Col    int      `json:"col"`
	Board  []string `json:"board"`
}

// ComputerWinningNotice is a hint that the search predicts a forced computer
// win. It does not end the game.
type ComputerWinningNotice struct {
	GameID string `json:"gameID"`
}

type GameOverEvent struct {
	GameID string `json:"gameID"`
	// Winner is "X", "O", or empty for a draw
	Winner string `json:"winner"`
}
