package session

type SessionStartedEvent struct {
	SessionID string `json:"sessionID"`
}

// SessionOverEvent carries the tally of every game played in the session.
type SessionOverEvent struct {
	SessionID    string `json:"sessionID"`
	Games        int    `json:"games"`
	HumanWins    int    `json:"humanWins"`
	ComputerWins int    `json:"computerWins"`
	Draws        int    `json:"draws"`
}
