package http

// CreateMatchRequest is the payload for /create-match.
type CreateMatchRequest struct {
	PlayerName string `json:"playerName"`
	BoardSize  int    `json:"boardSize"` // 11 or 13; 0 picks the configured default
}

// JoinMatchRequest is the payload for /join-match.
type JoinMatchRequest struct {
	Code       string `json:"code"`
	PlayerName string `json:"playerName"`
}

// MoveRequest is one move in external notation: row letter plus 1-based
// column, e.g. "F2" -> "F6".
type MoveRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// SaveRequest names the slot a running match is written to.
type SaveRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LoadRequest resumes a saved match.
type LoadRequest struct {
	Name string `json:"name"`
}

// DeleteSaveRequest removes a save slot.
type DeleteSaveRequest struct {
	Name string `json:"name"`
}

// MoveBox is one legal move in external notation, for FE highlighting.
type MoveBox struct {
	From string `json:"from"`
	To   string `json:"to"`
}
