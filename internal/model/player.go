package model

// Player identifies a participant on the server side.
type Player struct {
	ID string
}

// ClientPlayer is the per-seat view sent to clients.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)
