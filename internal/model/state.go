package model

import "time"

// WireMove is a move as the client sends it: two coordinates plus an
// optional promotion letter (n, b, r or q). The room resolves it against the
// engine's legal sets, so castles and en passant need no special encoding.
type WireMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// GameState is the full room snapshot broadcast to every connection after a
// move and on connect.
type GameState struct {
	FEN            string         `json:"fen"`
	Render         string         `json:"render"`
	ToMove         string         `json:"toMove"`
	Moves          []string       `json:"moves"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	Resolve        *string        `json:"resolve"`
	LastMove       *WireMove      `json:"lastMove"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// CapturedPieces lists piece kind names per capturing side, in capture order.
type CapturedPieces struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// MatchFoundEvent is pushed to a queued player when matchmaking pairs them.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
}

// Result describes a finished game for the archive.
type Result struct {
	GameID   string    `json:"gameId"`
	Result   string    `json:"result"`
	FinalFEN string    `json:"finalFen"`
	Moves    []string  `json:"moves"`
	EndedAt  time.Time `json:"endedAt"`
}
