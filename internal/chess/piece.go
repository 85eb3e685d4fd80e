package chess

// PieceKind is the movement class of a piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "unknown"
}

// Value is the conventional material value of the kind. Kings are worth
// nothing since they cannot be captured.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// Piece is a piece together with the squares it has occupied. Placement on a
// board records the square, so a piece that has never moved still knows where
// it stands.
type Piece struct {
	kind    PieceKind
	color   Color
	history []Square
}

func NewPiece(kind PieceKind, color Color) *Piece {
	return &Piece{kind: kind, color: color}
}

func (p *Piece) Kind() PieceKind {
	return p.kind
}

func (p *Piece) Color() Color {
	return p.color
}

// History returns the squares the piece has occupied, oldest first. The last
// entry is its current square. Callers must not mutate the slice.
func (p *Piece) History() []Square {
	return p.history
}

// HasMoved reports whether the piece has left the square it was placed on.
func (p *Piece) HasMoved() bool {
	return len(p.history) > 1
}

// PreviousSquare is the square the piece last moved from, false for a piece
// that has never moved.
func (p *Piece) PreviousSquare() (Square, bool) {
	if len(p.history) < 2 {
		return Square{}, false
	}
	return p.history[len(p.history)-2], true
}

func (p *Piece) recordSquare(sq Square) {
	p.history = append(p.history, sq)
}

func (p *Piece) Clone() *Piece {
	c := &Piece{kind: p.kind, color: p.color}
	c.history = make([]Square, len(p.history))
	copy(c.history, p.history)
	return c
}

// Glyph returns the Unicode figurine for the piece.
func (p *Piece) Glyph() string {
	if p.color == White {
		switch p.kind {
		case Pawn:
			return "♙"
		case Knight:
			return "♘"
		case Bishop:
			return "♗"
		case Rook:
			return "♖"
		case Queen:
			return "♕"
		case King:
			return "♔"
		}
	}
	switch p.kind {
	case Pawn:
		return "♟"
	case Knight:
		return "♞"
	case Bishop:
		return "♝"
	case Rook:
		return "♜"
	case Queen:
		return "♛"
	case King:
		return "♚"
	}
	return "?"
}

func (p *Piece) String() string {
	return p.Glyph()
}
