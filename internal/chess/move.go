package chess

import "fmt"

// MoveKind discriminates the move variants.
type MoveKind uint8

const (
	MoveRegular MoveKind = iota
	MoveCastle
	MovePromotion
	MoveEnPassant
)

// Move is one move in any of its four variants. Fields a variant does not use
// stay zero, so moves compare structurally with == and the legal-move sets
// can be searched by plain equality.
type Move struct {
	Kind MoveKind
	From Square // the king, for castle moves
	To   Square
	// castle only
	RookFrom Square
	RookTo   Square
	// promotion only
	Promotion PieceKind
	// en passant only: the square of the captured pawn
	Captured Square
}

func RegularMove(from, to Square) Move {
	return Move{Kind: MoveRegular, From: from, To: to}
}

func CastleMove(kingFrom, kingTo, rookFrom, rookTo Square) Move {
	return Move{Kind: MoveCastle, From: kingFrom, To: kingTo, RookFrom: rookFrom, RookTo: rookTo}
}

func PromotionMove(from, to Square, kind PieceKind) Move {
	return Move{Kind: MovePromotion, From: from, To: to, Promotion: kind}
}

// PromotionMoves expands the four promotion choices for a pawn push or
// capture onto the back rank.
func PromotionMoves(from, to Square) []Move {
	return []Move{
		PromotionMove(from, to, Knight),
		PromotionMove(from, to, Bishop),
		PromotionMove(from, to, Rook),
		PromotionMove(from, to, Queen),
	}
}

func EnPassantMove(from, to, captured Square) Move {
	return Move{Kind: MoveEnPassant, From: from, To: to, Captured: captured}
}

// FromSquare is the square of the piece the mover picked up.
func (m Move) FromSquare() Square {
	return m.From
}

func (m Move) String() string {
	switch m.Kind {
	case MoveCastle:
		return fmt.Sprintf("%s%s (castle)", m.From, m.To)
	case MovePromotion:
		return fmt.Sprintf("%s%s=%s", m.From, m.To, m.Promotion)
	case MoveEnPassant:
		return fmt.Sprintf("%s%s e.p.", m.From, m.To)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}
