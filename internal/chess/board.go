package chess

import "strings"

// Board is the fixed 64-square piece storage. It knows nothing about the
// rules of the game; Game layers those on top.
type Board struct {
	squares [64]*Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// StartingBoard returns a board with the standard initial position.
func StartingBoard() *Board {
	b := NewBoard()
	back := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, kind := range back {
		f := File(i + 1)
		b.SetPiece(Square{f, Rank1}, NewPiece(kind, White))
		b.SetPiece(Square{f, Rank2}, NewPiece(Pawn, White))
		b.SetPiece(Square{f, Rank7}, NewPiece(Pawn, Black))
		b.SetPiece(Square{f, Rank8}, NewPiece(kind, Black))
	}
	return b
}

// PieceAt returns the piece on sq, or nil for an empty square.
func (b *Board) PieceAt(sq Square) *Piece {
	return b.squares[sq.Index()]
}

// SetPiece places p on sq and records sq in the piece's history.
func (b *Board) SetPiece(sq Square, p *Piece) {
	p.recordSquare(sq)
	b.squares[sq.Index()] = p
}

// TakePiece removes and returns the piece on sq, nil for an empty square.
func (b *Board) TakePiece(sq Square) *Piece {
	p := b.squares[sq.Index()]
	b.squares[sq.Index()] = nil
	return p
}

// Clone deep-copies the board, histories included.
func (b *Board) Clone() *Board {
	c := NewBoard()
	for i, p := range b.squares {
		if p != nil {
			c.squares[i] = p.Clone()
		}
	}
	return c
}

// Equal reports whether both boards hold a piece of the same kind and color
// on every square. Histories are not compared.
func (b *Board) Equal(other *Board) bool {
	for i, p := range b.squares {
		q := other.squares[i]
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && (p.kind != q.kind || p.color != q.color) {
			return false
		}
	}
	return true
}

// KingSquare scans for the king of the given color.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for i, p := range b.squares {
		if p != nil && p.kind == King && p.color == c {
			return squareFromIndex(i), true
		}
	}
	return Square{}, false
}

// String dumps the board rank 8 first, one rune per square.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 8; r >= 1; r-- {
		for f := 1; f <= 8; f++ {
			p := b.PieceAt(Square{File(f), Rank(r)})
			if p == nil {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.Glyph())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
