package chess

var (
	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// PseudoLegalMoves enumerates the squares the piece on from could reach by
// its movement pattern alone, without regard to king safety. An empty from
// square yields no moves. Castles are not generated here; Game constructs
// them through CanCastle.
func PseudoLegalMoves(b *Board, from Square) []Move {
	p := b.PieceAt(from)
	if p == nil {
		return nil
	}
	switch p.Kind() {
	case Pawn:
		return pawnMoves(b, from, p.Color())
	case Knight:
		return offsetMoves(b, from, p.Color(), knightOffsets)
	case Bishop:
		return slidingMoves(b, from, p.Color(), bishopDirections[:])
	case Rook:
		return slidingMoves(b, from, p.Color(), rookDirections[:])
	case Queen:
		dirs := append(rookDirections[:0:0], rookDirections[:]...)
		return slidingMoves(b, from, p.Color(), append(dirs, bishopDirections[:]...))
	case King:
		return offsetMoves(b, from, p.Color(), kingOffsets)
	}
	return nil
}

func slidingMoves(b *Board, from Square, color Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		moves = append(moves, rayMoves(b, from, color, d[0], d[1])...)
	}
	return moves
}

// rayMoves walks outward from from one step at a time, stopping at the first
// occupied square. That square is included when it holds an enemy piece.
func rayMoves(b *Board, from Square, color Color, df, dr int) []Move {
	var moves []Move
	to := from
	for {
		next, ok := to.Offset(df, dr)
		if !ok {
			return moves
		}
		to = next
		if p := b.PieceAt(to); p != nil {
			if p.Color() != color {
				moves = append(moves, RegularMove(from, to))
			}
			return moves
		}
		moves = append(moves, RegularMove(from, to))
	}
}

func offsetMoves(b *Board, from Square, color Color, offsets [8][2]int) []Move {
	var moves []Move
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if p := b.PieceAt(to); p != nil && p.Color() == color {
			continue
		}
		moves = append(moves, RegularMove(from, to))
	}
	return moves
}

func pawnMoves(b *Board, from Square, color Color) []Move {
	forward := pawnForward(color)
	ahead, ok := from.Offset(0, forward)
	if !ok {
		return nil
	}
	promoting := from.Rank == pawnPromotionFromRank(color)

	var moves []Move
	if b.PieceAt(ahead) == nil {
		if promoting {
			moves = append(moves, PromotionMoves(from, ahead)...)
		} else {
			moves = append(moves, RegularMove(from, ahead))
			if from.Rank == pawnStartRank(color) {
				ahead2, _ := from.Offset(0, 2*forward)
				if b.PieceAt(ahead2) == nil {
					moves = append(moves, RegularMove(from, ahead2))
				}
			}
		}
	}
	for _, df := range []int{-1, 1} {
		diag, ok := from.Offset(df, forward)
		if !ok {
			continue
		}
		if p := b.PieceAt(diag); p != nil && p.Color() != color {
			if promoting {
				moves = append(moves, PromotionMoves(from, diag)...)
			} else {
				moves = append(moves, RegularMove(from, diag))
			}
		}
	}
	// En passant candidates from the adjacent pawn's own history. Game
	// additionally checks the double step was the immediately preceding ply.
	if from.Rank == enPassantRank(color) {
		for _, df := range []int{-1, 1} {
			side, ok := from.Offset(df, 0)
			if !ok {
				continue
			}
			p := b.PieceAt(side)
			if p == nil || p.Kind() != Pawn || p.Color() == color {
				continue
			}
			prev, ok := p.PreviousSquare()
			if !ok {
				continue
			}
			start, ok := side.Offset(0, 2*forward)
			if !ok || prev != start {
				continue
			}
			to, _ := side.Offset(0, forward)
			moves = append(moves, EnPassantMove(from, to, side))
		}
	}
	return moves
}
