package chess

// IsAttacked reports whether sq is attacked by any piece of color's
// opponent. It is a pure spatial query over the board; it does not know or
// care whose turn it is.
func IsAttacked(b *Board, sq Square, color Color) bool {
	attacker := color.Opponent()

	for _, d := range rookDirections {
		p := firstPieceAlong(b, sq, d[0], d[1])
		if p != nil && p.Color() == attacker && (p.Kind() == Rook || p.Kind() == Queen) {
			return true
		}
	}
	for _, d := range bishopDirections {
		p := firstPieceAlong(b, sq, d[0], d[1])
		if p != nil && p.Color() == attacker && (p.Kind() == Bishop || p.Kind() == Queen) {
			return true
		}
	}
	for _, o := range knightOffsets {
		if attackerAt(b, sq, o[0], o[1], attacker, Knight) {
			return true
		}
	}
	for _, o := range kingOffsets {
		if attackerAt(b, sq, o[0], o[1], attacker, King) {
			return true
		}
	}
	// Pawn attacks arrive from one rank ahead of sq in color's direction.
	forward := pawnForward(color)
	for _, df := range []int{-1, 1} {
		if attackerAt(b, sq, df, forward, attacker, Pawn) {
			return true
		}
	}
	return false
}

func firstPieceAlong(b *Board, from Square, df, dr int) *Piece {
	to := from
	for {
		next, ok := to.Offset(df, dr)
		if !ok {
			return nil
		}
		to = next
		if p := b.PieceAt(to); p != nil {
			return p
		}
	}
}

func attackerAt(b *Board, sq Square, df, dr int, attacker Color, kind PieceKind) bool {
	to, ok := sq.Offset(df, dr)
	if !ok {
		return false
	}
	p := b.PieceAt(to)
	return p != nil && p.Color() == attacker && p.Kind() == kind
}
