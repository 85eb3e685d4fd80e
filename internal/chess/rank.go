package chess

// Rank is a horizontal line of the board, 1 through 8. Rank 1 is white's back
// rank regardless of whose move it is.
type Rank uint8

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Offset returns the rank n steps toward 8 (negative n toward 1). The second
// return value is false when the result would leave the board.
func (r Rank) Offset(n int) (Rank, bool) {
	v := int(r) + n
	if v < 1 || v > 8 {
		return 0, false
	}
	return Rank(v), true
}

func (r Rank) String() string {
	return string('0' + rune(r))
}

func rankFromByte(b byte) (Rank, bool) {
	if b < '1' || b > '8' {
		return 0, false
	}
	return Rank(b - '0'), true
}

// pawnForward is the rank direction a pawn of color c advances in.
func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// pawnPromotionFromRank is the rank a pawn pushes off of when it promotes.
func pawnPromotionFromRank(c Color) Rank {
	if c == White {
		return Rank7
	}
	return Rank2
}

// enPassantRank is the rank a pawn of color c must stand on to capture en
// passant. The captured pawn stands on the same rank.
func enPassantRank(c Color) Rank {
	if c == White {
		return Rank5
	}
	return Rank4
}
