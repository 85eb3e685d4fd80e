package chess

// Square addresses one of the 64 board squares by file and rank.
type Square struct {
	File File
	Rank Rank
}

func NewSquare(f File, r Rank) Square {
	return Square{File: f, Rank: r}
}

// Index is the linear board slot of the square, 8*(rank-1)+(file-1).
func (s Square) Index() int {
	return 8*int(s.Rank-1) + int(s.File-1)
}

func squareFromIndex(i int) Square {
	return Square{File: File(i%8 + 1), Rank: Rank(i/8 + 1)}
}

// Offset returns the square df files and dr ranks away, or false when that
// leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, ok := s.File.Offset(df)
	if !ok {
		return Square{}, false
	}
	r, ok := s.Rank.Offset(dr)
	if !ok {
		return Square{}, false
	}
	return Square{File: f, Rank: r}, true
}

func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// ParseSquare parses a two-character coordinate such as "e4".
func ParseSquare(input string) (Square, error) {
	if len(input) != 2 {
		return Square{}, ErrSquareLength
	}
	f, ok := fileFromByte(input[0])
	if !ok {
		return Square{}, &InvalidFileError{Char: input[0]}
	}
	r, ok := rankFromByte(input[1])
	if !ok {
		return Square{}, &InvalidRankError{Char: input[1]}
	}
	return Square{File: f, Rank: r}, nil
}

// SquaresBetween returns the straight-line path from from to to, endpoints
// included, when the two squares share a file or a rank. Squares with no such
// path yield nil.
func SquaresBetween(from, to Square) []Square {
	switch {
	case from == to:
		return []Square{from}
	case from.Rank == to.Rank:
		lo, hi := from.File, to.File
		if lo > hi {
			lo, hi = hi, lo
		}
		path := make([]Square, 0, hi-lo+1)
		for f := lo; f <= hi; f++ {
			path = append(path, Square{File: f, Rank: from.Rank})
		}
		return path
	case from.File == to.File:
		lo, hi := from.Rank, to.Rank
		if lo > hi {
			lo, hi = hi, lo
		}
		path := make([]Square, 0, hi-lo+1)
		for r := lo; r <= hi; r++ {
			path = append(path, Square{File: from.File, Rank: r})
		}
		return path
	}
	return nil
}

var (
	A1 = Square{FileA, Rank1}
	A2 = Square{FileA, Rank2}
	A3 = Square{FileA, Rank3}
	A4 = Square{FileA, Rank4}
	A5 = Square{FileA, Rank5}
	A6 = Square{FileA, Rank6}
	A7 = Square{FileA, Rank7}
	A8 = Square{FileA, Rank8}

	B1 = Square{FileB, Rank1}
	B2 = Square{FileB, Rank2}
	B3 = Square{FileB, Rank3}
	B4 = Square{FileB, Rank4}
	B5 = Square{FileB, Rank5}
	B6 = Square{FileB, Rank6}
	B7 = Square{FileB, Rank7}
	B8 = Square{FileB, Rank8}

	C1 = Square{FileC, Rank1}
	C2 = Square{FileC, Rank2}
	C3 = Square{FileC, Rank3}
	C4 = Square{FileC, Rank4}
	C5 = Square{FileC, Rank5}
	C6 = Square{FileC, Rank6}
	C7 = Square{FileC, Rank7}
	C8 = Square{FileC, Rank8}

	D1 = Square{FileD, Rank1}
	D2 = Square{FileD, Rank2}
	D3 = Square{FileD, Rank3}
	D4 = Square{FileD, Rank4}
	D5 = Square{FileD, Rank5}
	D6 = Square{FileD, Rank6}
	D7 = Square{FileD, Rank7}
	D8 = Square{FileD, Rank8}

	E1 = Square{FileE, Rank1}
	E2 = Square{FileE, Rank2}
	E3 = Square{FileE, Rank3}
	E4 = Square{FileE, Rank4}
	E5 = Square{FileE, Rank5}
	E6 = Square{FileE, Rank6}
	E7 = Square{FileE, Rank7}
	E8 = Square{FileE, Rank8}

	F1 = Square{FileF, Rank1}
	F2 = Square{FileF, Rank2}
	F3 = Square{FileF, Rank3}
	F4 = Square{FileF, Rank4}
	F5 = Square{FileF, Rank5}
	F6 = Square{FileF, Rank6}
	F7 = Square{FileF, Rank7}
	F8 = Square{FileF, Rank8}

	G1 = Square{FileG, Rank1}
	G2 = Square{FileG, Rank2}
	G3 = Square{FileG, Rank3}
	G4 = Square{FileG, Rank4}
	G5 = Square{FileG, Rank5}
	G6 = Square{FileG, Rank6}
	G7 = Square{FileG, Rank7}
	G8 = Square{FileG, Rank8}

	H1 = Square{FileH, Rank1}
	H2 = Square{FileH, Rank2}
	H3 = Square{FileH, Rank3}
	H4 = Square{FileH, Rank4}
	H5 = Square{FileH, Rank5}
	H6 = Square{FileH, Rank6}
	H7 = Square{FileH, Rank7}
	H8 = Square{FileH, Rank8}
)
