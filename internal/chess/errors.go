package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrOwnPieceAtDestination rejects a move onto a square holding a piece
	// of the mover's own color.
	ErrOwnPieceAtDestination = errors.New("own piece at destination square")
	// ErrSquareOccupied rejects a castle or en passant whose destination
	// square is not empty.
	ErrSquareOccupied = errors.New("destination square is occupied")
	// ErrInvalidEnPassant rejects an en passant whose captured square does
	// not hold an enemy pawn.
	ErrInvalidEnPassant = errors.New("no enemy pawn to capture en passant")
	// ErrCastleWrongPieces rejects a castle whose squares do not hold a king
	// and a rook of the same color.
	ErrCastleWrongPieces = errors.New("castling squares must hold a king and rook of the same color")
	// ErrCastlePiecesBetween rejects a castle with pieces between the king
	// and the rook.
	ErrCastlePiecesBetween = errors.New("pieces between king and rook")

	// ErrSquareLength rejects a coordinate that is not two characters.
	ErrSquareLength = errors.New("coordinate must be two characters, file then rank")
)

// NoPieceAtSourceError rejects a move whose source square is empty.
type NoPieceAtSourceError struct {
	Square Square
}

func (e *NoPieceAtSourceError) Error() string {
	return fmt.Sprintf("no piece at %s", e.Square)
}

// PieceHasMovedError rejects a castle with a king or rook that has already
// moved. Square identifies the offending piece.
type PieceHasMovedError struct {
	Square Square
}

func (e *PieceHasMovedError) Error() string {
	return fmt.Sprintf("piece at %s has already moved", e.Square)
}

// SquareInCheckError rejects a castle whose king would start on, pass
// through or land on an attacked square.
type SquareInCheckError struct {
	Square Square
}

func (e *SquareInCheckError) Error() string {
	return fmt.Sprintf("square %s is attacked", e.Square)
}

// MissingKingError reports a board with no king of the given color. Check
// queries fail with it rather than answering.
type MissingKingError struct {
	Color Color
}

func (e *MissingKingError) Error() string {
	return fmt.Sprintf("no %s king on the board", e.Color)
}

// InvalidFileError reports a coordinate whose first character is not a file.
type InvalidFileError struct {
	Char byte
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("invalid file %q in position 1", e.Char)
}

// InvalidRankError reports a coordinate whose second character is not a rank.
type InvalidRankError struct {
	Char byte
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank %q in position 2", e.Char)
}
