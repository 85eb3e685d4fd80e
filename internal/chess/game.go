package chess

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Game owns the current board, the king locations, the capture lists and the
// history of board snapshots used for undo. It is the only type callers
// should drive; the board underneath enforces no rules.
//
// A Game is not safe for concurrent use.
type Game struct {
	board         *Board
	whiteKing     Square
	blackKing     Square
	whiteCaptured []*Piece
	blackCaptured []*Piece
	history       []*Board
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	g, err := NewGameFromBoard(StartingBoard())
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameFromBoard wraps an arbitrary position. Both kings must be on the
// board.
func NewGameFromBoard(b *Board) (*Game, error) {
	wk, ok := b.KingSquare(White)
	if !ok {
		return nil, &MissingKingError{Color: White}
	}
	bk, ok := b.KingSquare(Black)
	if !ok {
		return nil, &MissingKingError{Color: Black}
	}
	return &Game{board: b, whiteKing: wk, blackKing: bk}, nil
}

// Board exposes the current position. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// KingSquare is the tracked location of color's king.
func (g *Game) KingSquare(color Color) Square {
	if color == White {
		return g.whiteKing
	}
	return g.blackKing
}

// Captured lists the pieces color has taken, in capture order.
func (g *Game) Captured(color Color) []*Piece {
	if color == White {
		return g.whiteCaptured
	}
	return g.blackCaptured
}

// Score sums the material value of the pieces color has captured.
func (g *Game) Score(color Color) int {
	score := 0
	for _, p := range g.Captured(color) {
		score += p.Kind().Value()
	}
	return score
}

// Plies is the number of executed moves still on the undo stack.
func (g *Game) Plies() int {
	return len(g.history)
}

// Clone deep-copies the game, snapshots included, so scratch play on the
// copy can never reach back into the original.
func (g *Game) Clone() *Game {
	c := &Game{
		board:         g.board.Clone(),
		whiteKing:     g.whiteKing,
		blackKing:     g.blackKing,
		whiteCaptured: slices.Clone(g.whiteCaptured),
		blackCaptured: slices.Clone(g.blackCaptured),
		history:       make([]*Board, len(g.history)),
	}
	for i, b := range g.history {
		c.history[i] = b.Clone()
	}
	return c
}

// IsChecked reports whether sq is attacked by color's opponent.
func (g *Game) IsChecked(sq Square, color Color) bool {
	return IsAttacked(g.board, sq, color)
}

// IsKingChecked reports whether color's king is in check. It fails rather
// than answering when that side's king is missing from the board.
func (g *Game) IsKingChecked(color Color) (bool, error) {
	kingSq := g.KingSquare(color)
	p := g.board.PieceAt(kingSq)
	if p == nil || p.Kind() != King || p.Color() != color {
		return false, &MissingKingError{Color: color}
	}
	return IsAttacked(g.board, kingSq, color), nil
}

// LegalMovesFrom enumerates the fully legal moves of the piece on from:
// pseudo-legal moves plus castle candidates for an unmoved king, minus stale
// en passant captures and anything that leaves the mover's own king in
// check. An empty from square yields an empty set.
func (g *Game) LegalMovesFrom(from Square) ([]Move, error) {
	p := g.board.PieceAt(from)
	if p == nil {
		return nil, nil
	}
	color := p.Color()

	candidates := PseudoLegalMoves(g.board, from)
	if p.Kind() == Pawn {
		candidates = g.dropStaleEnPassant(candidates)
	}
	if p.Kind() == King && !p.HasMoved() {
		for _, rookFile := range []File{FileA, FileH} {
			if m, err := g.CanCastle(from, Square{rookFile, from.Rank}); err == nil {
				candidates = append(candidates, m)
			}
		}
	}

	scratch := g.Clone()
	var legal []Move
	for _, m := range candidates {
		if err := scratch.ExecuteMove(m); err != nil {
			continue
		}
		checked, err := scratch.IsKingChecked(color)
		scratch.UndoLastMove()
		if err != nil {
			return nil, err
		}
		if !checked {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// LegalMoves enumerates every legal move available to color.
func (g *Game) LegalMoves(color Color) ([]Move, error) {
	var all []Move
	for i := 0; i < 64; i++ {
		sq := squareFromIndex(i)
		p := g.board.PieceAt(sq)
		if p == nil || p.Color() != color {
			continue
		}
		moves, err := g.LegalMovesFrom(sq)
		if err != nil {
			return nil, err
		}
		all = append(all, moves...)
	}
	return all, nil
}

// IsMoveValid reports whether m is a member of the legal set from its source
// square.
func (g *Game) IsMoveValid(m Move) bool {
	legal, err := g.LegalMovesFrom(m.FromSquare())
	if err != nil {
		return false
	}
	return slices.Contains(legal, m)
}

func (g *Game) dropStaleEnPassant(moves []Move) []Move {
	kept := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.Kind == MoveEnPassant && !g.enPassantAvailable(m.Captured) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// enPassantAvailable reports whether the pawn on sq arrived there on the
// immediately preceding ply.
func (g *Game) enPassantAvailable(sq Square) bool {
	if len(g.history) == 0 {
		return false
	}
	prev := g.history[len(g.history)-1]
	return prev.PieceAt(sq) == nil
}

// CanCastle validates the castle between the pieces on kingSq and rookSq and
// returns the castle move. Preconditions are checked in a fixed order:
// wrong pieces, a king or rook that has moved (king reported first), pieces
// between them, then an attacked square on the king's path. The king ends
// two files toward the rook; the rook ends on the square it jumped over.
func (g *Game) CanCastle(kingSq, rookSq Square) (Move, error) {
	king := g.board.PieceAt(kingSq)
	rook := g.board.PieceAt(rookSq)
	if king == nil || rook == nil || king.Kind() != King || rook.Kind() != Rook || king.Color() != rook.Color() {
		return Move{}, ErrCastleWrongPieces
	}
	if king.HasMoved() {
		return Move{}, &PieceHasMovedError{Square: kingSq}
	}
	if rook.HasMoved() {
		return Move{}, &PieceHasMovedError{Square: rookSq}
	}

	for _, sq := range SquaresBetween(kingSq, rookSq) {
		if sq != kingSq && sq != rookSq && g.board.PieceAt(sq) != nil {
			return Move{}, ErrCastlePiecesBetween
		}
	}

	dir := 1
	if rookSq.File < kingSq.File {
		dir = -1
	}
	kingTo, ok := kingSq.Offset(2*dir, 0)
	if !ok {
		return Move{}, ErrCastleWrongPieces
	}
	rookTo, _ := kingSq.Offset(dir, 0)

	// Only the king's own path must be safe; the rook may cross an attacked
	// square.
	for _, sq := range SquaresBetween(kingSq, kingTo) {
		if g.IsChecked(sq, king.Color()) {
			return Move{}, &SquareInCheckError{Square: sq}
		}
	}
	return CastleMove(kingSq, kingTo, rookSq, rookTo), nil
}

// ExecuteMove applies m to the game. It validates the move's own
// preconditions but not full legality; obtain moves from LegalMovesFrom for
// that. A failed execution leaves the game untouched.
func (g *Game) ExecuteMove(m Move) error {
	switch m.Kind {
	case MoveRegular:
		return g.executeRegular(m)
	case MoveCastle:
		return g.executeCastle(m)
	case MovePromotion:
		return g.executePromotion(m)
	case MoveEnPassant:
		return g.executeEnPassant(m)
	}
	return fmt.Errorf("unknown move kind %d", m.Kind)
}

func (g *Game) executeRegular(m Move) error {
	p := g.board.PieceAt(m.From)
	if p == nil {
		return &NoPieceAtSourceError{Square: m.From}
	}
	if t := g.board.PieceAt(m.To); t != nil && t.Color() == p.Color() {
		return ErrOwnPieceAtDestination
	}
	g.pushSnapshot()
	g.board.TakePiece(m.From)
	if t := g.board.TakePiece(m.To); t != nil {
		g.addCaptured(p.Color(), t)
	}
	g.board.SetPiece(m.To, p)
	if p.Kind() == King {
		g.setKingSquare(p.Color(), m.To)
	}
	return nil
}

func (g *Game) executeCastle(m Move) error {
	king := g.board.PieceAt(m.From)
	if king == nil {
		return &NoPieceAtSourceError{Square: m.From}
	}
	rook := g.board.PieceAt(m.RookFrom)
	if rook == nil {
		return &NoPieceAtSourceError{Square: m.RookFrom}
	}
	if g.board.PieceAt(m.To) != nil || g.board.PieceAt(m.RookTo) != nil {
		return ErrSquareOccupied
	}
	g.pushSnapshot()
	g.board.TakePiece(m.From)
	g.board.TakePiece(m.RookFrom)
	g.board.SetPiece(m.To, king)
	g.board.SetPiece(m.RookTo, rook)
	g.setKingSquare(king.Color(), m.To)
	return nil
}

func (g *Game) executePromotion(m Move) error {
	p := g.board.PieceAt(m.From)
	if p == nil {
		return &NoPieceAtSourceError{Square: m.From}
	}
	if t := g.board.PieceAt(m.To); t != nil && t.Color() == p.Color() {
		return ErrOwnPieceAtDestination
	}
	g.pushSnapshot()
	g.board.TakePiece(m.From)
	if t := g.board.TakePiece(m.To); t != nil {
		g.addCaptured(p.Color(), t)
	}
	g.board.SetPiece(m.To, NewPiece(m.Promotion, p.Color()))
	return nil
}

func (g *Game) executeEnPassant(m Move) error {
	p := g.board.PieceAt(m.From)
	if p == nil {
		return &NoPieceAtSourceError{Square: m.From}
	}
	if g.board.PieceAt(m.To) != nil {
		return ErrSquareOccupied
	}
	taken := g.board.PieceAt(m.Captured)
	if taken == nil || taken.Kind() != Pawn || taken.Color() == p.Color() {
		return ErrInvalidEnPassant
	}
	g.pushSnapshot()
	g.board.TakePiece(m.From)
	g.board.TakePiece(m.Captured)
	g.addCaptured(p.Color(), taken)
	g.board.SetPiece(m.To, p)
	return nil
}

// UndoLastMove restores the board to the snapshot taken before the last
// executed move and recomputes the king locations. Capture lists are not
// rewound. A game with no history is left as-is.
func (g *Game) UndoLastMove() {
	if len(g.history) == 0 {
		return
	}
	g.board = g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	if sq, ok := g.board.KingSquare(White); ok {
		g.whiteKing = sq
	}
	if sq, ok := g.board.KingSquare(Black); ok {
		g.blackKing = sq
	}
}

func (g *Game) pushSnapshot() {
	g.history = append(g.history, g.board.Clone())
}

func (g *Game) setKingSquare(color Color, sq Square) {
	if color == White {
		g.whiteKing = sq
	} else {
		g.blackKing = sq
	}
}

func (g *Game) addCaptured(by Color, p *Piece) {
	if by == White {
		g.whiteCaptured = append(g.whiteCaptured, p)
	} else {
		g.blackCaptured = append(g.blackCaptured, p)
	}
}
