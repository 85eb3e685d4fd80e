package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN encodes the position in Forsyth-Edwards notation with toMove to play.
// Castling rights come from the piece histories and the en passant target
// from the snapshot history, so a parsed game re-encodes faithfully. The
// halfmove clock is always 0; the engine tracks no draw rules.
func (g *Game) FEN(toMove Color) string {
	var sb strings.Builder
	for r := 8; r >= 1; r-- {
		empty := 0
		for f := 1; f <= 8; f++ {
			p := g.board.PieceAt(Square{File(f), Rank(r)})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(g.castlingRights())

	sb.WriteByte(' ')
	if target, ok := g.enPassantTarget(toMove); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	fullmove := len(g.history)/2 + 1
	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(fullmove))
	return sb.String()
}

func (g *Game) castlingRights() string {
	unmoved := func(sq Square, kind PieceKind, color Color) bool {
		p := g.board.PieceAt(sq)
		return p != nil && p.Kind() == kind && p.Color() == color && !p.HasMoved()
	}
	var sb strings.Builder
	if unmoved(E1, King, White) {
		if unmoved(H1, Rook, White) {
			sb.WriteByte('K')
		}
		if unmoved(A1, Rook, White) {
			sb.WriteByte('Q')
		}
	}
	if unmoved(E8, King, Black) {
		if unmoved(H8, Rook, Black) {
			sb.WriteByte('k')
		}
		if unmoved(A8, Rook, Black) {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// enPassantTarget finds the square behind an enemy pawn that double-stepped
// on the immediately preceding ply.
func (g *Game) enPassantTarget(toMove Color) (Square, bool) {
	opp := toMove.Opponent()
	victimRank := enPassantRank(toMove)
	for f := 1; f <= 8; f++ {
		sq := Square{File(f), victimRank}
		p := g.board.PieceAt(sq)
		if p == nil || p.Kind() != Pawn || p.Color() != opp {
			continue
		}
		prev, ok := p.PreviousSquare()
		if !ok {
			continue
		}
		start, ok := sq.Offset(0, -2*pawnForward(opp))
		if !ok || prev != start || !g.enPassantAvailable(sq) {
			continue
		}
		target, _ := sq.Offset(0, -pawnForward(opp))
		return target, true
	}
	return Square{}, false
}

func fenLetter(p *Piece) byte {
	var b byte
	switch p.Kind() {
	case Pawn:
		b = 'p'
	case Knight:
		b = 'n'
	case Bishop:
		b = 'b'
	case Rook:
		b = 'r'
	case Queen:
		b = 'q'
	case King:
		b = 'k'
	}
	if p.Color() == White {
		b -= 'a' - 'A'
	}
	return b
}

func pieceFromFENLetter(b byte) (PieceKind, Color, bool) {
	color := Black
	if b >= 'A' && b <= 'Z' {
		color = White
		b += 'a' - 'A'
	}
	switch b {
	case 'p':
		return Pawn, color, true
	case 'n':
		return Knight, color, true
	case 'b':
		return Bishop, color, true
	case 'r':
		return Rook, color, true
	case 'q':
		return Queen, color, true
	case 'k':
		return King, color, true
	}
	return 0, 0, false
}

// ParseFEN builds a playable Game from a FEN record and returns the side to
// move. Absent castling rights are recorded as moved kings and rooks; an en
// passant target is materialized as a synthetic previous snapshot so the
// one-ply recency rule holds for the capture.
func ParseFEN(fen string) (*Game, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, 0, fmt.Errorf("fen: want at least 4 fields, got %d", len(fields))
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, 0, fmt.Errorf("fen: want 8 ranks, got %d", len(rows))
	}
	board := NewBoard()
	for i, row := range rows {
		r := Rank(8 - i)
		f := 1
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			kind, color, ok := pieceFromFENLetter(ch)
			if !ok {
				return nil, 0, fmt.Errorf("fen: invalid piece %q", ch)
			}
			if f > 8 {
				return nil, 0, fmt.Errorf("fen: rank %d overflows", r)
			}
			board.SetPiece(Square{File(f), r}, NewPiece(kind, color))
			f++
		}
		if f != 9 {
			return nil, 0, fmt.Errorf("fen: rank %d holds %d files", r, f-1)
		}
	}

	var toMove Color
	switch fields[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return nil, 0, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	markMoved := func(sq Square, kind PieceKind, color Color) {
		if p := board.PieceAt(sq); p != nil && p.Kind() == kind && p.Color() == color {
			p.recordSquare(sq)
		}
	}
	rights := fields[2]
	if !strings.Contains(rights, "K") {
		markMoved(H1, Rook, White)
	}
	if !strings.Contains(rights, "Q") {
		markMoved(A1, Rook, White)
	}
	if !strings.ContainsAny(rights, "KQ") {
		markMoved(E1, King, White)
	}
	if !strings.Contains(rights, "k") {
		markMoved(H8, Rook, Black)
	}
	if !strings.Contains(rights, "q") {
		markMoved(A8, Rook, Black)
	}
	if !strings.ContainsAny(rights, "kq") {
		markMoved(E8, King, Black)
	}

	game, err := NewGameFromBoard(board)
	if err != nil {
		return nil, 0, err
	}

	if fields[3] != "-" {
		target, err := ParseSquare(fields[3])
		if err != nil {
			return nil, 0, fmt.Errorf("fen: en passant target: %w", err)
		}
		if err := game.seedEnPassant(target, toMove); err != nil {
			return nil, 0, err
		}
	}
	return game, toMove, nil
}

// seedEnPassant fabricates the double-step ply a FEN en passant target
// implies: the pawn's history reads start then current, and a previous
// snapshot with the pawn still on its start square goes on the undo stack.
func (g *Game) seedEnPassant(target Square, toMove Color) error {
	opp := toMove.Opponent()
	forward := pawnForward(opp)
	pawnSq, ok := target.Offset(0, forward)
	if !ok {
		return fmt.Errorf("fen: invalid en passant target %s", target)
	}
	startSq, ok := target.Offset(0, -forward)
	if !ok {
		return fmt.Errorf("fen: invalid en passant target %s", target)
	}
	pawn := g.board.PieceAt(pawnSq)
	if pawn == nil || pawn.Kind() != Pawn || pawn.Color() != opp {
		return fmt.Errorf("fen: no %s pawn behind en passant target %s", opp, target)
	}
	pawn.history = []Square{startSq, pawnSq}

	prev := g.board.Clone()
	prev.TakePiece(pawnSq)
	prev.SetPiece(startSq, NewPiece(Pawn, opp))
	g.history = append(g.history, prev)
	return nil
}
