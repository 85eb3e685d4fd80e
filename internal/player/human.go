package player

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ijagberg/clichess/internal/chess"
)

// Human proposes moves by prompting on the given reader and writer. It
// renders the board from the mover's perspective with the selected piece's
// destinations highlighted.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) ProposeMove(game *chess.Game, color chess.Color) (chess.Move, error) {
	all, err := game.LegalMoves(color)
	if err != nil {
		return chess.Move{}, err
	}
	if len(all) == 0 {
		return chess.Move{}, ErrNoLegalMoves
	}

	for {
		from, err := h.promptSquare(fmt.Sprintf("%s to move, choose a piece: ", color))
		if err != nil {
			return chess.Move{}, err
		}
		p := game.Board().PieceAt(from)
		if p == nil || p.Color() != color {
			fmt.Fprintf(h.out, "no %s piece at %s\n", color, from)
			continue
		}
		moves, err := game.LegalMovesFrom(from)
		if err != nil {
			return chess.Move{}, err
		}
		if len(moves) == 0 {
			fmt.Fprintf(h.out, "the %s at %s has no legal moves\n", p.Kind(), from)
			continue
		}

		highlights := make(map[chess.Square]bool, len(moves))
		for _, m := range moves {
			highlights[m.To] = true
		}
		fmt.Fprint(h.out, chess.Perspective(game.Board(), color, highlights))

		to, err := h.promptSquare("choose a destination (or the piece again to reselect): ")
		if err != nil {
			return chess.Move{}, err
		}
		if to == from {
			continue
		}
		candidates := movesTo(moves, to)
		if len(candidates) == 0 {
			fmt.Fprintf(h.out, "%s cannot move to %s\n", p.Kind(), to)
			continue
		}
		if len(candidates) == 1 {
			return candidates[0], nil
		}
		return h.promptPromotion(candidates)
	}
}

func (h *Human) promptSquare(prompt string) (chess.Square, error) {
	for {
		fmt.Fprint(h.out, prompt)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return chess.Square{}, err
			}
			return chess.Square{}, io.EOF
		}
		sq, err := chess.ParseSquare(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		return sq, nil
	}
}

// promptPromotion picks among moves that share a destination, which only
// happens for the four promotion choices.
func (h *Human) promptPromotion(candidates []chess.Move) (chess.Move, error) {
	for {
		fmt.Fprint(h.out, "promote to (n, b, r, q): ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return chess.Move{}, err
			}
			return chess.Move{}, io.EOF
		}
		var kind chess.PieceKind
		switch h.in.Text() {
		case "n":
			kind = chess.Knight
		case "b":
			kind = chess.Bishop
		case "r":
			kind = chess.Rook
		case "q":
			kind = chess.Queen
		default:
			fmt.Fprintf(h.out, "unknown piece %q\n", h.in.Text())
			continue
		}
		for _, m := range candidates {
			if m.Promotion == kind {
				return m, nil
			}
		}
		fmt.Fprintf(h.out, "%s is not offered here\n", kind)
	}
}

func movesTo(moves []chess.Move, to chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.To == to {
			out = append(out, m)
		}
	}
	return out
}
