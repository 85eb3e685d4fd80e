package player

import (
	"github.com/ijagberg/clichess/internal/chess"
	"golang.org/x/exp/slices"
)

// Greedy proposes the capture worth the most material, falling back to the
// first quiet move in a deterministic ordering. It never looks ahead; it is
// the demo opponent, not an engine.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (Greedy) ProposeMove(game *chess.Game, color chess.Color) (chess.Move, error) {
	moves, err := game.LegalMoves(color)
	if err != nil {
		return chess.Move{}, err
	}
	if len(moves) == 0 {
		return chess.Move{}, ErrNoLegalMoves
	}

	// Stable order first so equal-value choices do not depend on board scan
	// order details.
	slices.SortStableFunc(moves, func(a, b chess.Move) bool {
		return a.String() < b.String()
	})

	best := moves[0]
	bestGain := captureGain(game, best)
	for _, m := range moves[1:] {
		if gain := captureGain(game, m); gain > bestGain {
			best, bestGain = m, gain
		}
	}
	return best, nil
}

func captureGain(game *chess.Game, m chess.Move) int {
	switch m.Kind {
	case chess.MoveEnPassant:
		return chess.Pawn.Value()
	case chess.MoveRegular, chess.MovePromotion:
		if p := game.Board().PieceAt(m.To); p != nil {
			return p.Kind().Value()
		}
	}
	return 0
}
