// Package player supplies move proposers for a game loop: a human on a
// terminal and a material-greedy computer opponent. The rules engine stays
// free of I/O; everything interactive lives here.
package player

import (
	"errors"

	"github.com/ijagberg/clichess/internal/chess"
)

// ErrNoLegalMoves is returned when the proposing side cannot move at all.
// The caller decides whether that means checkmate or stalemate.
var ErrNoLegalMoves = errors.New("no legal moves available")

// Player proposes one move for color on the given game. Implementations
// must only return moves drawn from the game's legal sets.
type Player interface {
	ProposeMove(game *chess.Game, color chess.Color) (chess.Move, error)
}
