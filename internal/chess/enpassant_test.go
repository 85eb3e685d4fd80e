package chess_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijagberg/clichess/internal/chess"
)

// advance plays white d-pawn to d5 with a black filler move in between, then
// answers with e7e5, leaving the en passant capture d5xe6 on the table.
func advanceToEnPassant(t *testing.T) *chess.Game {
	t.Helper()
	g := chess.NewGame()
	mustExecute(t, g, chess.RegularMove(chess.D2, chess.D4))
	mustExecute(t, g, chess.RegularMove(chess.A7, chess.A6))
	mustExecute(t, g, chess.RegularMove(chess.D4, chess.D5))
	mustExecute(t, g, chess.RegularMove(chess.E7, chess.E5))
	return g
}

func TestEnPassantOfferedImmediately(t *testing.T) {
	g := advanceToEnPassant(t)

	got, err := g.LegalMovesFrom(chess.D5)
	if err != nil {
		t.Fatalf("LegalMovesFrom: %v", err)
	}
	want := []chess.Move{
		chess.RegularMove(chess.D5, chess.D6),
		chess.EnPassantMove(chess.D5, chess.E6, chess.E5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn moves mismatch (-want +got):\n%s", diff)
	}
}

func TestEnPassantExpiresAfterOnePly(t *testing.T) {
	g := advanceToEnPassant(t)
	mustExecute(t, g, chess.RegularMove(chess.A2, chess.A3))
	mustExecute(t, g, chess.RegularMove(chess.H7, chess.H6))

	got, err := g.LegalMovesFrom(chess.D5)
	if err != nil {
		t.Fatalf("LegalMovesFrom: %v", err)
	}
	for _, m := range got {
		if m.Kind == chess.MoveEnPassant {
			t.Errorf("stale en passant still offered: %s", m)
		}
	}
}

func TestEnPassantExecution(t *testing.T) {
	g := advanceToEnPassant(t)
	mustExecute(t, g, chess.EnPassantMove(chess.D5, chess.E6, chess.E5))

	if g.Board().PieceAt(chess.E5) != nil {
		t.Error("the captured pawn should be gone from e5")
	}
	if g.Board().PieceAt(chess.D5) != nil {
		t.Error("the capturing pawn should have left d5")
	}
	if p := g.Board().PieceAt(chess.E6); p == nil || p.Kind() != chess.Pawn || p.Color() != chess.White {
		t.Error("the capturing pawn should stand on e6")
	}
	if got := g.Score(chess.White); got != 1 {
		t.Errorf("white score = %d, want 1", got)
	}
}

func TestEnPassantUndo(t *testing.T) {
	g := advanceToEnPassant(t)
	before := g.Board().Clone()

	mustExecute(t, g, chess.EnPassantMove(chess.D5, chess.E6, chess.E5))
	g.UndoLastMove()
	if !g.Board().Equal(before) {
		t.Errorf("board not restored after en passant undo:\n%s", g.Board())
	}
}

func TestEnPassantRejectsEmptyCapturedSquare(t *testing.T) {
	g := chess.NewGame()
	err := g.ExecuteMove(chess.EnPassantMove(chess.D2, chess.E3, chess.E5))
	if err == nil {
		t.Fatal("want an error for an empty captured square")
	}
}
