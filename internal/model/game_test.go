package model_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijagberg/clichess/internal/model"
)

func seatedGame(t *testing.T, onResolve func(model.Result)) *model.Game {
	t.Helper()
	g := model.NewGame("test-game", onResolve)
	if _, err := g.AddPlayer("alice"); err != nil {
		t.Fatalf("AddPlayer(alice): %v", err)
	}
	if _, err := g.AddPlayer("bob"); err != nil {
		t.Fatalf("AddPlayer(bob): %v", err)
	}
	return g
}

func mustMove(t *testing.T, g *model.Game, playerID, from, to string) {
	t.Helper()
	if err := g.MakeMove(playerID, model.WireMove{From: from, To: to}); err != nil {
		t.Fatalf("MakeMove(%s, %s%s): %v", playerID, from, to, err)
	}
}

func TestAddPlayerSeatsWhiteThenBlack(t *testing.T) {
	g := model.NewGame("test-game", nil)

	color, err := g.AddPlayer("alice")
	if err != nil {
		t.Fatalf("AddPlayer(alice): %v", err)
	}
	if color != model.PlayerColorWhite {
		t.Errorf("first player got color %q, want white", color)
	}

	color, err = g.AddPlayer("bob")
	if err != nil {
		t.Fatalf("AddPlayer(bob): %v", err)
	}
	if color != model.PlayerColorBlack {
		t.Errorf("second player got color %q, want black", color)
	}

	if _, err := g.AddPlayer("carol"); err == nil {
		t.Error("expected an error seating a third player")
	}
	if !g.IsPlayerInGame("alice") || !g.IsPlayerInGame("bob") {
		t.Error("seated players should be in the game")
	}
	if g.IsPlayerInGame("carol") {
		t.Error("unseated player should not be in the game")
	}
	if g.CanSpectate() {
		t.Error("full game should not be spectatable")
	}
}

func TestMakeMoveEnforcesTurnOrder(t *testing.T) {
	g := seatedGame(t, nil)

	if err := g.MakeMove("bob", model.WireMove{From: "e7", To: "e5"}); err == nil {
		t.Error("expected an error when black moves first")
	}

	mustMove(t, g, "alice", "e2", "e4")

	if err := g.MakeMove("alice", model.WireMove{From: "d2", To: "d4"}); err == nil {
		t.Error("expected an error when white moves twice")
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := seatedGame(t, nil)

	if err := g.MakeMove("alice", model.WireMove{From: "e2", To: "e5"}); err == nil {
		t.Error("expected an error for an illegal pawn move")
	}
	if err := g.MakeMove("alice", model.WireMove{From: "e3", To: "e4"}); err == nil {
		t.Error("expected an error for an empty source square")
	}
	if err := g.MakeMove("alice", model.WireMove{From: "zz", To: "e4"}); err == nil {
		t.Error("expected an error for a malformed square")
	}

	state := g.GetState()
	if len(state.Moves) != 0 {
		t.Errorf("rejected moves must not be recorded, got %v", state.Moves)
	}
}

func TestMakeMoveUpdatesState(t *testing.T) {
	g := seatedGame(t, nil)

	mustMove(t, g, "alice", "e2", "e4")

	state := g.GetState()
	if want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; state.FEN != want {
		t.Errorf("FEN = %q, want %q", state.FEN, want)
	}
	if state.ToMove != "black" {
		t.Errorf("ToMove = %q, want black", state.ToMove)
	}
	if diff := cmp.Diff([]string{"e2e4"}, state.Moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	if state.LastMove == nil || state.LastMove.From != "e2" || state.LastMove.To != "e4" {
		t.Errorf("LastMove = %+v, want e2 to e4", state.LastMove)
	}
	if state.Resolve != nil {
		t.Errorf("Resolve = %q, want nil", *state.Resolve)
	}
	if !strings.Contains(state.Render, "X") {
		t.Error("render should highlight the last move")
	}
}

func TestCaptureShowsUpInState(t *testing.T) {
	g := seatedGame(t, nil)

	mustMove(t, g, "alice", "e2", "e4")
	mustMove(t, g, "bob", "d7", "d5")
	mustMove(t, g, "alice", "e4", "d5")

	state := g.GetState()
	if diff := cmp.Diff([]string{"pawn"}, state.CapturedPieces.White); diff != "" {
		t.Errorf("white captures mismatch (-want +got):\n%s", diff)
	}
	if len(state.CapturedPieces.Black) != 0 {
		t.Errorf("black captures = %v, want none", state.CapturedPieces.Black)
	}
}

func TestFoolsMateResolvesCheckmate(t *testing.T) {
	var result *model.Result
	g := seatedGame(t, func(r model.Result) { result = &r })

	mustMove(t, g, "alice", "f2", "f3")
	mustMove(t, g, "bob", "e7", "e5")
	mustMove(t, g, "alice", "g2", "g4")
	mustMove(t, g, "bob", "d8", "h4")

	state := g.GetState()
	if state.Resolve == nil || *state.Resolve != "checkmate" {
		t.Fatalf("Resolve = %v, want checkmate", state.Resolve)
	}
	if !state.IsCheck {
		t.Error("checkmated side should be reported in check")
	}

	if result == nil {
		t.Fatal("resolution hook was not called")
	}
	if result.GameID != "test-game" || result.Result != "checkmate" {
		t.Errorf("result = %+v, want checkmate in test-game", result)
	}
	if diff := cmp.Diff([]string{"f2f3", "e7e5", "g2g4", "d8h4"}, result.Moves); diff != "" {
		t.Errorf("result moves mismatch (-want +got):\n%s", diff)
	}

	if err := g.MakeMove("alice", model.WireMove{From: "e2", To: "e4"}); err == nil {
		t.Error("expected an error moving in a finished game")
	}
}

func TestPromotionNeedsPiece(t *testing.T) {
	g := seatedGame(t, nil)

	// March the a-pawn through b7 to promotion.
	mustMove(t, g, "alice", "a2", "a4")
	mustMove(t, g, "bob", "h7", "h6")
	mustMove(t, g, "alice", "a4", "a5")
	mustMove(t, g, "bob", "h6", "h5")
	mustMove(t, g, "alice", "a5", "a6")
	mustMove(t, g, "bob", "h5", "h4")
	mustMove(t, g, "alice", "a6", "b7")
	mustMove(t, g, "bob", "h4", "h3")

	if err := g.MakeMove("alice", model.WireMove{From: "b7", To: "a8"}); err == nil {
		t.Error("expected an error when the promotion piece is missing")
	}

	err := g.MakeMove("alice", model.WireMove{From: "b7", To: "a8", Promotion: "q"})
	if err != nil {
		t.Fatalf("promoting capture: %v", err)
	}

	state := g.GetState()
	if got := state.Moves[len(state.Moves)-1]; got != "b7a8q" {
		t.Errorf("last move = %q, want b7a8q", got)
	}
}
