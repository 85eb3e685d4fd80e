package chess_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/ijagberg/clichess/internal/chess"
	"golang.org/x/exp/slices"
)

// uci flattens a move to coordinate notation, the shape the reference
// generator prints.
func uci(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.Kind == chess.MovePromotion {
		switch m.Promotion {
		case chess.Knight:
			s += "n"
		case chess.Bishop:
			s += "b"
		case chess.Rook:
			s += "r"
		case chess.Queen:
			s += "q"
		}
	}
	return s
}

// Full legal-move sets are compared against dragontoothmg for a handful of
// positions, including the castle-and-pin heavy "kiwipete" position.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		dragontoothmg.Startpos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 3",
	}
	for _, fen := range fens {
		game, toMove, err := chess.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		moves, err := game.LegalMoves(toMove)
		if err != nil {
			t.Fatalf("LegalMoves(%q): %v", fen, err)
		}
		got := make([]string, 0, len(moves))
		for _, m := range moves {
			got = append(got, uci(m))
		}
		slices.Sort(got)

		ref := dragontoothmg.ParseFen(fen)
		refMoves := ref.GenerateLegalMoves()
		want := make([]string, 0, len(refMoves))
		for _, m := range refMoves {
			want = append(want, m.String())
		}
		slices.Sort(want)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: legal moves diverge from reference (-want +got):\n%s", fen, diff)
		}
	}
}

func perft(t *testing.T, g *chess.Game, color chess.Color, depth int) int {
	t.Helper()
	moves, err := g.LegalMoves(color)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if depth == 1 {
		return len(moves)
	}
	total := 0
	for _, m := range moves {
		if err := g.ExecuteMove(m); err != nil {
			t.Fatalf("ExecuteMove(%s): %v", m, err)
		}
		total += perft(t, g, color.Opponent(), depth-1)
		g.UndoLastMove()
	}
	return total
}

func TestPerftStartingPosition(t *testing.T) {
	want := []int{20, 400, 8902}
	for depth := 1; depth <= len(want); depth++ {
		g := chess.NewGame()
		if got := perft(t, g, chess.White, depth); got != want[depth-1] {
			t.Errorf("perft(%d) = %d, want %d", depth, got, want[depth-1])
		}
	}
}
