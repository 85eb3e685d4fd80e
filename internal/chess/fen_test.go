package chess_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijagberg/clichess/internal/chess"
)

func TestStartingPositionFEN(t *testing.T) {
	g := chess.NewGame()
	if got := g.FEN(chess.White); got != chess.StartingFEN {
		t.Errorf("FEN = %q, want %q", got, chess.StartingFEN)
	}
}

func TestFENAfterDoubleStep(t *testing.T) {
	g := chess.NewGame()
	mustExecute(t, g, chess.RegularMove(chess.E2, chess.E4))

	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := g.FEN(chess.Black); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}

func TestFENEnPassantTargetExpires(t *testing.T) {
	g := chess.NewGame()
	mustExecute(t, g, chess.RegularMove(chess.E2, chess.E4))
	mustExecute(t, g, chess.RegularMove(chess.G8, chess.F6))

	want := "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	if got := g.FEN(chess.White); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}

func TestFENCastlingRightsFollowRookMoves(t *testing.T) {
	g := chess.NewGame()
	mustExecute(t, g, chess.RegularMove(chess.H2, chess.H4))
	mustExecute(t, g, chess.RegularMove(chess.A7, chess.A5))
	mustExecute(t, g, chess.RegularMove(chess.H1, chess.H3))
	mustExecute(t, g, chess.RegularMove(chess.A8, chess.A6))

	want := "1nbqkbnr/1ppppppp/r7/p7/7P/7R/PPPPPPP1/RNBQKBN1 w Qk - 0 3"
	if got := g.FEN(chess.White); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		chess.StartingFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	} {
		g, toMove, err := chess.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := g.FEN(toMove); got != fen {
			t.Errorf("round trip of %q produced %q", fen, got)
		}
	}
}

func TestParseFENAbsentRightsMarkPiecesMoved(t *testing.T) {
	g, _, err := chess.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if _, err := g.CanCastle(chess.E1, chess.H1); err != nil {
		t.Errorf("kingside right present, got %v", err)
	}
	_, err = g.CanCastle(chess.E1, chess.A1)
	var moved *chess.PieceHasMovedError
	if !errors.As(err, &moved) || moved.Square != chess.A1 {
		t.Errorf("want PieceHasMovedError{a1}, got %v", err)
	}
}

func TestParseFENEnPassantTargetIsPlayable(t *testing.T) {
	g, toMove, err := chess.ParseFEN("rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if toMove != chess.Black {
		t.Fatalf("side to move = %s, want black", toMove)
	}
	got, err := g.LegalMovesFrom(chess.E4)
	if err != nil {
		t.Fatalf("LegalMovesFrom: %v", err)
	}
	want := []chess.Move{
		chess.RegularMove(chess.E4, chess.E3),
		chess.EnPassantMove(chess.E4, chess.D3, chess.D4),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn moves mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",             // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",    // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNZ w KQkq - 0 1",    // bad piece
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",   // 9 files
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e99 0 1",  // bad target
		"8/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",              // no black king
	} {
		if _, _, err := chess.ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		}
	}
}
