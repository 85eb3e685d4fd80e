package chess_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijagberg/clichess/internal/chess"
)

func TestWhitesPerspective(t *testing.T) {
	got := chess.WhitesPerspective(chess.StartingBoard(), nil)
	want := strings.Join([]string{
		"   a   b   c   d   e   f   g   h  ",
		" ┌───┬───┬───┬───┬───┬───┬───┬───┐",
		"8│ ♜ │ ♞ │ ♝ │ ♛ │ ♚ │ ♝ │ ♞ │ ♜ │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"7│ ♟ │ ♟ │ ♟ │ ♟ │ ♟ │ ♟ │ ♟ │ ♟ │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"6│   │   │   │   │   │   │   │   │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"5│   │   │   │   │   │   │   │   │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"4│   │   │   │   │   │   │   │   │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"3│   │   │   │   │   │   │   │   │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"2│ ♙ │ ♙ │ ♙ │ ♙ │ ♙ │ ♙ │ ♙ │ ♙ │",
		" ├───┼───┼───┼───┼───┼───┼───┼───┤",
		"1│ ♖ │ ♘ │ ♗ │ ♕ │ ♔ │ ♗ │ ♘ │ ♖ │",
		" └───┴───┴───┴───┴───┴───┴───┴───┘",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestBlacksPerspectiveMirrors(t *testing.T) {
	got := chess.BlacksPerspective(chess.StartingBoard(), nil)
	lines := strings.Split(got, "\n")
	if lines[0] != "   h   g   f   e   d   c   b   a  " {
		t.Errorf("file header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1│") {
		t.Errorf("first rank line = %q, want rank 1 on top", lines[2])
	}
	// Rank 1 mirrored: rook, knight, bishop, king, queen, ...
	if lines[2] != "1│ ♖ │ ♘ │ ♗ │ ♔ │ ♕ │ ♗ │ ♘ │ ♖ │" {
		t.Errorf("rank 1 line = %q", lines[2])
	}
}

func TestHighlightMarker(t *testing.T) {
	out := chess.WhitesPerspective(chess.StartingBoard(), map[chess.Square]bool{chess.E4: true})
	lines := strings.Split(out, "\n")
	if lines[10] != "4│   │   │   │   │X  │   │   │   │" {
		t.Errorf("rank 4 line = %q", lines[10])
	}
}
