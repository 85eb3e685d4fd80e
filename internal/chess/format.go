package chess

import (
	"fmt"
	"strings"
)

// WhitesPerspective renders the board as white sees it, rank 8 at the top.
// Squares in highlighted carry an X marker next to their content.
func WhitesPerspective(b *Board, highlighted map[Square]bool) string {
	return perspective(b, White, highlighted)
}

// BlacksPerspective renders the board as black sees it, rank 1 at the top
// with the files mirrored.
func BlacksPerspective(b *Board, highlighted map[Square]bool) string {
	return perspective(b, Black, highlighted)
}

// Perspective renders the board as color sees it.
func Perspective(b *Board, color Color, highlighted map[Square]bool) string {
	return perspective(b, color, highlighted)
}

func perspective(b *Board, color Color, highlighted map[Square]bool) string {
	files := "   a   b   c   d   e   f   g   h  "
	ranks := []Rank{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1}
	if color == Black {
		files = "   h   g   f   e   d   c   b   a  "
		ranks = []Rank{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
	}

	lines := make([]string, 0, 8)
	for _, r := range ranks {
		cells := make([]string, 0, 8)
		for i := 0; i < 8; i++ {
			f := File(i + 1)
			if color == Black {
				f = File(8 - i)
			}
			sq := Square{f, r}
			mark := " "
			if highlighted[sq] {
				mark = "X"
			}
			glyph := " "
			if p := b.PieceAt(sq); p != nil {
				glyph = p.Glyph()
			}
			cells = append(cells, fmt.Sprintf("%s%s ", mark, glyph))
		}
		lines = append(lines, fmt.Sprintf("%d│%s│", r, strings.Join(cells, "│")))
	}

	var sb strings.Builder
	sb.WriteString(files)
	sb.WriteString("\n ┌───┬───┬───┬───┬───┬───┬───┬───┐\n")
	sb.WriteString(strings.Join(lines, "\n ├───┼───┼───┼───┼───┼───┼───┼───┤\n"))
	sb.WriteString("\n └───┴───┴───┴───┴───┴───┴───┴───┘\n")
	return sb.String()
}
