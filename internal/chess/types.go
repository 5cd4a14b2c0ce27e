// Package chess provides core chess types: squares, colours, pieces and the board.
package chess

import (
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the back rank row of the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row pawns of the colour start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// PromotionRow returns the farthest row for the colour's pawns.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind attacks along open lines.
func (k Kind) IsSlider() bool {
	return k == Queen || k == Rook || k == Bishop
}

// ParseKind converts a name or letter ("queen", "Q", "n") to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := King; k < NumKinds; k++ {
		if s == strings.ToLower(k.String()) || s == strings.ToLower(string(k.Letter())) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// Square identifies one of the 64 squares by row and column.
type Square struct {
	Row int
	Col int
}

// At returns the square at row, col. Callers are expected to pass on-board values.
func At(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether row and col lie on the board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Offset returns the square shifted by deltaRow and deltaCol, and false if
// the result would leave the board.
func (s Square) Offset(deltaRow, deltaCol int) (Square, bool) {
	row, col := s.Row+deltaRow, s.Col+deltaCol
	if !OnBoard(row, col) {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Algebraic returns the square in file-rank notation, row 0 being rank 1:
// At(3, 4) is "e4".
func (s Square) Algebraic() string {
	return string([]byte{byte('a' + s.Col), byte('1' + s.Row)})
}
