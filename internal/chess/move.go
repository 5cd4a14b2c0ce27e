package chess

import "fmt"

// Move records the most recently applied move. The board keeps only one.
type Move struct {
	From  Square
	To    Square
	Piece *Piece
}

// IsDoublePawnPush reports whether the move was a pawn advancing two rows.
func (m Move) IsDoublePawnPush() bool {
	if m.Piece == nil || m.Piece.Kind != Pawn {
		return false
	}
	return abs(m.To.Row-m.From.Row) == 2
}

// String returns e.g. "White Pawn (1,4)->(3,4)".
func (m Move) String() string {
	return fmt.Sprintf("%v %v->%v", m.Piece, m.From, m.To)
}

// PlacedPiece pairs a piece with the square it currently occupies.
type PlacedPiece struct {
	Square Square
	Piece  *Piece
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
