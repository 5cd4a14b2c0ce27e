package testutil

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Sq is a short alias for chess.At in test tables.
func Sq(row, col int) chess.Square {
	return chess.At(row, col)
}

// Put creates a piece, places it on the board and returns it.
func Put(b *chess.Board, row, col int, colour chess.Colour, kind chess.Kind) *chess.Piece {
	p := chess.NewPiece(colour, kind)
	b.SetPiece(chess.At(row, col), p)
	return p
}
