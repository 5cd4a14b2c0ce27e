package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustMoves returns the legal destinations of p, failing the test on error.
func mustMoves(t *testing.T, b *chess.Board, p *chess.Piece) []chess.Square {
	t.Helper()
	moves, err := AvailableMoves(b, p)
	if err != nil {
		t.Fatalf("AvailableMoves(%v) error: %v", p, err)
	}
	return moves
}

// mustMoveTo commits a move of p to (row, col), failing the test on error.
func mustMoveTo(t *testing.T, b *chess.Board, p *chess.Piece, row, col int) {
	t.Helper()
	if err := MoveTo(b, p, chess.At(row, col)); err != nil {
		t.Fatalf("MoveTo(%v, (%d,%d)) error: %v", p, row, col, err)
	}
}
