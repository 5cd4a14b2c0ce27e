package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without such a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// Checkers returns the squares of every enemy piece attacking the given
// colour's king.
func Checkers(board *chess.Board, colour chess.Colour) []chess.Square {
	king, ok := board.FindKing(colour)
	if !ok {
		return nil
	}
	return attackersOf(board, king, colour.Opposite(), 0)
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return len(attackersOf(board, sq, byColour, 1)) > 0
}

// attackersOf returns the squares of byColour pieces attacking sq, stopping
// once limit attackers are found (limit <= 0 collects all). Unlike move
// generation, an occupied target, including a king, counts as attacked.
func attackersOf(board *chess.Board, sq chess.Square, byColour chess.Colour, limit int) []chess.Square {
	var found []chess.Square
	full := func() bool {
		return limit > 0 && len(found) >= limit
	}
	is := func(at chess.Square, kinds ...chess.Kind) bool {
		p := board.GetPiece(at)
		if p == nil || p.Colour != byColour {
			return false
		}
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns attack diagonally forward, so look one row back from their side.
	for _, dc := range []int{-1, 1} {
		if at, ok := sq.Offset(-byColour.Forward(), dc); ok && is(at, chess.Pawn) {
			found = append(found, at)
			if full() {
				return found
			}
		}
	}

	for _, offset := range knightDirs {
		if at, ok := sq.Offset(offset[0], offset[1]); ok && is(at, chess.Knight) {
			found = append(found, at)
			if full() {
				return found
			}
		}
	}

	for _, offset := range kingDirs {
		if at, ok := sq.Offset(offset[0], offset[1]); ok && is(at, chess.King) {
			found = append(found, at)
			if full() {
				return found
			}
		}
	}

	rays := []struct {
		dirs  [][2]int
		kinds []chess.Kind
	}{
		{diagonalDirs, []chess.Kind{chess.Bishop, chess.Queen}},
		{straightDirs, []chess.Kind{chess.Rook, chess.Queen}},
	}
	for _, ray := range rays {
		for _, dir := range ray.dirs {
			at, ok := sq.Offset(dir[0], dir[1])
			for ok && board.GetPiece(at) == nil {
				at, ok = at.Offset(dir[0], dir[1])
			}
			if ok && is(at, ray.kinds...) {
				found = append(found, at)
				if full() {
					return found
				}
			}
		}
	}

	return found
}
