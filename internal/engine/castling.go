package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingHomeCol is the column a king must stand on to castle.
const kingHomeCol = 4

// castleSide describes one castling option by columns on the home row.
type castleSide struct {
	rookCol    int // rook origin
	kingToCol  int // king destination
	transitCol int // square the king passes over, where the rook lands
}

var castleSides = []castleSide{
	{rookCol: 7, kingToCol: 6, transitCol: 5}, // kingside
	{rookCol: 0, kingToCol: 2, transitCol: 3}, // queenside
}

// castlingMoves returns the castling destinations of an unmoved king on its
// home square. Each side needs an unmoved rook of the same colour in the
// corner and empty squares in between. The king may not castle out of or
// through check; landing in check is rejected by the legality filter.
func castlingMoves(board *chess.Board, king *chess.Piece, from chess.Square) []chess.Square {
	row := king.Colour.HomeRow()
	if king.HasMoved() || from != chess.At(row, kingHomeCol) {
		return nil
	}

	enemy := king.Colour.Opposite()
	if isSquareAttacked(board, from, enemy) {
		return nil
	}

	var moves []chess.Square
	for _, side := range castleSides {
		rook := board.GetPiece(chess.At(row, side.rookCol))
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved() {
			continue
		}
		if !isRowClear(board, row, from.Col, side.rookCol) {
			continue
		}
		if isSquareAttacked(board, chess.At(row, side.transitCol), enemy) {
			continue
		}
		moves = append(moves, chess.At(row, side.kingToCol))
	}
	return moves
}

// isRowClear checks that every square strictly between two columns is empty.
func isRowClear(board *chess.Board, row, fromCol, toCol int) bool {
	step := sign(toCol - fromCol)
	for col := fromCol + step; col != toCol; col += step {
		if board.GetPiece(chess.At(row, col)) != nil {
			return false
		}
	}
	return true
}

// castledRookSquare returns where the rook lands when the king castles to
// kingTo, and false if kingTo is not a castling destination.
func castledRookSquare(kingTo chess.Square) (chess.Square, bool) {
	for _, side := range castleSides {
		if kingTo.Col == side.kingToCol {
			return chess.At(kingTo.Row, side.transitCol), true
		}
	}
	return chess.Square{}, false
}
