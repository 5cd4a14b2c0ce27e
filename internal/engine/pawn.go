package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates single and double pushes, diagonal captures and
// en passant. Promotion is not a separate move; see MoveTo.
func pawnMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	var moves []chess.Square
	dir := piece.Colour.Forward()

	if one, ok := reachable(board, from, dir, 0); ok {
		moves = append(moves, one)
		if from.Row == piece.Colour.PawnRow() {
			if two, ok := reachable(board, from, 2*dir, 0); ok {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		sq, ok := from.Offset(dir, dc)
		if ok && probeCapture(board, sq, piece.Colour) == capturable {
			moves = append(moves, sq)
		}
	}

	if sq, ok := enPassantTarget(board, piece, from); ok {
		moves = append(moves, sq)
	}
	return moves
}

// enPassantTarget returns the en passant destination for the pawn on from.
// It is only available immediately after an enemy pawn advanced two rows
// to land beside this pawn.
func enPassantTarget(board *chess.Board, piece *chess.Piece, from chess.Square) (chess.Square, bool) {
	last, ok := board.LastMove()
	if !ok || !last.IsDoublePawnPush() || last.Piece.Colour == piece.Colour {
		return chess.Square{}, false
	}
	if last.To.Row != from.Row || abs(last.To.Col-from.Col) != 1 {
		return chess.Square{}, false
	}
	if board.GetPiece(last.To) != last.Piece {
		return chess.Square{}, false
	}
	return reachable(board, last.To, piece.Colour.Forward(), 0)
}

// isEnPassantCapture reports whether moving the pawn from -> to takes the
// pawn standing on victim en passant.
func isEnPassantCapture(board *chess.Board, piece *chess.Piece, from, to, victim chess.Square) bool {
	if piece.Kind != chess.Pawn || to.Col == from.Col || board.GetPiece(to) != nil {
		return false
	}
	return chess.At(from.Row, to.Col) == victim
}
