package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AvailableMoves returns the legal destinations of a piece in generation
// order. A destination is legal when the piece's own king is not attacked
// after the move. The side to move is not consulted.
func AvailableMoves(board *chess.Board, piece *chess.Piece) ([]chess.Square, error) {
	from, err := board.FindPiece(piece)
	if err != nil {
		return nil, errors.Wrap(err, "available moves")
	}
	return legalMovesFrom(board, piece, from), nil
}

// PseudoLegalMoves returns the destinations allowed by the piece's movement
// rules and board occupancy, ignoring the safety of its own king.
func PseudoLegalMoves(board *chess.Board, piece *chess.Piece) ([]chess.Square, error) {
	from, err := board.FindPiece(piece)
	if err != nil {
		return nil, errors.Wrap(err, "pseudo-legal moves")
	}
	return pseudoLegal(board, piece, from), nil
}

// AllAvailableMoves returns the legal destinations of every piece of the
// given colour that has at least one, keyed by origin square.
func AllAvailableMoves(board *chess.Board, colour chess.Colour) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	for _, placed := range board.Pieces(colour) {
		if dests := legalMovesFrom(board, placed.Piece, placed.Square); len(dests) > 0 {
			moves[placed.Square] = dests
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, placed := range board.Pieces(colour) {
		if len(legalMovesFrom(board, placed.Piece, placed.Square)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the given colour is in check with no legal
// move. A position with no legal move and no check is left for the caller
// to label.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// legalMovesFrom narrows the pseudo-legal moves of the piece on from.
//
// With exactly one checker, pieces other than the king may only capture it
// or interpose. With two or more, only the king may move. Every remaining
// candidate is then tried on a scratch copy, which rejects moves into check
// and moves of pinned pieces.
func legalMovesFrom(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	candidates := pseudoLegal(board, piece, from)

	king, ok := board.FindKing(piece.Colour)
	if !ok {
		return candidates
	}

	if piece.Kind != chess.King {
		checkers := attackersOf(board, king, piece.Colour.Opposite(), 0)
		switch len(checkers) {
		case 0:
		case 1:
			candidates = restrictToCheckResponses(board, piece, from, king, checkers[0], candidates)
		default:
			return nil
		}
	}

	legal := make([]chess.Square, 0, len(candidates))
	for _, to := range candidates {
		if !leavesKingAttacked(board, piece, from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// restrictToCheckResponses keeps the candidates that capture the single
// checker or block its line to the king.
func restrictToCheckResponses(board *chess.Board, piece *chess.Piece, from, king, checker chess.Square, candidates []chess.Square) []chess.Square {
	allowed := interpositionSquares(board, king, checker)
	kept := make([]chess.Square, 0, len(candidates))
	for _, to := range candidates {
		if slices.Contains(allowed, to) || isEnPassantCapture(board, piece, from, to, checker) {
			kept = append(kept, to)
		}
	}
	return kept
}

// interpositionSquares returns the checker's square plus, for a sliding
// checker, every square between it and the king.
func interpositionSquares(board *chess.Board, king, checker chess.Square) []chess.Square {
	squares := []chess.Square{checker}
	attacker := board.GetPiece(checker)
	if attacker == nil || !attacker.Kind.IsSlider() {
		return squares
	}

	dr, dc := sign(checker.Row-king.Row), sign(checker.Col-king.Col)
	for sq, ok := king.Offset(dr, dc); ok && sq != checker; sq, ok = sq.Offset(dr, dc) {
		squares = append(squares, sq)
	}
	return squares
}

// leavesKingAttacked applies the move to a scratch copy of the board and
// reports whether the mover's king is attacked afterwards.
func leavesKingAttacked(board *chess.Board, piece *chess.Piece, from, to chess.Square) bool {
	scratch := board.Clone()
	scratch.ToMove = piece.Colour
	if !scratch.MovePiece(from, to) {
		return true
	}

	king, ok := scratch.FindKing(piece.Colour)
	if !ok {
		return false
	}
	return isSquareAttacked(scratch, king, piece.Colour.Opposite())
}
