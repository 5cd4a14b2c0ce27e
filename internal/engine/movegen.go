// Package engine implements chess move generation and legality on top of
// the chess package: per-piece pseudo-legal moves, attack detection, the
// check and pin filter, and move application with promotion.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// captureResult classifies an occupied (or empty) target square.
type captureResult int

const (
	noPiece    captureResult = iota // square is empty
	blocked                         // own piece or the enemy king
	capturable                      // enemy piece other than the king
)

// probeCapture classifies sq for a piece of the given colour. The enemy
// king is never a capture target.
func probeCapture(board *chess.Board, sq chess.Square, colour chess.Colour) captureResult {
	target := board.GetPiece(sq)
	switch {
	case target == nil:
		return noPiece
	case target.Colour == colour || target.Kind == chess.King:
		return blocked
	default:
		return capturable
	}
}

// reachable returns the square at the offset if it is on the board and empty.
func reachable(board *chess.Board, from chess.Square, deltaRow, deltaCol int) (chess.Square, bool) {
	sq, ok := from.Offset(deltaRow, deltaCol)
	if !ok || board.GetPiece(sq) != nil {
		return chess.Square{}, false
	}
	return sq, true
}

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightDirs   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDirs     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slide walks each ray outward until it leaves the board or hits a piece.
// A capturable blocker is included, any other blocker is not.
func slide(board *chess.Board, colour chess.Colour, from chess.Square, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		sq := from
		for {
			next, ok := sq.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			result := probeCapture(board, next, colour)
			if result != blocked {
				moves = append(moves, next)
			}
			if result != noPiece {
				break
			}
			sq = next
		}
	}
	return moves
}

// leap checks each offset independently for an empty or capturable square.
func leap(board *chess.Board, colour chess.Colour, from chess.Square, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		sq, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if probeCapture(board, sq, colour) != blocked {
			moves = append(moves, sq)
		}
	}
	return moves
}

// generatorFunc produces the pseudo-legal destinations of a piece on from.
type generatorFunc func(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square

// generators maps each kind to its move shape.
var generators = [chess.NumKinds]generatorFunc{
	chess.King:   kingMoves,
	chess.Queen:  queenMoves,
	chess.Rook:   rookMoves,
	chess.Bishop: bishopMoves,
	chess.Knight: knightMoves,
	chess.Pawn:   pawnMoves,
}

func kingMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	moves := leap(board, piece.Colour, from, kingDirs)
	return append(moves, castlingMoves(board, piece, from)...)
}

func queenMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	moves := slide(board, piece.Colour, from, diagonalDirs)
	return append(moves, slide(board, piece.Colour, from, straightDirs)...)
}

func rookMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	return slide(board, piece.Colour, from, straightDirs)
}

func bishopMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	return slide(board, piece.Colour, from, diagonalDirs)
}

func knightMoves(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	return leap(board, piece.Colour, from, knightDirs)
}

// pseudoLegal dispatches to the generator for the piece's kind.
func pseudoLegal(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	if piece.Kind < 0 || piece.Kind >= chess.NumKinds {
		return nil
	}
	return generators[piece.Kind](board, piece, from)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
