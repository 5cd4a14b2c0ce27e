// Package hashing provides position keys and transposition tables for
// move-tree enumeration.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Random keys, one per (colour, kind, square) plus side to move, the four
// castling corners and the eight en passant columns.
var (
	pieceKeys    [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castleKeys   [2][2]uint64 // colour, then kingside/queenside
	enPassantKey [chess.BoardSize]uint64
)

func init() {
	// splitmix64 with a fixed seed keeps keys stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	blackToMove = next()
	for c := range castleKeys {
		castleKeys[c][0] = next()
		castleKeys[c][1] = next()
	}
	for col := range enPassantKey {
		enPassantKey[col] = next()
	}
}

// Key returns the Zobrist key of everything that decides the moves
// available from b: the pieces, the side to move, which castling corners
// still hold an unmoved king and rook, and the column of a pawn that just
// advanced two rows.
func Key(b *chess.Board) uint64 {
	var key uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, placed := range b.Pieces(colour) {
			idx := placed.Square.Row*chess.BoardSize + placed.Square.Col
			key ^= pieceKeys[colour][placed.Piece.Kind][idx]
		}
		key ^= castlingKey(b, colour)
	}
	if b.ToMove == chess.Black {
		key ^= blackToMove
	}
	if last, ok := b.LastMove(); ok && last.IsDoublePawnPush() && b.GetPiece(last.To) == last.Piece {
		key ^= enPassantKey[last.To.Col]
	}
	return key
}

func castlingKey(b *chess.Board, colour chess.Colour) uint64 {
	row := colour.HomeRow()
	king := b.GetPiece(chess.At(row, 4))
	if king == nil || king.Kind != chess.King || king.Colour != colour || king.HasMoved() {
		return 0
	}
	var key uint64
	for side, col := range []int{7, 0} {
		rook := b.GetPiece(chess.At(row, col))
		if rook != nil && rook.Kind == chess.Rook && rook.Colour == colour && !rook.HasMoved() {
			key ^= castleKeys[colour][side]
		}
	}
	return key
}
