package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board represents a chess board with all state needed for move legality.
type Board struct {
	// The board squares, squares[row][col]; nil means empty.
	squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	ToMove Colour

	// The most recently applied move, nil before the first one.
	// This is the only history the board keeps.
	lastMove *Move

	// The kind pawns are replaced with on the farthest row.
	promoteTo Kind
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithStartingPlayer sets the side to move first.
func WithStartingPlayer(colour Colour) BoardOption {
	return func(b *Board) {
		b.ToMove = colour
	}
}

// WithPromotion sets the promotion kind. King and Pawn are ignored.
func WithPromotion(kind Kind) BoardOption {
	return func(b *Board) {
		if kind != King && kind != Pawn && kind >= 0 && kind < NumKinds {
			b.promoteTo = kind
		}
	}
}

// NewBoard creates a new empty board. White moves first and pawns promote
// to a Queen unless configured otherwise.
func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		ToMove:    White,
		promoteTo: Queen,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetPiece places a piece (or nil) on a square without any legality check.
func (b *Board) SetPiece(sq Square, piece *Piece) {
	b.squares[sq.Row][sq.Col] = piece
}

// GetPiece returns the piece on a square, or nil if it is empty.
func (b *Board) GetPiece(sq Square) *Piece {
	return b.squares[sq.Row][sq.Col]
}

// FindPiece returns the square the given piece occupies.
func (b *Board) FindPiece(piece *Piece) (Square, error) {
	if piece != nil {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if b.squares[row][col] == piece {
					return At(row, col), nil
				}
			}
		}
	}
	return Square{}, errors.Wrapf(errors.ErrPieceNotOnBoard, "find %v", piece)
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p != nil && p.Kind == King && p.Colour == colour {
				return At(row, col), true
			}
		}
	}
	return Square{}, false
}

// Pieces returns every piece of the given colour with its square, in
// row-major order.
func (b *Board) Pieces(colour Colour) []PlacedPiece {
	var placed []PlacedPiece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Colour == colour {
				placed = append(placed, PlacedPiece{Square: At(row, col), Piece: p})
			}
		}
	}
	return placed
}

// MovePiece relocates the piece on from to to and applies the side effects
// of en passant and castling. It does not check legality. If from is empty,
// holds a piece of the side not on move, or equals to, nothing happens and
// false is returned.
func (b *Board) MovePiece(from, to Square) bool {
	moving := b.GetPiece(from)
	if moving == nil || moving.Colour != b.ToMove || from == to {
		return false
	}

	b.lastMove = &Move{From: from, To: to, Piece: moving}

	enPassant := b.isEnPassantCapture(from, to, moving)

	b.SetPiece(to, moving)
	b.SetPiece(from, nil)

	if enPassant {
		b.SetPiece(At(from.Row, to.Col), nil)
	}

	if moving.Kind == King && abs(to.Col-from.Col) > 1 {
		b.castleRook(moving, to)
	}

	b.ToMove = b.ToMove.Opposite()
	return true
}

// isEnPassantCapture reports whether a pawn move is a diagonal single step
// onto an empty square beside an enemy pawn. Must be called before the
// pawn is relocated.
func (b *Board) isEnPassantCapture(from, to Square, moving *Piece) bool {
	if moving.Kind != Pawn {
		return false
	}
	if abs(to.Col-from.Col) != 1 || abs(to.Row-from.Row) != 1 {
		return false
	}
	if b.GetPiece(to) != nil {
		return false
	}
	taken := b.GetPiece(At(from.Row, to.Col))
	return taken != nil && taken.Kind == Pawn && taken.Colour != moving.Colour
}

// castleRook moves the rook next to a king that has just castled to kingTo.
func (b *Board) castleRook(king *Piece, kingTo Square) {
	var rookFrom, rookTo Square
	switch kingTo.Col {
	case 6:
		rookFrom, rookTo = At(kingTo.Row, 7), At(kingTo.Row, 5)
	case 2:
		rookFrom, rookTo = At(kingTo.Row, 0), At(kingTo.Row, 3)
	default:
		return
	}

	rook := b.GetPiece(rookFrom)
	if rook == nil || rook.Kind != Rook || rook.Colour != king.Colour {
		return
	}
	b.SetPiece(rookTo, rook)
	b.SetPiece(rookFrom, nil)
}

// ReplaceWithNewPiece removes the piece on sq and puts a fresh piece of the
// given kind and the same colour in its place.
func (b *Board) ReplaceWithNewPiece(sq Square, kind Kind) (*Piece, error) {
	if kind == King || kind == Pawn || kind < 0 || kind >= NumKinds {
		return nil, &errors.SquareError{
			Err:    errors.ErrInvalidPromotion,
			Square: sq.String(),
			Detail: fmt.Sprintf("cannot promote to %s", kind),
		}
	}
	old := b.GetPiece(sq)
	if old == nil {
		return nil, &errors.SquareError{
			Err:    errors.ErrInvalidPromotion,
			Square: sq.String(),
			Detail: "no piece to replace",
		}
	}

	replacement := NewPiece(old.Colour, kind)
	b.SetPiece(sq, replacement)
	return replacement, nil
}

// LastMove returns the most recently applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	if b.lastMove == nil {
		return Move{}, false
	}
	return *b.lastMove, true
}

// Promotion returns the kind pawns are promoted to.
func (b *Board) Promotion() Kind {
	return b.promoteTo
}

// Clone returns a scratch copy of the board. The grid is copied but the
// pieces are shared, so the clone must only be used for hypothetical
// moves that do not mutate pieces.
func (b *Board) Clone() *Board {
	c := &Board{}
	*c = *b
	return c
}

// DeepCopy returns a fully independent copy of the board with copied
// pieces. The last move keeps pointing at the copy of its piece when that
// piece is still on the board.
func (b *Board) DeepCopy() *Board {
	c := &Board{
		ToMove:    b.ToMove,
		promoteTo: b.promoteTo,
	}
	copies := make(map[*Piece]*Piece)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				cp := p.copyPiece()
				copies[p] = cp
				c.squares[row][col] = cp
			}
		}
	}
	if b.lastMove != nil {
		m := *b.lastMove
		if cp, ok := copies[m.Piece]; ok {
			m.Piece = cp
		} else if m.Piece != nil {
			m.Piece = m.Piece.copyPiece()
		}
		c.lastMove = &m
	}
	return c
}

// String renders the board with row 7 at the top, '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	return sb.String()
}
