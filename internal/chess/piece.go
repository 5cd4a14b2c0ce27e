package chess

import (
	"fmt"

	"github.com/google/uuid"
)

// Piece is a single piece on the board. Pieces are compared by identity:
// two pieces of the same kind and colour are still distinct.
// A piece does not know its own square; see Board.FindPiece.
type Piece struct {
	ID     uuid.UUID
	Colour Colour
	Kind   Kind

	moved bool
}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{
		ID:     uuid.New(),
		Colour: colour,
		Kind:   kind,
	}
}

// HasMoved reports whether a king or rook has been relocated at least once.
// It is always false for other kinds.
func (p *Piece) HasMoved() bool {
	return p.moved
}

// MarkMoved records the first relocation of a king or rook.
func (p *Piece) MarkMoved() {
	if p.Kind == King || p.Kind == Rook {
		p.moved = true
	}
}

// String returns e.g. "White Rook".
func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return fmt.Sprintf("%s %s", p.Colour, p.Kind)
}

// Symbol returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

// copyPiece returns a new piece with the same attributes and ID.
func (p *Piece) copyPiece() *Piece {
	c := *p
	return &c
}
