// Package setup places pieces on an empty board for drivers and tests.
// The board itself has no notion of a starting position.
package setup

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// backRank lists the home-row kinds from column 0 to column 7.
var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Placement describes one piece to put on the board.
type Placement struct {
	Square chess.Square
	Colour chess.Colour
	Kind   chess.Kind
}

// StandardPlacements returns the 32 placements of the standard array,
// White first, each side back rank then pawns.
func StandardPlacements() []Placement {
	placements := make([]Placement, 0, 4*chess.BoardSize)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for col, kind := range backRank {
			placements = append(placements, Placement{
				Square: chess.At(colour.HomeRow(), col),
				Colour: colour,
				Kind:   kind,
			})
		}
		for col := 0; col < chess.BoardSize; col++ {
			placements = append(placements, Placement{
				Square: chess.At(colour.PawnRow(), col),
				Colour: colour,
				Kind:   chess.Pawn,
			})
		}
	}
	return placements
}

// Standard places the standard array on b and returns the new pieces in
// placement order. Squares it does not use are left as they were.
func Standard(b *chess.Board) []*chess.Piece {
	pieces, _ := Place(b, StandardPlacements())
	return pieces
}

// Place puts a fresh piece on the board for each placement. It refuses to
// overwrite an occupied square or to place a second king of one colour;
// placements before the failing one remain on the board.
func Place(b *chess.Board, placements []Placement) ([]*chess.Piece, error) {
	pieces := make([]*chess.Piece, 0, len(placements))
	for _, pl := range placements {
		if !chess.OnBoard(pl.Square.Row, pl.Square.Col) {
			return pieces, fmt.Errorf("place %s %s: square %v is off the board", pl.Colour, pl.Kind, pl.Square)
		}
		if pl.Kind < 0 || pl.Kind >= chess.NumKinds {
			return pieces, fmt.Errorf("place on %v: unknown kind %d", pl.Square, int(pl.Kind))
		}
		if occupant := b.GetPiece(pl.Square); occupant != nil {
			return pieces, &errors.SquareError{
				Err:    errors.ErrSquareOccupied,
				Square: pl.Square.String(),
				Detail: fmt.Sprintf("holds %v", occupant),
			}
		}
		if pl.Kind == chess.King {
			if at, ok := b.FindKing(pl.Colour); ok {
				return pieces, &errors.SquareError{
					Err:    errors.ErrSquareOccupied,
					Square: pl.Square.String(),
					Detail: fmt.Sprintf("%s king already on %v", pl.Colour, at),
				}
			}
		}

		p := chess.NewPiece(pl.Colour, pl.Kind)
		b.SetPiece(pl.Square, p)
		pieces = append(pieces, p)
	}
	return pieces, nil
}
