// Package game wraps a board in a validated session for interactive
// drivers: moves are checked against the side to move and the legal move
// list before they are applied.
package game

import (
	"github.com/apex/log"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/setup"
)

// Game is a single-writer session over one board.
type Game struct {
	ID uuid.UUID

	board *chess.Board
	ply   int
}

// Status summarises the position for the side to move. A position with
// no legal moves and no check is not labelled; callers decide what it means.
type Status struct {
	ToMove        chess.Colour
	InCheck       bool
	HasLegalMoves bool
	Checkmate     bool
}

// New creates a session with an empty board configured from cfg.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		ID:    uuid.New(),
		board: cfg.NewBoard(),
	}
}

// NewStandard creates a session with the standard array already placed.
func NewStandard(cfg *config.Config) *Game {
	g := New(cfg)
	setup.Standard(g.board)
	return g
}

// Board returns the underlying board. Mutating it directly bypasses the
// session's checks.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Ply returns the number of moves played through Play.
func (g *Game) Ply() int {
	return g.ply
}

// Place puts a fresh piece on sq, replacing anything there.
func (g *Game) Place(sq chess.Square, colour chess.Colour, kind chess.Kind) *chess.Piece {
	p := chess.NewPiece(colour, kind)
	g.board.SetPiece(sq, p)
	return p
}

// LegalMoves returns the legal moves of the side to move keyed by origin.
func (g *Game) LegalMoves() map[chess.Square][]chess.Square {
	return engine.AllAvailableMoves(g.board, g.board.ToMove)
}

// Status reports check and mobility for the side to move.
func (g *Game) Status() Status {
	colour := g.board.ToMove
	inCheck := engine.IsInCheck(g.board, colour)
	hasMoves := engine.HasLegalMoves(g.board, colour)
	return Status{
		ToMove:        colour,
		InCheck:       inCheck,
		HasLegalMoves: hasMoves,
		Checkmate:     inCheck && !hasMoves,
	}
}

// Play validates and applies a move of the piece on from. Unlike
// engine.MoveTo, a move by the wrong side or an illegal destination is
// reported as an error wrapped in *errors.MoveError.
func (g *Game) Play(from, to chess.Square) error {
	piece := g.board.GetPiece(from)
	if piece == nil {
		return g.moveError(errors.ErrEmptySquare, from, to)
	}
	if piece.Colour != g.board.ToMove {
		return g.moveError(errors.ErrNotYourTurn, from, to)
	}

	moves, err := engine.AvailableMoves(g.board, piece)
	if err != nil {
		return g.moveError(err, from, to)
	}
	if !slices.Contains(moves, to) {
		return g.moveError(errors.ErrIllegalMove, from, to)
	}

	if err := engine.MoveTo(g.board, piece, to); err != nil {
		return g.moveError(err, from, to)
	}
	g.ply++

	log.WithFields(log.Fields{
		"game": g.ID.String(),
		"ply":  g.ply,
		"from": from.Algebraic(),
		"to":   to.Algebraic(),
		"kind": piece.Kind.String(),
	}).Debug("played")
	return nil
}

func (g *Game) moveError(err error, from, to chess.Square) error {
	return &errors.MoveError{
		Err:    err,
		GameID: g.ID.String(),
		Ply:    g.ply + 1,
		From:   from.Algebraic(),
		To:     to.Algebraic(),
	}
}
