package config

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds the board-level rule settings.
type RulesConfig struct {
	// StartingPlayer moves first on a new board
	StartingPlayer chess.Colour

	// PromoteTo is the kind a pawn becomes on the farthest row
	PromoteTo chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		StartingPlayer: chess.White,
		PromoteTo:      chess.Queen,
	}
}

func (r *RulesConfig) validate() error {
	if r.StartingPlayer != chess.White && r.StartingPlayer != chess.Black {
		return errors.Wrapf(errors.ErrInvalidConfig, "starting player %d", int(r.StartingPlayer))
	}
	switch r.PromoteTo {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "promotion to %s", r.PromoteTo)
}
