package engine

import (
	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveTo commits a move of piece to dst. Legality is not re-checked; callers
// pick dst from AvailableMoves. A move by the side not on move is ignored
// without error. After the move the king or rook is marked as moved, a
// castled rook likewise, and a pawn reaching the farthest row is replaced
// with the board's promotion kind.
func MoveTo(board *chess.Board, piece *chess.Piece, dst chess.Square) error {
	from, err := board.FindPiece(piece)
	if err != nil {
		return errors.Wrap(err, "move")
	}

	fields := log.Fields{
		"piece": piece.String(),
		"from":  from.String(),
		"to":    dst.String(),
	}

	if !board.MovePiece(from, dst) {
		log.WithFields(fields).WithField("to_move", board.ToMove.String()).Debug("move ignored")
		return nil
	}

	piece.MarkMoved()
	if piece.Kind == chess.King && abs(dst.Col-from.Col) > 1 {
		if rookSq, ok := castledRookSquare(dst); ok {
			if rook := board.GetPiece(rookSq); rook != nil && rook.Kind == chess.Rook {
				rook.MarkMoved()
			}
		}
		fields["castled"] = true
	}

	if piece.Kind == chess.Pawn && dst.Row == piece.Colour.PromotionRow() {
		promoted, err := board.ReplaceWithNewPiece(dst, board.Promotion())
		if err != nil {
			return errors.Wrap(err, "promotion")
		}
		fields["promoted_to"] = promoted.Kind.String()
	}

	log.WithFields(fields).Debug("move applied")
	return nil
}
