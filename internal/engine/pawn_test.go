package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestPawn_Advances(t *testing.T) {
	tests := []struct {
		name   string
		colour chess.Colour
		from   chess.Square
		moveTo *chess.Square
		want   []chess.Square
	}{
		{
			name:   "white after first move",
			colour: chess.White,
			from:   sq(1, 0),
			moveTo: &chess.Square{Row: 2, Col: 0},
			want:   []chess.Square{sq(3, 0)},
		},
		{
			name:   "white from starting row",
			colour: chess.White,
			from:   sq(1, 7),
			want:   []chess.Square{sq(2, 7), sq(3, 7)},
		},
		{
			name:   "white at top edge",
			colour: chess.White,
			from:   sq(7, 3),
			want:   nil,
		},
		{
			name:   "black after first move",
			colour: chess.Black,
			from:   sq(6, 0),
			moveTo: &chess.Square{Row: 5, Col: 0},
			want:   []chess.Square{sq(4, 0)},
		},
		{
			name:   "black from starting row",
			colour: chess.Black,
			from:   sq(6, 7),
			want:   []chess.Square{sq(5, 7), sq(4, 7)},
		},
		{
			name:   "black at bottom edge",
			colour: chess.Black,
			from:   sq(0, 3),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard(chess.WithStartingPlayer(tt.colour))
			pawn := testutil.Put(b, tt.from.Row, tt.from.Col, tt.colour, chess.Pawn)
			if tt.moveTo != nil {
				mustMoveTo(t, b, pawn, tt.moveTo.Row, tt.moveTo.Col)
			}

			testutil.AssertSquares(t, mustMoves(t, b, pawn), tt.want)
		})
	}
}

func TestPawn_DiagonalCaptures(t *testing.T) {
	tests := []struct {
		name     string
		colour   chess.Colour
		target   chess.Square
		other    chess.Colour
		kind     chess.Kind
		wantTake bool
	}{
		{"white takes rook", chess.White, sq(5, 3), chess.Black, chess.Rook, true},
		{"white ignores friendly", chess.White, sq(5, 3), chess.White, chess.Rook, false},
		{"white never takes king", chess.White, sq(5, 3), chess.Black, chess.King, false},
		{"black takes rook", chess.Black, sq(3, 3), chess.White, chess.Rook, true},
		{"black ignores friendly", chess.Black, sq(3, 3), chess.Black, chess.Rook, false},
		{"black never takes king", chess.Black, sq(3, 3), chess.White, chess.King, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard()
			pawn := testutil.Put(b, 4, 4, tt.colour, chess.Pawn)
			testutil.Put(b, tt.target.Row, tt.target.Col, tt.other, tt.kind)

			moves := mustMoves(t, b, pawn)
			if tt.wantTake {
				testutil.AssertHasSquare(t, moves, tt.target)
			} else {
				testutil.AssertNoSquare(t, moves, tt.target)
			}
		})
	}
}

func TestPawn_NoDiagonalWithoutTarget(t *testing.T) {
	b := chess.NewBoard()
	white := testutil.Put(b, 4, 4, chess.White, chess.Pawn)
	black := testutil.Put(b, 4, 1, chess.Black, chess.Pawn)

	testutil.AssertNoSquare(t, mustMoves(t, b, white), sq(5, 3))
	testutil.AssertNoSquare(t, mustMoves(t, b, black), sq(3, 0))
}

func TestPawn_Blocked(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 6, 3, chess.Black, chess.Pawn)
	testutil.Put(b, 5, 3, chess.White, chess.Rook)

	testutil.AssertLen(t, mustMoves(t, b, pawn), 0)
}

func TestPawn_DoubleStepBlocked(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 6, 3, chess.Black, chess.Pawn)
	testutil.Put(b, 4, 3, chess.White, chess.Rook)

	testutil.AssertSquares(t, mustMoves(t, b, pawn), []chess.Square{sq(5, 3)})
}

func TestPawn_WhiteEnPassant(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 3, 3, chess.White, chess.Pawn)
	opposing := testutil.Put(b, 6, 4, chess.Black, chess.Pawn)

	mustMoveTo(t, b, pawn, 4, 3)
	mustMoveTo(t, b, opposing, 4, 4)

	testutil.AssertSquares(t, mustMoves(t, b, pawn), []chess.Square{sq(5, 3), sq(5, 4)})

	mustMoveTo(t, b, pawn, 5, 4)
	if got := b.GetPiece(sq(4, 4)); got != nil {
		t.Errorf("GetPiece(4,4) = %v after en passant, want empty", got)
	}
	testutil.AssertEqual(t, b.GetPiece(sq(5, 4)) == pawn, true)
}

func TestPawn_WhiteEnPassantFromEitherSide(t *testing.T) {
	b := chess.NewBoard()
	left := testutil.Put(b, 3, 3, chess.White, chess.Pawn)
	right := testutil.Put(b, 4, 5, chess.White, chess.Pawn)
	opposing := testutil.Put(b, 6, 4, chess.Black, chess.Pawn)

	mustMoveTo(t, b, left, 4, 3)
	mustMoveTo(t, b, opposing, 4, 4)

	leftMoves := mustMoves(t, b, left)
	testutil.AssertLen(t, leftMoves, 2)
	testutil.AssertHasSquare(t, leftMoves, sq(5, 4))

	rightMoves := mustMoves(t, b, right)
	testutil.AssertLen(t, rightMoves, 2)
	testutil.AssertHasSquare(t, rightMoves, sq(5, 4))
}

func TestPawn_WhiteNoEnPassantAfterDelay(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 4, 3, chess.White, chess.Pawn)
	progress := testutil.Put(b, 1, 0, chess.White, chess.Pawn)
	opposing := testutil.Put(b, 6, 4, chess.Black, chess.Pawn)
	opposingProgress := testutil.Put(b, 6, 0, chess.Black, chess.Pawn)

	mustMoveTo(t, b, progress, 2, 0)
	mustMoveTo(t, b, opposing, 4, 4)
	mustMoveTo(t, b, progress, 3, 0)
	mustMoveTo(t, b, opposingProgress, 5, 0)

	moves := mustMoves(t, b, pawn)
	testutil.AssertLen(t, moves, 1)
	testutil.AssertNoSquare(t, moves, sq(5, 4))
}

func TestPawn_WhiteNoEnPassantAfterSingleStep(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 3, 3, chess.White, chess.Pawn)
	opposing := testutil.Put(b, 4, 5, chess.Black, chess.Pawn)

	mustMoveTo(t, b, pawn, 4, 3)
	mustMoveTo(t, b, opposing, 4, 4)

	moves := mustMoves(t, b, pawn)
	testutil.AssertLen(t, moves, 1)
	testutil.AssertNoSquare(t, moves, sq(5, 4))
}

func TestPawn_WhiteNoEnPassantAfterCapture(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 3, 3, chess.White, chess.Pawn)
	testutil.Put(b, 4, 4, chess.White, chess.Pawn)
	opposing := testutil.Put(b, 5, 5, chess.Black, chess.Pawn)

	mustMoveTo(t, b, pawn, 4, 3)
	mustMoveTo(t, b, opposing, 4, 4)

	moves := mustMoves(t, b, pawn)
	testutil.AssertLen(t, moves, 1)
	testutil.AssertNoSquare(t, moves, sq(5, 4))
}

func TestPawn_BlackEnPassant(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.Put(b, 3, 3, chess.Black, chess.Pawn)
	opposing := testutil.Put(b, 1, 4, chess.White, chess.Pawn)

	mustMoveTo(t, b, opposing, 3, 4)

	testutil.AssertSquares(t, mustMoves(t, b, pawn), []chess.Square{sq(2, 3), sq(2, 4)})

	mustMoveTo(t, b, pawn, 2, 4)
	if got := b.GetPiece(sq(3, 4)); got != nil {
		t.Errorf("GetPiece(3,4) = %v after en passant, want empty", got)
	}
}

func TestPawn_BlackEnPassantFromEitherSide(t *testing.T) {
	b := chess.NewBoard()
	left := testutil.Put(b, 3, 3, chess.Black, chess.Pawn)
	right := testutil.Put(b, 3, 5, chess.Black, chess.Pawn)
	opposing := testutil.Put(b, 1, 4, chess.White, chess.Pawn)

	mustMoveTo(t, b, opposing, 3, 4)

	testutil.AssertSquares(t, mustMoves(t, b, left), []chess.Square{sq(2, 3), sq(2, 4)})
	testutil.AssertSquares(t, mustMoves(t, b, right), []chess.Square{sq(2, 5), sq(2, 4)})
}

func TestPawn_BlackNoEnPassant(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, b *chess.Board)
	}{
		{
			name: "not immediately prior",
			setup: func(t *testing.T, b *chess.Board) {
				progress := testutil.Put(b, 6, 0, chess.Black, chess.Pawn)
				opposing := testutil.Put(b, 1, 4, chess.White, chess.Pawn)
				opposingProgress := testutil.Put(b, 1, 0, chess.White, chess.Pawn)
				mustMoveTo(t, b, opposing, 3, 4)
				mustMoveTo(t, b, progress, 5, 0)
				mustMoveTo(t, b, opposingProgress, 2, 0)
			},
		},
		{
			name: "single step",
			setup: func(t *testing.T, b *chess.Board) {
				opposing := testutil.Put(b, 2, 4, chess.White, chess.Pawn)
				mustMoveTo(t, b, opposing, 3, 4)
			},
		},
		{
			name: "arrived by capture",
			setup: func(t *testing.T, b *chess.Board) {
				testutil.Put(b, 3, 4, chess.Black, chess.Pawn)
				opposing := testutil.Put(b, 2, 5, chess.White, chess.Pawn)
				mustMoveTo(t, b, opposing, 3, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard()
			pawn := testutil.Put(b, 3, 3, chess.Black, chess.Pawn)
			tt.setup(t, b)

			moves := mustMoves(t, b, pawn)
			testutil.AssertLen(t, moves, 1)
			testutil.AssertNoSquare(t, moves, sq(2, 4))
		})
	}
}

func TestPawn_PromotesOnFarthestRow(t *testing.T) {
	tests := []struct {
		name     string
		opts     []chess.BoardOption
		colour   chess.Colour
		from     chess.Square
		to       chess.Square
		wantKind chess.Kind
	}{
		{"white to queen", nil, chess.White, sq(6, 2), sq(7, 2), chess.Queen},
		{"black to queen", []chess.BoardOption{chess.WithStartingPlayer(chess.Black)}, chess.Black, sq(1, 2), sq(0, 2), chess.Queen},
		{"configured knight", []chess.BoardOption{chess.WithPromotion(chess.Knight)}, chess.White, sq(6, 2), sq(7, 2), chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard(tt.opts...)
			pawn := testutil.Put(b, tt.from.Row, tt.from.Col, tt.colour, chess.Pawn)

			mustMoveTo(t, b, pawn, tt.to.Row, tt.to.Col)

			got := b.GetPiece(tt.to)
			if got == nil || got == pawn {
				t.Fatalf("GetPiece(%v) = %v, want a new piece", tt.to, got)
			}
			testutil.AssertEqual(t, got.Kind, tt.wantKind)
			testutil.AssertEqual(t, got.Colour, tt.colour)
			if _, err := b.FindPiece(pawn); err == nil {
				t.Error("promoted pawn is still on the board")
			}
		})
	}
}
