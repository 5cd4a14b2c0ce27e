package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestSliders_OpenBoard(t *testing.T) {
	tests := []struct {
		kind chess.Kind
		want int
	}{
		{chess.Rook, 14},
		{chess.Bishop, 13},
		{chess.Queen, 27},
		{chess.Knight, 8},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b := chess.NewBoard()
			p := testutil.Put(b, 3, 3, chess.White, tt.kind)

			testutil.AssertLen(t, mustMoves(t, b, p), tt.want)
		})
	}
}

func TestRook_StopsAtBlockers(t *testing.T) {
	b := chess.NewBoard()
	rook := testutil.Put(b, 0, 0, chess.White, chess.Rook)
	testutil.Put(b, 3, 0, chess.Black, chess.Knight)
	testutil.Put(b, 0, 2, chess.White, chess.Bishop)

	testutil.AssertSquares(t, mustMoves(t, b, rook), []chess.Square{
		sq(1, 0), sq(2, 0), sq(3, 0), sq(0, 1),
	})
}

func TestBishop_NeverTakesKing(t *testing.T) {
	b := chess.NewBoard()
	bishop := testutil.Put(b, 0, 0, chess.White, chess.Bishop)
	testutil.Put(b, 2, 2, chess.Black, chess.King)

	testutil.AssertSquares(t, mustMoves(t, b, bishop), []chess.Square{sq(1, 1)})
}

func TestKnight_JumpsAndEdges(t *testing.T) {
	b := chess.NewBoard()
	knight := testutil.Put(b, 0, 1, chess.White, chess.Knight)
	// Surrounding pieces do not block a knight.
	testutil.Put(b, 1, 1, chess.White, chess.Pawn)
	testutil.Put(b, 1, 2, chess.White, chess.Pawn)
	testutil.Put(b, 2, 0, chess.Black, chess.Pawn)
	testutil.Put(b, 1, 3, chess.White, chess.Pawn)

	testutil.AssertSquares(t, mustMoves(t, b, knight), []chess.Square{sq(2, 0), sq(2, 2)})
}

func TestPinnedPieces(t *testing.T) {
	tests := []struct {
		name   string
		kind   chess.Kind
		at     chess.Square
		pinner chess.Kind
		pinAt  chess.Square
		want   []chess.Square
	}{
		{"rook slides along pin", chess.Rook, sq(3, 4), chess.Rook, sq(7, 4), []chess.Square{sq(1, 4), sq(2, 4), sq(4, 4), sq(5, 4), sq(6, 4), sq(7, 4)}},
		{"knight frozen", chess.Knight, sq(3, 4), chess.Rook, sq(7, 4), nil},
		{"bishop frozen on file", chess.Bishop, sq(3, 4), chess.Queen, sq(7, 4), nil},
		{"bishop along diagonal", chess.Bishop, sq(1, 5), chess.Bishop, sq(3, 7), []chess.Square{sq(2, 6), sq(3, 7)}},
		{"pawn pushes along file", chess.Pawn, sq(1, 4), chess.Rook, sq(7, 4), []chess.Square{sq(2, 4), sq(3, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard()
			testutil.Put(b, 0, 4, chess.White, chess.King)
			pinned := testutil.Put(b, tt.at.Row, tt.at.Col, chess.White, tt.kind)
			testutil.Put(b, tt.pinAt.Row, tt.pinAt.Col, chess.Black, tt.pinner)

			testutil.AssertSquares(t, mustMoves(t, b, pinned), tt.want)
		})
	}
}

func TestPseudoLegalMoves_IgnoresPins(t *testing.T) {
	b := chess.NewBoard()
	testutil.Put(b, 0, 4, chess.White, chess.King)
	knight := testutil.Put(b, 3, 4, chess.White, chess.Knight)
	testutil.Put(b, 7, 4, chess.Black, chess.Rook)

	pseudo, err := PseudoLegalMoves(b, knight)
	testutil.AssertNoError(t, err)
	testutil.AssertLen(t, pseudo, 8)
	testutil.AssertLen(t, mustMoves(t, b, knight), 0)
}

func TestAvailableMoves_PieceNotOnBoard(t *testing.T) {
	b := chess.NewBoard()
	loose := chess.NewPiece(chess.White, chess.Queen)

	_, err := AvailableMoves(b, loose)
	testutil.AssertErrorIs(t, err, errors.ErrPieceNotOnBoard)

	_, err = PseudoLegalMoves(b, loose)
	testutil.AssertErrorIs(t, err, errors.ErrPieceNotOnBoard)
}

func TestAvailableMoves_Idempotent(t *testing.T) {
	b := chess.NewBoard()
	testutil.Put(b, 0, 4, chess.White, chess.King)
	queen := testutil.Put(b, 3, 3, chess.White, chess.Queen)
	testutil.Put(b, 7, 4, chess.Black, chess.Rook)
	before := b.String()

	first := mustMoves(t, b, queen)
	second := mustMoves(t, b, queen)

	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, b.String(), before)
}

func TestAllAvailableMoves(t *testing.T) {
	b := chess.NewBoard()
	testutil.Put(b, 0, 0, chess.White, chess.King)
	testutil.Put(b, 7, 7, chess.White, chess.Pawn)
	testutil.Put(b, 1, 2, chess.White, chess.Pawn)

	got := AllAvailableMoves(b, chess.White)

	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertSquares(t, got[sq(0, 0)], []chess.Square{sq(0, 1), sq(1, 0), sq(1, 1)})
	testutil.AssertSquares(t, got[sq(1, 2)], []chess.Square{sq(2, 2), sq(3, 2)})
	if _, ok := got[sq(7, 7)]; ok {
		t.Error("AllAvailableMoves includes a piece with no moves")
	}
}

func TestStalemateShape(t *testing.T) {
	b := chess.NewBoard(chess.WithStartingPlayer(chess.Black))
	testutil.Put(b, 7, 0, chess.Black, chess.King)
	testutil.Put(b, 5, 1, chess.White, chess.Queen)
	testutil.Put(b, 0, 7, chess.White, chess.King)

	if IsInCheck(b, chess.Black) {
		t.Fatal("IsInCheck(Black) = true, want false")
	}
	if HasLegalMoves(b, chess.Black) {
		t.Error("HasLegalMoves(Black) = true, want false")
	}
	if IsCheckmate(b, chess.Black) {
		t.Error("IsCheckmate(Black) = true for a stalemate")
	}
	if !HasLegalMoves(b, chess.White) {
		t.Error("HasLegalMoves(White) = false, want true")
	}
}

func TestBoardWithoutKing(t *testing.T) {
	b := chess.NewBoard()
	rook := testutil.Put(b, 0, 0, chess.White, chess.Rook)
	testutil.Put(b, 7, 0, chess.Black, chess.Rook)

	testutil.AssertLen(t, mustMoves(t, b, rook), 14)
	if IsInCheck(b, chess.White) {
		t.Error("IsInCheck without a king = true")
	}
	testutil.AssertLen(t, Checkers(b, chess.White), 0)
}
