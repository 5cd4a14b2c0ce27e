// Package testutil provides shared test utilities for the rules engine.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sortSquares orders squares row-major so move sets compare regardless of
// generation order.
var sortSquares = cmpopts.SortSlices(func(a, b chess.Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
})

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertSquares fails unless got holds exactly the squares in want, in any order.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, sortSquares, cmpopts.EquateEmpty()); diff != "" {
		report(t, fmt.Sprintf("square set mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertHasSquare fails if sq is not among got.
func AssertHasSquare(t *testing.T, got []chess.Square, sq chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	for _, s := range got {
		if s == sq {
			return
		}
	}
	report(t, fmt.Sprintf("%v not in %v", sq, got), msgAndArgs...)
}

// AssertNoSquare fails if sq is among got.
func AssertNoSquare(t *testing.T, got []chess.Square, sq chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	for _, s := range got {
		if s == sq {
			report(t, fmt.Sprintf("%v unexpectedly in %v", sq, got), msgAndArgs...)
			return
		}
	}
}

// AssertLen fails if got does not hold exactly n squares.
func AssertLen(t *testing.T, got []chess.Square, n int, msgAndArgs ...interface{}) {
	t.Helper()
	if len(got) != n {
		report(t, fmt.Sprintf("len = %d, want %d: %v", len(got), n, got), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, fmt.Sprintf("error = %v, want %v", err, target), msgAndArgs...)
	}
}

// report emits a test error with optional formatted context.
func report(t *testing.T, detail string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
