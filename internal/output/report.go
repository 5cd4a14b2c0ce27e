// Package output formats perft reports as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/perft"
)

// Report is the result of one enumeration run.
type Report struct {
	Depth     int                 `json:"depth"`
	ToMove    string              `json:"to_move"`
	Promotion string              `json:"promotion"`
	Nodes     uint64              `json:"nodes"`
	Divide    []perft.DivideEntry `json:"divide"`
	Stats     *perft.Summary      `json:"stats,omitempty"`
}

// writeText prints one "move: nodes" line per root move, then the total
// and, when present, the subtree summary.
func writeText(w io.Writer, r *Report) error {
	for _, e := range r.Divide {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nNodes searched: %d\n", r.Nodes); err != nil {
		return err
	}
	if s := r.Stats; s != nil {
		_, err := fmt.Fprintf(w, "Moves: %d  min %.0f  max %.0f  mean %.1f  median %.1f  stddev %.1f\n",
			s.Moves, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
		return err
	}
	return nil
}
