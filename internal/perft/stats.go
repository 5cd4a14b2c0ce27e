package perft

import (
	"github.com/montanaflynn/stats"
)

// Summary describes how evenly nodes spread over the root moves.
type Summary struct {
	Moves  int     `json:"moves"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Summarize computes subtree size statistics over divide entries. It fails
// when entries is empty.
func Summarize(entries []DivideEntry) (Summary, error) {
	data := make(stats.Float64Data, 0, len(entries))
	for _, e := range entries {
		data = append(data, float64(e.Nodes))
	}

	var (
		s   = Summary{Moves: len(entries)}
		err error
	)
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviationPopulation(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}
