// Package perft counts the positions reachable from a board, the standard
// cross-check for a move generator. Promotion is automatic, so a promoting
// pawn move counts once rather than once per piece kind.
package perft

import (
	"context"
	"sort"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// DivideEntry is the subtree size below one root move.
type DivideEntry struct {
	From  chess.Square `json:"-"`
	To    chess.Square `json:"-"`
	Move  string       `json:"move"`
	Nodes uint64       `json:"nodes"`
}

// Count returns the number of leaf positions depth plies below b for the
// side to move. b is not modified.
func Count(b *chess.Board, depth int) (uint64, error) {
	return count(b, depth, nil)
}

// CountCached is Count with subtree counts shared through cache.
func CountCached(b *chess.Board, depth int, cache hashing.Cache) (uint64, error) {
	return count(b, depth, cache)
}

func count(b *chess.Board, depth int, cache hashing.Cache) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var key uint64
	if cache != nil {
		key = hashing.Key(b)
		if n, ok := cache.Probe(key, depth); ok {
			return n, nil
		}
	}

	var total uint64
	for _, m := range rootMoves(b) {
		if depth == 1 {
			total++
			continue
		}
		child, err := play(b, m.From, m.To)
		if err != nil {
			return 0, err
		}
		n, err := count(child, depth-1, cache)
		if err != nil {
			return 0, err
		}
		total += n
	}

	if cache != nil {
		cache.Store(key, depth, total)
	}
	return total, nil
}

// DivideOption configures Divide.
type DivideOption func(*divideOptions)

type divideOptions struct {
	cache hashing.Cache
}

// WithCache shares subtree counts between workers. The cache must be safe
// for concurrent use when more than one worker runs.
func WithCache(cache hashing.Cache) DivideOption {
	return func(o *divideOptions) {
		o.cache = cache
	}
}

// Divide counts the subtree below each root move on a pool of workers.
// Every work item owns a deep copy of the board. Entries are sorted by
// move text. Cancelling ctx stops the pool and returns ctx.Err().
func Divide(ctx context.Context, b *chess.Board, depth, workers int, opts ...DivideOption) ([]DivideEntry, error) {
	var o divideOptions
	for _, opt := range opts {
		opt(&o)
	}
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d", depth)
	}

	start := time.Now()
	moves := rootMoves(b)
	items := make([]worker.WorkItem, 0, len(moves))
	for i, m := range moves {
		child, err := play(b, m.From, m.To)
		if err != nil {
			return nil, err
		}
		items = append(items, worker.WorkItem{
			Board: child,
			Index: i,
			From:  m.From,
			To:    m.To,
			Depth: depth - 1,
		})
	}

	expand := func(item worker.WorkItem) worker.Result {
		n, err := count(item.Board, item.Depth, o.cache)
		return worker.Result{
			Index: item.Index,
			From:  item.From,
			To:    item.To,
			Nodes: n,
			Err:   err,
		}
	}
	pool := worker.NewPool(expand,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)+1),
	)
	pool.Start()
	go func() {
		defer pool.Close()
		for _, item := range items {
			if ctx.Err() != nil {
				return
			}
			pool.Submit(item)
		}
	}()

	entries := make([]DivideEntry, 0, len(items))
	var firstErr error
	results := pool.Results()
	for results != nil {
		select {
		case <-ctx.Done():
			pool.Stop()
			for range results {
			}
			return nil, ctx.Err()
		case r, ok := <-results:
			if !ok {
				results = nil
				continue
			}
			if r.Err != nil && firstErr == nil {
				firstErr = r.Err
				pool.Stop()
			}
			entries = append(entries, DivideEntry{
				From:  r.From,
				To:    r.To,
				Move:  r.From.Algebraic() + r.To.Algebraic(),
				Nodes: r.Nodes,
			})
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })

	log.WithFields(log.Fields{
		"depth":   depth,
		"workers": pool.NumWorkers(),
		"moves":   len(entries),
		"nodes":   Total(entries),
		"elapsed": time.Since(start).String(),
	}).Debug("divide finished")
	return entries, nil
}

// Total sums the node counts of entries.
func Total(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

type rootMove struct {
	From, To chess.Square
}

// rootMoves lists the legal moves of the side to move in row-major order
// of origin, then generation order.
func rootMoves(b *chess.Board) []rootMove {
	var moves []rootMove
	for _, placed := range b.Pieces(b.ToMove) {
		dests, err := engine.AvailableMoves(b, placed.Piece)
		if err != nil {
			continue
		}
		for _, to := range dests {
			moves = append(moves, rootMove{From: placed.Square, To: to})
		}
	}
	return moves
}

// play returns a deep copy of b with the move applied.
func play(b *chess.Board, from, to chess.Square) (*chess.Board, error) {
	child := b.DeepCopy()
	if err := engine.MoveTo(child, child.GetPiece(from), to); err != nil {
		return nil, errors.Wrapf(err, "play %s%s", from.Algebraic(), to.Algebraic())
	}
	return child, nil
}
