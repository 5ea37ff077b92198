package streak

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/grid"
)

// Query is one start/end pair for ShortestPathMany.
type Query struct {
	Start, End grid.Coord
}

// ShortestPathMany answers a batch of independent queries against one
// shared Grid, fanning them out across goroutines. Every worker owns its
// private best-cost map and frontier; the Grid is only ever read, so no
// locking is involved.
//
// The result slice is indexed like queries. A query with no feasible
// route yields the NoPath sentinel (-1) rather than failing the batch;
// ErrNoPath never escapes this function.
//
// All queries are validated up front against the shared option set, so a
// single bad coordinate or streak window fails fast before any search
// starts. Cancelling ctx abandons queries that have not started yet and
// returns ctx.Err(); searches already running finish their (short)
// course, as the engine itself has no internal yield points.
//
// Complexity: one ShortestPath per query, at most GOMAXPROCS in flight.
func ShortestPathMany(ctx context.Context, g *grid.Grid, queries []Query, opts ...Option) ([]int64, error) {
	// 1) Build and validate Options once for the whole batch.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, q := range queries {
		if err := validateQuery(g, q.Start, q.End, cfg); err != nil {
			return nil, err
		}
	}

	// 2) Fan out. Each goroutine writes only its own results slot.
	results := make([]int64, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			// Skip work that was cancelled while queued.
			if err := ctx.Err(); err != nil {
				return err
			}
			cost, err := search(g, q.Start, q.End, cfg)
			switch err {
			case nil:
				results[i] = cost
			case ErrNoPath:
				results[i] = NoPath
			default:
				return err
			}

			return nil
		})
	}

	// 3) Wait for completion; the first real error wins.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
