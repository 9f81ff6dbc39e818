package extend

import (
	"context"
	"sort"
	"sync"

	"github.com/bioarsenal/greedy/greedy"
	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"
)

type hspKey struct {
	queryStart   int
	queryStop    int
	subjectStart int
	subjectStop  int
}

// ExtendAll extends every seed on up to workers goroutines, each holding its own Context from
// pool for the duration of the call. Seeds whose alignment exceeds the context's MaxSpace are
// dropped. Seeds that extend to the same coordinates are reported once.
//
// The HSPs are returned sorted by descending score, then by subject and query start. When ctx is
// cancelled no further seeds are handed out and the context's error is returned.
func ExtendAll(ctx context.Context, pool *ContextPool, params greedy.Params, query, subject []byte, seeds []Seed, workers int, traceback bool) ([]*HSP, error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Seed)
	var (
		lock     sync.Mutex
		hsps     []*HSP
		firstErr error
		wg       sync.WaitGroup
	)

	fail := func(err error) {
		lock.Lock()
		defer lock.Unlock()
		if firstErr == nil {
			firstErr = err
		}
		cancel()
	}

	for worker := 0; worker < workers; worker++ {
		c, err := pool.Get()
		if err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func(worker int, c *greedy.Context) {
			defer wg.Done()
			defer pool.Put(c)

			extender := NewExtender(pool.logger, greedy.NewAligner(c, params))
			for seed := range jobs {
				hsp, err := extender.Extend(ctx, query, subject, seed, traceback)
				if cerrors.Is(err, greedy.ErrSpaceExhausted) {
					pool.logger.LogAttrs(ctx, slog.LevelDebug, "ExtendAll dropping seed",
						slog.Int("Worker", worker),
						slog.Int("QueryOffset", seed.QueryOffset),
						slog.Int("SubjectOffset", seed.SubjectOffset),
						slog.String("Reason", err.Error()))
					continue
				}
				if err != nil {
					fail(err)
					continue
				}

				lock.Lock()
				hsps = append(hsps, hsp)
				lock.Unlock()
			}
		}(worker, c)
	}

feed:
	for _, seed := range seeds {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- seed:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// The parent context may have been cancelled while every worker was idle
	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	return uniqueSorted(hsps), nil
}

func uniqueSorted(hsps []*HSP) []*HSP {
	sort.Slice(hsps, func(i, j int) bool {
		a, b := hsps[i], hsps[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.SubjectStart != b.SubjectStart {
			return a.SubjectStart < b.SubjectStart
		}
		if a.QueryStart != b.QueryStart {
			return a.QueryStart < b.QueryStart
		}
		return a.Seed.SubjectOffset < b.Seed.SubjectOffset
	})

	seen := swiss.NewMap[hspKey, struct{}](uint32(len(hsps) + 1))
	unique := hsps[:0]
	for _, hsp := range hsps {
		key := hspKey{
			queryStart:   hsp.QueryStart,
			queryStop:    hsp.QueryStop,
			subjectStart: hsp.SubjectStart,
			subjectStop:  hsp.SubjectStop,
		}
		if seen.Has(key) {
			continue
		}
		seen.Put(key, struct{}{})
		unique = append(unique, hsp)
	}
	return unique
}
