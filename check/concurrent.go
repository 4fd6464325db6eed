package check

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rcheck/gen"
	"github.com/katalvlaran/rcheck/random"
)

// SearchConcurrent partitions trials across workers goroutines, each
// drawing from its own stream split off the shared seed by worker index,
// and then by trial index within that worker's share. Every worker keeps
// running until either it exhausts its share or a sibling reports a
// counterexample, at which point a shared context cancels every other
// worker's remaining trials.
//
// Only the first counterexample to be committed (there can be a benign
// race between workers that both fail on their last checked trial before
// observing cancellation) is returned; which one wins when several
// workers fail around the same time is not deterministic, but for a fixed
// seed and worker count the set of trials every worker actually visits
// is, so a re-run that happens to let the same worker win reports the
// same minimized value.
func SearchConcurrent[T any](prop PropertyFunc[T], g gen.Generator[T], seed uint64, trials, workers int, opts ...SearchOption) Outcome[T] {
	if workers < 1 {
		workers = 1
	}
	cfg := buildConfig(opts)
	root := random.NewSource(seed)

	perWorker := (trials + workers - 1) / workers

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, _ := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var best *Outcome[T]

	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			workerStream := root.Split(uint64(w))
			start := w * perWorker
			end := start + perWorker
			if end > trials {
				end = trials
			}

			for trial := start; trial < end; trial++ {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				trialStream := workerStream.Split(uint64(trial))
				tctx := gen.NewContext(trialStream)
				node := gen.NewRoot(rootGenerator(g))

				v, err := gen.Safe(func() T { return node.Value(tctx).(T) })
				if err != nil {
					logger.WithField("worker", w).WithField("trial", trial).WithError(err).
						Warn("check: discarding trial after generation failure")
					continue
				}

				if evalProperty(prop, v) {
					continue
				}

				final, steps := gen.ShrinkSearch(tctx, node, propertyCheck(prop), cfg.maxShrinkSteps)

				mu.Lock()
				if best == nil {
					oc := Counterexample[T](final.(T), steps)
					best = &oc
				}
				mu.Unlock()
				cancel()
				return nil
			}
			return nil
		})
	}

	_ = eg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if best != nil {
		return *best
	}
	return NoCounterexample[T](trials)
}
