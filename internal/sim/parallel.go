package sim

import (
	"context"
	"sync"
)

// Ensemble runs independent simulations of the same setup across a
// range of seeds, one goroutine per run. Only whole simulations run in
// parallel; the relaxation sweep inside each Step stays sequential.
type Ensemble struct {
	build     func(seed int64) (*Simulation, error)
	numRuns   int
	seedStart int64
}

// NewEnsemble wraps a factory that constructs a fresh Simulation for a
// given seed. The factory owns scenario generation; the ensemble only
// fans runs out and collects results.
func NewEnsemble(build func(seed int64) (*Simulation, error), numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s, err := e.build(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
