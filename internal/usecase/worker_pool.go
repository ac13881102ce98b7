package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

const defaultScoringWorkers = 4

func normalizeWorkerCount(requested, tasks int) int {
	if requested <= 0 {
		requested = defaultScoringWorkers
	}
	if tasks > 0 && requested > tasks {
		return tasks
	}
	return requested
}

// runTasks executes task for every index in [0, n) on a bounded pool and
// returns one error slot per index. A task that panics reports the panic as
// its error. Tasks not yet started when ctx is done report ctx.Err().
func runTasks(ctx context.Context, workers, n int, task func(ctx context.Context, i int) error) ([]error, error) {
	errs := make([]error, n)
	if n == 0 {
		return errs, nil
	}

	pool, err := ants.NewPool(normalizeWorkerCount(workers, n))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			var catcher panics.Catcher
			catcher.Try(func() {
				errs[i] = task(ctx, i)
			})
			if recovered := catcher.Recovered(); recovered != nil {
				errs[i] = recovered.AsError()
			}
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	return errs, nil
}
