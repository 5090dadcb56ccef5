package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/Charl-AI/Charl-AI.github.io/internal/content"
	"github.com/Charl-AI/Charl-AI.github.io/internal/logger"
)

// Result summarizes one build run.
type Result struct {
	Found  int
	Built  int
	Failed int
}

// Build discovers every content file and converts each one, running
// conversions on a bounded worker pool. A failing file never aborts its
// siblings; all failures are joined into the returned error after every
// worker has finished. Cancelling ctx stops dispatch of not-yet-started
// files.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if b.cfg.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.BuildTimeout)
		defer cancel()
	}

	paths, err := content.Discover(b.cfg.ContentDir, b.cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	res := &Result{Found: len(paths)}

	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	jobs := make(chan string)
	for i := 0; i < b.workerCount(len(paths)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range jobs {
				err := b.convertOne(rel)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
					res.Failed++
				} else {
					res.Built++
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("build aborted: %w", err))
			mu.Unlock()
			break dispatch
		}
		select {
		case <-ctx.Done():
			mu.Lock()
			errs = append(errs, fmt.Errorf("build aborted: %w", ctx.Err()))
			mu.Unlock()
			break dispatch
		case jobs <- rel:
		}
	}
	close(jobs)
	wg.Wait()

	if b.cfg.StaticDir != "" {
		if _, statErr := os.Stat(b.cfg.StaticDir); statErr == nil {
			if err := copyDirContents(b.cfg.StaticDir, b.cfg.OutputDir); err != nil {
				errs = append(errs, fmt.Errorf("copying static assets: %w", err))
			}
		} else {
			logger.Debug("static directory %s not found, skipping copy", b.cfg.StaticDir)
		}
	}

	if len(errs) > 0 {
		return res, errors.Join(errs...)
	}
	return res, nil
}

func (b *Builder) workerCount(jobs int) int {
	workers := b.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if jobs > 0 && workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
