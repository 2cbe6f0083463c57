package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gdtoolkit/internal/source"
)

// forEach runs fn for indices 0..n-1 on at most jobs goroutines (all CPUs
// when jobs <= 0). Each call owns its index, so results written by index
// need no locking. The first error cancels the remaining work.
func forEach(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))
	for i := range n {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// loadAll reads every file into one FileSet before the workers start;
// FileSet is not safe for concurrent Add. A file that fails to load has a
// nil entry and its error at the same index.
func loadAll(files []string) (*source.FileSet, []*source.File, []error) {
	fs := source.NewFileSet()
	ids := make([]source.FileID, len(files))
	errs := make([]error, len(files))
	for i, path := range files {
		ids[i], errs[i] = fs.Load(path)
	}
	// Get after the last Load: Add may move the backing array.
	loaded := make([]*source.File, len(files))
	for i := range files {
		if errs[i] == nil {
			loaded[i] = fs.Get(ids[i])
		}
	}
	return fs, loaded, errs
}
