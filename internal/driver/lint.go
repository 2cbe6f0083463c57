package driver

import (
	"context"
	"time"

	"gdtoolkit/internal/config"
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/lint"
	"gdtoolkit/internal/observ"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/trace"
)

// LintOptions configures a lint batch.
type LintOptions struct {
	Config         config.Lint
	MaxDiagnostics int
	Jobs           int
	Cache          *DiskCache // may be nil
	Progress       ProgressSink
	Timer          *observ.Timer
}

// LintResult captures the result of linting a single file.
type LintResult struct {
	Path     string
	FileSet  *source.FileSet // shared by every result of the batch
	Problems []lint.Problem
	Cached   bool
	Bag      *diag.Bag
	Err      error
}

// LintPaths lints provided files or directories, with the same collection,
// ordering and error rules as FormatPaths. Cache failures are not errors;
// the file is linted again.
func LintPaths(ctx context.Context, paths []string, opts LintOptions) ([]LintResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "lint")
	defer span.End("")

	fs, loaded, loadErrs := loadAll(files)
	emitQueued(opts.Progress, files)
	fingerprint := opts.Config.Fingerprint()

	results := make([]LintResult, len(files))
	err = forEach(ctx, len(files), opts.Jobs, func(ctx context.Context, i int) error {
		res := LintResult{Path: files[i], FileSet: fs, Bag: diag.NewBag(opts.MaxDiagnostics)}
		started := time.Now()
		if loadErrs[i] != nil {
			res.Err = loadErrs[i]
		} else {
			res.Err = lintOne(ctx, loaded[i], fingerprint, opts, &res)
		}
		results[i] = res
		finish(opts.Progress, files[i], StageLint, res.Err, started)
		return nil
	})
	return results, err
}

func lintOne(ctx context.Context, file *source.File, fingerprint string, opts LintOptions, res *LintResult) error {
	ctx, span := trace.StartFile(ctx, "lint", file.Path)
	defer span.End("")

	key := LintKey(file, fingerprint)
	var cached DiskPayload
	if ok, err := opts.Cache.Get(key, &cached); err == nil && ok {
		res.Problems = cached.Problems
		res.Cached = true
		span.WithExtra("cache", "hit")
		return nil
	}

	emit(opts.Progress, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
	start := time.Now()
	parsed := parseFile(ctx, file, opts.MaxDiagnostics)
	record(opts.Timer, "parse", start)
	res.Bag.Merge(parsed.Bag)
	if parsed.Tree == nil {
		return ErrParse
	}

	emit(opts.Progress, Event{File: res.Path, Stage: StageLint, Status: StatusWorking})
	start = time.Now()
	res.Problems = lint.Lint(parsed.Tree, file, opts.Config)
	record(opts.Timer, "lint", start)

	if err := opts.Cache.Put(key, &DiskPayload{Path: file.Path, Problems: res.Problems}); err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", err.Error())
	}
	return nil
}
