package driver

import (
	"bytes"
	"context"
	"os"
	"time"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/format"
	"gdtoolkit/internal/observ"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/trace"
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	MaxDiagnostics int
	Jobs           int
	Options        format.Options
	Progress       ProgressSink
	Timer          *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	FileSet   *source.FileSet // shared by every result of the batch
	Changed   bool
	Formatted []byte // set in Stdout mode
	Bag       *diag.Bag
	Err       error
}

// FormatPaths formats provided files or directories (recursively collecting
// .gd files). When opts.Check is true, files are not modified; Changed
// indicates whether formatting would update the file contents. When
// opts.Stdout is true, formatted content is returned in the results without
// touching files on disk. A failing file records Err and the batch goes on;
// the returned error is reserved for collection failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "fmt")
	defer span.End("")

	fs, loaded, loadErrs := loadAll(files)
	emitQueued(opts.Progress, files)

	results := make([]FormatResult, len(files))
	err = forEach(ctx, len(files), opts.Jobs, func(ctx context.Context, i int) error {
		res := FormatResult{Path: files[i], FileSet: fs, Bag: diag.NewBag(opts.MaxDiagnostics)}
		started := time.Now()
		if loadErrs[i] != nil {
			res.Err = loadErrs[i]
		} else {
			res.Err = formatOne(ctx, loaded[i], opts, &res)
		}
		results[i] = res
		finish(opts.Progress, files[i], StageFormat, res.Err, started)
		return nil
	})
	return results, err
}

func formatOne(ctx context.Context, file *source.File, opts FormatOptions, res *FormatResult) error {
	ctx, span := trace.StartFile(ctx, "format", file.Path)
	defer span.End("")

	emit(opts.Progress, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
	start := time.Now()
	parsed := parseFile(ctx, file, opts.MaxDiagnostics)
	record(opts.Timer, "parse", start)
	res.Bag.Merge(parsed.Bag)
	if parsed.Tree == nil {
		return ErrParse
	}

	emit(opts.Progress, Event{File: res.Path, Stage: StageFormat, Status: StatusWorking})
	start = time.Now()
	formatted, err := format.FormatFile(file, parsed.Tree, parsed.Comments, opts.Options)
	record(opts.Timer, "format", start)
	if err != nil {
		return err
	}

	start = time.Now()
	err = verifyFormatted(ctx, parsed, formatted)
	record(opts.Timer, "verify", start)
	if err != nil {
		res.Bag.Add(unstableDiagnostic(file, err))
		return err
	}

	// Content is normalized on load; a stripped BOM or CRLF is a change too.
	res.Changed = !bytes.Equal(file.Content, formatted) || file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0
	switch {
	case opts.Check:
		return nil
	case opts.Stdout:
		res.Formatted = formatted
		return nil
	case !res.Changed:
		return nil
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(file.Path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(file.Path, formatted, mode.Perm())
}
