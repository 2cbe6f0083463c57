package diagfmt

import (
	"fmt"
	"io"

	"gdtoolkit/internal/lint"
)

// Problems writes one line per lint problem in gdlint's layout:
//
//	path:line: Error: description (check-name)
func Problems(w io.Writer, path string, problems []lint.Problem, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	shown := displayPath(path, opts.PathMode, opts.BaseDir)
	for _, pr := range problems {
		if _, err := fmt.Fprintf(w, "%s:%d: %s: %s (%s)\n",
			shown, pr.Line, p.err("Error"), pr.Description, p.dim(pr.Name)); err != nil {
			return err
		}
	}
	return nil
}

// ProblemsSummary writes the closing line of a lint run.
func ProblemsSummary(w io.Writer, total int, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var err error
	switch total {
	case 0:
		_, err = fmt.Fprintf(w, "%s: no problems found\n", p.caret("Success"))
	case 1:
		_, err = fmt.Fprintf(w, "%s: 1 problem found\n", p.err("Failure"))
	default:
		_, err = fmt.Fprintf(w, "%s: %d problems found\n", p.err("Failure"), total)
	}
	return err
}
