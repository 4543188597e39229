// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"readtools-core/reads"
	"readtools/internal/cli"
	"readtools/internal/cmdutil"
	"readtools/internal/version"
)

// DetectFormat guesses the format tag from a filename, ignoring
// compression suffixes. Returns "" when nothing can be inferred.
func DetectFormat(path string) string {
	name := strings.TrimSuffix(path, ".gz")
	name = strings.TrimSuffix(name, ".zst")
	ext := filepath.Ext(name)
	switch ext {
	case ".fq":
		return reads.FormatFastq
	case ".fa":
		return reads.FormatFasta
	case ".txt":
		return reads.FormatLine
	case "":
		return ""
	default:
		return ext[1:]
	}
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("getreads")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "getreads version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	format := opts.Format
	if format == "" {
		format = DetectFormat(opts.Input)
		if format == "" {
			_, _ = fmt.Fprintf(stderr, "cannot detect the format of %q; give --format\n", opts.Input)
			return 2
		}
	}

	cfg := reads.Config{
		QualFormat: opts.QualFormat,
		NameCol:    opts.NameCol,
		SeqCol:     opts.SeqCol,
		QualCol:    opts.QualCol,
		Warnf:      cmdutil.WarnfFunc(stderr, opts.Quiet),
	}
	p, err := reads.New(format, reads.PathSource(opts.Input), cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = p.Close() }()

	if opts.Bases {
		err = reads.EachBase(p, func(b byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, werr := fmt.Fprintf(outw, "%c\n", b)
			return werr
		})
	} else {
		err = printReads(ctx, outw, p)
	}
	if err != nil {
		if cmdutil.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return flushCode(outw, stderr)
}

func printReads(ctx context.Context, w io.Writer, p reads.Parser) error {
	i := 0
	for p.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		i++
		r := p.Read()
		if _, err := fmt.Fprintf(w, "Read %d id/name: %q/%q\n", i, r.ID, r.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Read %d seq:  %q\n", i, r.Seq); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Read %d qual: %q\n", i, r.Qual); err != nil {
			return err
		}
	}
	return p.Err()
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
