// internal/nmapp/app.go
package nmapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"readtools-core/nmfilter"
	"readtools/internal/cmdutil"
	"readtools/internal/nmcli"
	"readtools/internal/version"
)

var nmTag = []byte("NM")

// alignment adapts a decoded *sam.Record to the filter's read-only view.
type alignment struct {
	rec *sam.Record
}

func (a alignment) Name() string { return a.rec.Name }
func (a alignment) Length() int  { return a.rec.Seq.Length }

func (a alignment) EditDistance() (int, error) {
	aux, ok := a.rec.Tag(nmTag)
	if !ok {
		return 0, fmt.Errorf("read %q has no NM tag", a.rec.Name)
	}
	nm, ok := auxInt(aux.Value())
	if !ok {
		return 0, fmt.Errorf("read %q has a non-integer NM tag", a.rec.Name)
	}
	return nm, nil
}

func auxInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case uint8:
		return int(x), true
	case int16:
		return int(x), true
	case uint16:
		return int(x), true
	case int32:
		return int(x), true
	case uint32:
		return int(x), true
	default:
		return 0, false
	}
}

// recordSource and recordSink cover both the SAM and BAM readers/writers.
type recordSource interface {
	Read() (*sam.Record, error)
}

type recordSink interface {
	Write(*sam.Record) error
}

func isBAM(path string) bool { return strings.HasSuffix(path, ".bam") }

func openSource(path string) (recordSource, *sam.Header, io.Closer, error) {
	var (
		r       io.Reader
		closers []io.Closer
	)
	if path == "-" {
		r = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, err
		}
		r = fh
		closers = append(closers, fh)
	}
	if isBAM(path) {
		br, err := bam.NewReader(r, 1)
		if err != nil {
			closeAll(closers)
			return nil, nil, nil, err
		}
		closers = append([]io.Closer{br}, closers...)
		return br, br.Header(), closerList(closers), nil
	}
	sr, err := sam.NewReader(r)
	if err != nil {
		closeAll(closers)
		return nil, nil, nil, err
	}
	return sr, sr.Header(), closerList(closers), nil
}

func openSink(path string, h *sam.Header) (recordSink, io.Closer, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if isBAM(path) {
		bw, err := bam.NewWriter(fh, h, 1)
		if err != nil {
			_ = fh.Close()
			return nil, nil, err
		}
		return bw, closerList([]io.Closer{bw, fh}), nil
	}
	sw, err := sam.NewWriter(fh, h, sam.FlagDecimal)
	if err != nil {
		_ = fh.Close()
		return nil, nil, err
	}
	return sw, fh, nil
}

type closerList []io.Closer

func (cs closerList) Close() error {
	var err error
	for _, c := range cs {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func closeAll(cs []io.Closer) { _ = closerList(cs).Close() }

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := nmcli.NewFlagSet("nmfilter")
	fs.SetOutput(io.Discard)

	opts, err := nmcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "nmfilter version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	src, header, srcClose, err := openSource(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = srcClose.Close() }()

	sink, sinkClose, err := openSink(opts.Output, header)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	bar := newProgress(stderr, opts.Progress)
	next := func() (nmfilter.Alignment, bool, error) {
		rec, err := src.Read()
		if err == io.EOF {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		bar.increment()
		return alignment{rec: rec}, true, nil
	}
	write := func(a nmfilter.Alignment) error {
		return sink.Write(a.(alignment).rec)
	}

	fopt := nmfilter.Options{
		Threshold:     opts.Threshold,
		UnpairedFatal: opts.UnpairedFatal,
		CheckPairs:    opts.CheckPairs,
		WarnRatio:     opts.WarnRatio,
		Warnf:         cmdutil.WarnfFunc(stderr, opts.Quiet),
	}
	st, runErr := nmfilter.Run(ctx, next, write, fopt)
	bar.finish()
	if cerr := sinkClose.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 1
	}

	if opts.CheckPairs {
		_, _ = fmt.Fprintf(outw, "paired reads:   %d\n", st.Paired)
		_, _ = fmt.Fprintf(outw, "unpaired reads: %d\n", st.Unpaired)
	}
	return flushCode(outw, stderr)
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
