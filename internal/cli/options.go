// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"readtools/internal/version"
)

// Options holds all getreads CLI flags and arguments.
type Options struct {
	Input      string // positional; "-" for stdin
	Format     string // empty = detect from the input filename
	QualFormat string

	// TSV column layout (1-based). QualCol 0 disables the quality column.
	NameCol int
	SeqCol  int
	QualCol int

	Bases bool // print individual bases instead of whole reads
	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parse FASTA, FASTQ, SAM, TSV, or line-per-read inputs and print each read

Version: %s

Usage:
  %s [options] [reads.fa|-]

Reads stdin when the input is "-" or omitted; gzip/zstd inputs are
decompressed transparently. The format is detected from the filename
unless --format is given (required for stdin).

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Format, "format", "", "input format: line | tsv | sam | fasta | fastq (default: by extension)")
	fs.StringVar(&opt.Format, "f", "", "shorthand for --format")
	fs.StringVar(&opt.QualFormat, "qual-format", "sanger", "quality encoding: sanger | solexa [sanger]")
	fs.IntVar(&opt.NameCol, "name-col", 1, "tsv: 1-based column holding the read name [1]")
	fs.IntVar(&opt.SeqCol, "seq-col", 2, "tsv: 1-based column holding the sequence [2]")
	fs.IntVar(&opt.QualCol, "qual-col", 3, "tsv: 1-based column holding the quality string (0 = none) [3]")
	fs.BoolVar(&opt.Bases, "bases", false, "print one base per line instead of whole reads [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(fs.Args()) {
	case 0:
		opt.Input = "-"
	case 1:
		opt.Input = fs.Arg(0)
	default:
		return opt, errors.New("at most one input file may be given")
	}

	if opt.Input == "-" && opt.Format == "" {
		return opt, errors.New("--format is required when reading from stdin")
	}
	if opt.NameCol < 1 || opt.SeqCol < 1 {
		return opt, errors.New("--name-col and --seq-col must be >= 1")
	}
	if opt.QualCol < 0 {
		return opt, errors.New("--qual-col must be >= 0")
	}
	if opt.QualFormat != "sanger" && opt.QualFormat != "solexa" {
		return opt, fmt.Errorf("invalid --qual-format %q", opt.QualFormat)
	}
	return opt, nil
}
