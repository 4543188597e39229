// internal/nmcli/options.go
package nmcli

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"readtools-core/nmfilter"
	"readtools/internal/version"
)

// Options holds all nmfilter CLI flags and arguments.
type Options struct {
	Input  string // positional; name-sorted SAM/BAM
	Output string // empty = "nm-ratio." prepended to the input name

	Threshold     float64
	UnpairedFatal bool
	CheckPairs    bool
	WarnRatio     float64

	Progress bool
	Quiet    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: filter a name-sorted SAM/BAM by NM-tag edit distance

Version: %s

Usage:
  %s [options] alignment.bam

Drops read pairs in which either member's edit distance exceeds the
threshold (percent per bp of read length). Both members must pass for the
pair to be written. Unpaired reads are always dropped. The input must be
sorted by read name.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noPairCheck bool

	fs.StringVar(&opt.Output, "output", "", "output file (default: input prefixed with \"nm-ratio.\")")
	fs.StringVar(&opt.Output, "o", "", "shorthand for --output")
	fs.Float64Var(&opt.Threshold, "threshold", nmfilter.DefaultThreshold, "NM threshold, percent per bp of read length [2.0]")
	fs.Float64Var(&opt.Threshold, "t", nmfilter.DefaultThreshold, "shorthand for --threshold")
	fs.BoolVar(&opt.UnpairedFatal, "unpaired-fatal", false, "fail on encountering an unpaired read [false]")
	fs.BoolVar(&opt.UnpairedFatal, "F", false, "shorthand for --unpaired-fatal")
	fs.BoolVar(&noPairCheck, "no-pair-check", false, "do not compare read names; trust strict adjacency [false]")
	fs.BoolVar(&noPairCheck, "P", false, "shorthand for --no-pair-check")
	fs.Float64Var(&opt.WarnRatio, "warn-ratio", nmfilter.DefaultWarnRatio, "unpaired/paired ratio above which unsorted input is suspected [0.75]")
	fs.BoolVar(&opt.Progress, "progress", false, "show a record-count spinner on stderr [false]")
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
	opt.CheckPairs = !noPairCheck

	switch len(fs.Args()) {
	case 1:
		opt.Input = fs.Arg(0)
	case 0:
		return opt, errors.New("an input alignment file is required")
	default:
		return opt, errors.New("exactly one input file may be given")
	}
	if opt.Threshold < 0 {
		return opt, errors.New("--threshold must be >= 0")
	}
	if opt.WarnRatio < 0 {
		return opt, errors.New("--warn-ratio must be >= 0")
	}
	if opt.Output == "" {
		opt.Output = DefaultOutput(opt.Input)
	}
	return opt, nil
}

// DefaultOutput prepends "nm-ratio." to the input's base name, keeping it
// in the same directory.
func DefaultOutput(input string) string {
	dir, base := filepath.Split(input)
	return filepath.Join(dir, "nm-ratio."+base)
}
