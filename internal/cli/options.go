// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"minspace/internal/config"
	"minspace/internal/kmer"
	"minspace/internal/pipeline"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Fasta  string
	Concat string

	// Output
	Output string
	Info   bool

	// Minimizers
	Window int
	Length int
	Config string

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, applies --config defaults for
// flags left unset, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Fasta, "fasta", "", "FASTA/FASTQ input (first record)")
	fs.StringVar(&opt.Fasta, "f", "", "alias of --fasta")
	fs.StringVar(&opt.Concat, "concat", "", "raw byte input")
	fs.StringVar(&opt.Concat, "c", "", "alias of --concat")

	// Output
	fs.StringVar(&opt.Output, "output", "", "output file")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.BoolVar(&opt.Info, "info", false, "also write <output>.toml [false]")

	// Minimizers
	fs.IntVar(&opt.Window, "window", pipeline.DefaultWindow, "window length W [31]")
	fs.IntVar(&opt.Window, "w", pipeline.DefaultWindow, "alias of --window")
	fs.IntVar(&opt.Length, "length", pipeline.DefaultLength, "minimizer length L [10]")
	fs.IntVar(&opt.Length, "l", pipeline.DefaultLength, "alias of --length")
	fs.StringVar(&opt.Config, "config", "", "TOML defaults file")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress informational logs [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, errors.New("unexpected positional arguments; use --fasta or --concat")
	}

	if opt.Config != "" {
		f, err := config.Load(opt.Config)
		if err != nil {
			return opt, err
		}
		applyDefaults(fs, &opt, f)
	}
	return opt, Validate(opt)
}

// applyDefaults copies config values into flags the user did not set.
func applyDefaults(fs *flag.FlagSet, opt *Options, f config.File) {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
	if f.Window != nil && !given("window", "w") {
		opt.Window = *f.Window
	}
	if f.Length != nil && !given("length", "l") {
		opt.Length = *f.Length
	}
	if f.Info != nil && !given("info") {
		opt.Info = *f.Info
	}
	if f.Quiet != nil && !given("quiet", "q") {
		opt.Quiet = *f.Quiet
	}
}

// Validate checks flag combinations and ranges.
func Validate(o Options) error {
	switch {
	case o.Fasta != "" && o.Concat != "":
		return errors.New("--fasta conflicts with --concat")
	case o.Fasta == "" && o.Concat == "":
		return errors.New("provide --fasta or --concat")
	}
	if o.Output == "" {
		return errors.New("--output is required")
	}
	if o.Window < 1 {
		return errors.New("--window must be ≥ 1")
	}
	if o.Length < 1 {
		return errors.New("--length must be ≥ 1")
	}
	if o.Fasta != "" && o.Length > kmer.MaxNucleotideLength {
		return fmt.Errorf("--length must be ≤ %d with --fasta", kmer.MaxNucleotideLength)
	}
	return nil
}
