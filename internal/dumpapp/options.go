// internal/dumpapp/options.go
package dumpapp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"minspace/internal/cliutil"
	"minspace/internal/version"
	"minspace/internal/writers"
)

// Options holds the minspace-dump flags.
type Options struct {
	Files      []string
	Format     string
	Head       int
	Decode     int
	HeaderOnly bool
	Quiet      bool
	Version    bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name) }
	return fs
}

func usage(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – print minspace token streams\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s [options] FILE...   (globs are expanded)\n", name)
	fmt.Fprintln(out, "\nOptions:")
	fmt.Fprintf(out, "      --format string         output format: %s [text]\n", strings.Join(writers.Formats(), " | "))
	fmt.Fprintln(out, "  -n, --head int              print at most N tokens per file, 0 = all [0]")
	fmt.Fprintln(out, "  -k, --decode int            render tokens as K-mers (default: L from the .toml sidecar)")
	fmt.Fprintln(out, "      --header-only           print headers only")
	fmt.Fprintln(out, "  -q, --quiet                 suppress warnings")
	fmt.Fprintln(out, "  -v, --version               print version and exit")
	fmt.Fprintln(out, "  -h, --help                  show this help and exit")
}

// ParseArgs accepts flags and file arguments in any order.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Format, "format", "text", "output format")
	fs.IntVar(&opt.Head, "head", 0, "tokens per file, 0 = all")
	fs.IntVar(&opt.Head, "n", 0, "alias of --head")
	fs.IntVar(&opt.Decode, "decode", 0, "K for K-mer rendering")
	fs.IntVar(&opt.Decode, "k", 0, "alias of --decode")
	fs.BoolVar(&opt.HeaderOnly, "header-only", false, "print headers only")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files

	switch {
	case len(opt.Files) == 0:
		return opt, errors.New("no input files")
	case !writers.Known(opt.Format):
		return opt, fmt.Errorf("--format must be one of: %s", strings.Join(writers.Formats(), ", "))
	case opt.Head < 0:
		return opt, errors.New("--head must be ≥ 0")
	case opt.Decode < 0 || opt.Decode > 32:
		return opt, errors.New("--decode must be ≤ 32")
	}
	return opt, nil
}
