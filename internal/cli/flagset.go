package cli

import (
	"flag"
	"fmt"
	"io"

	"minspace/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the minspace usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name, fs) }
	return fs
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
	fmt.Fprintf(out, "%s – minimizer-space (minspace) token streams\n\n", name)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s -f ref.fa.gz -o ref.min [-w 31] [-l 10]\n", name)
	fmt.Fprintf(out, "  %s -c text.bin -o text.min\n", name)

	fmt.Fprintln(out, "\nInput (exactly one):")
	fmt.Fprintln(out, "  -f, --fasta file            FASTA/FASTQ file, first record only ('-' for STDIN)")
	fmt.Fprintln(out, "  -c, --concat file           raw byte file, no reverse complement ('-' for STDIN)")

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintln(out, "  -o, --output file           minspace output file (overwritten) [*]")
	fmt.Fprintf(out, "      --info                  also write <output>.toml describing the run [%s]\n", def("info"))

	fmt.Fprintln(out, "\nMinimizers:")
	fmt.Fprintf(out, "  -w, --window int            window length W in L-windows [%s]\n", def("window"))
	fmt.Fprintf(out, "  -l, --length int            minimizer length L (sequence mode: 1..32) [%s]\n", def("length"))
	fmt.Fprintln(out, "      --config file           TOML defaults (window, length, info, quiet)")

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 suppress informational logs [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               print version and exit")
	fmt.Fprintln(out, "  -h, --help                  show this help and exit")
}
