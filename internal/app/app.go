// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"minspace/internal/cli"
	"minspace/internal/cmdutil"
	"minspace/internal/kmer"
	"minspace/internal/pipeline"
	"minspace/internal/version"
	"minspace/internal/writers"
)

// flush writes buffered stdout and maps the outcome to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("minspace")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "minspace version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	cfg := pipeline.Config{
		Mode:      kmer.ModeSequence,
		Input:     opts.Fasta,
		Output:    opts.Output,
		Window:    opts.Window,
		Length:    opts.Length,
		WriteInfo: opts.Info,
	}
	if opts.Concat != "" {
		cfg.Mode = kmer.ModeOpaque
		cfg.Input = opts.Concat
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	res, err := pipeline.Run(parent, cfg, log)
	if err != nil {
		if errors.Is(err, context.Canceled) || parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	log.WithFields(logrus.Fields{"output": cfg.Output, "minimizers": res.Count, "max": res.MaxValue, "width": res.Width}).Info("done")
	return flush(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
