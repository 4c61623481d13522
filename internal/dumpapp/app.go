// internal/dumpapp/app.go
package dumpapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/kmers"

	"minspace/internal/cmdutil"
	"minspace/internal/kmer"
	"minspace/internal/minspace"
	"minspace/internal/version"
	"minspace/internal/writers"
	"minspace/pkg/api"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := newFlagSet("minspace-dump")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	}

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(0)
		}
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "minspace-dump version %s\n", version.Version)
		return flush(0)
	}

	for _, path := range opts.Files {
		if ctx.Err() != nil {
			return 130
		}
		d, err := load(path, opts, stderr)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return flush(3)
		}
		if err := writers.Write(opts.Format, outw, d); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return flush(0)
}

// load reads one minspace file and its sidecar into the wire shape.
func load(path string, opts Options, stderr io.Writer) (api.MinspaceV1, error) {
	d := api.MinspaceV1{File: path}

	info, err := minspace.ReadInfo(minspace.InfoPath(path))
	switch {
	case err == nil:
		d.Mode, d.MinimizerLength, d.Window = info.Mode, info.MinimizerLength, info.Window
	case !os.IsNotExist(err):
		cmdutil.Warnf(stderr, opts.Quiet, "ignoring %s: %v", minspace.InfoPath(path), err)
	}

	var (
		h      minspace.Header
		values []uint64
	)
	if opts.HeaderOnly {
		h, err = minspace.ReadHeader(path)
	} else {
		h, values, err = minspace.ReadFile(path)
	}
	if err != nil {
		return d, err
	}
	d.Count, d.MaxValue, d.Width = h.Count, h.MaxValue, h.Width()

	if opts.Head > 0 && len(values) > opts.Head {
		values = values[:opts.Head]
		d.Truncated = true
	}

	k := opts.Decode
	if k == 0 && d.Mode != "" {
		mode, err := kmer.ParseMode(d.Mode)
		switch {
		case err != nil:
			cmdutil.Warnf(stderr, opts.Quiet, "%s: %v", minspace.InfoPath(path), err)
		case mode == kmer.ModeSequence:
			k = d.MinimizerLength
		}
	}
	d.Tokens = make([]api.TokenV1, len(values))
	for i, v := range values {
		d.Tokens[i] = api.TokenV1{Index: i, Value: v, Kmer: decode(v, k)}
	}
	return d, nil
}

// decode renders v as a K-mer, or "" when k is unset or v does not fit.
func decode(v uint64, k int) string {
	if k <= 0 || k > 32 || (k < 32 && v>>(2*uint(k)) != 0) {
		return ""
	}
	return string(kmers.Decode(v, k))
}
