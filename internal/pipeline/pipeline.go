// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"minspace/internal/input"
	"minspace/internal/kmer"
	"minspace/internal/minimizer"
	"minspace/internal/minspace"
)

// Defaults shared by the CLI and tests.
const (
	DefaultWindow = 31
	DefaultLength = 10
)

// Config describes one conversion.
type Config struct {
	Mode      kmer.Mode // ModeSequence reads a framed file, ModeOpaque a raw one
	Input     string    // path or "-" for stdin
	Output    string    // overwritten if it exists
	Window    int       // W: consecutive L-windows per minimizer window
	Length    int       // L: minimizer length
	WriteInfo bool      // also write Output + ".toml"
}

// Result summarizes what was written.
type Result struct {
	Count    int
	MaxValue uint64
	Width    int // payload bytes per token
	Extra    bool
}

// Validate checks parameter ranges before any I/O happens.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input given")
	}
	if c.Output == "" {
		return errors.New("no output given")
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", minimizer.ErrWindow, c.Window)
	}
	switch c.Mode {
	case kmer.ModeSequence:
		if c.Length < 1 || c.Length > kmer.MaxNucleotideLength {
			return fmt.Errorf("%w: %d (sequence mode needs 1..%d)", kmer.ErrLength, c.Length, kmer.MaxNucleotideLength)
		}
	case kmer.ModeOpaque:
		if c.Length < 1 {
			return fmt.Errorf("%w: %d (must be >= 1)", kmer.ErrLength, c.Length)
		}
	default:
		return fmt.Errorf("unknown mode %v", c.Mode)
	}
	return nil
}

// Run performs the conversion described by cfg.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{"path": cfg.Input, "mode": cfg.Mode.String()}).Info("input")

	var (
		res Result
		seq []byte
	)
	switch cfg.Mode {
	case kmer.ModeSequence:
		rec, more, err := input.FirstRecord(cfg.Input)
		if err != nil {
			return Result{}, err
		}
		if more {
			res.Extra = true
			log.WithField("kept", rec.ID).Warn("only 1 input record is supported; skipping subsequent records")
		}
		seq = rec.Seq
	case kmer.ModeOpaque:
		data, err := input.ReadConcat(cfg.Input)
		if err != nil {
			return Result{}, err
		}
		log.WithField("length", len(data)).Info("read concatenated input")
		seq = data
	}

	stream, err := minimizer.Collect(ctx, cfg.Mode, cfg.Length, cfg.Window, seq)
	if err != nil {
		return Result{}, err
	}
	res.Count = stream.Count()
	res.MaxValue = stream.Max
	log.WithFields(logrus.Fields{"count": res.Count, "max_token": res.MaxValue}).Info("minimizer stream")

	// last chance to abort before touching the output path
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	width := minspace.WidthFor(uint64(res.Count), res.MaxValue)
	log.WithFields(logrus.Fields{"bits": width * 8, "path": cfg.Output}).Info("writing output")
	if res.Width, err = minspace.WriteFile(cfg.Output, stream.Values, stream.Max); err != nil {
		return Result{}, err
	}

	sidecar := minspace.InfoPath(cfg.Output)
	if !cfg.WriteInfo {
		// a sidecar from an earlier run would describe the wrong stream
		if err := os.Remove(sidecar); err != nil && !os.IsNotExist(err) {
			return res, errors.Wrap(err, "remove stale info")
		}
		return res, nil
	}
	info := minspace.Info{
		FormatVersion:   minspace.FormatVersion,
		Mode:            cfg.Mode.String(),
		MinimizerLength: cfg.Length,
		Window:          cfg.Window,
		Count:           int64(res.Count),
		MaxValue:        strconv.FormatUint(res.MaxValue, 10),
		Width:           res.Width,
		Input:           cfg.Input,
	}
	if err := minspace.WriteInfo(sidecar, info); err != nil {
		// a failed run leaves no output behind
		_ = os.Remove(cfg.Output)
		return Result{}, err
	}
	return res, nil
}
