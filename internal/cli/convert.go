package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdf-hext/internal/config"
	"github.com/geoknoesis/rdf-hext/rdf"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// convertOpts holds the command-line flags for the convert command.
// Flags that were not set leave the config file values in place.
type convertOpts struct {
	format   string
	output   string
	encoding string
	base     string
	escape   bool
}

// apply overlays explicitly set flags onto cfg.
func (o *convertOpts) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Input.Format = o.format
	}
	if flags.Changed("base") {
		cfg.Input.Base = o.base
	}
	if flags.Changed("output") {
		cfg.Output.Path = o.output
	}
	if flags.Changed("encoding") {
		cfg.Output.Encoding = o.encoding
	}
	if flags.Changed("escape") {
		cfg.Output.Escape = o.escape
	}
	return cfg, cfg.Validate()
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert RDF documents to Hextuples",
		Long: `Convert N-Triples, N-Quads or JSON-LD documents to Hextuples.

Inputs are read in order and written to a single output. With no file, or
with "-", standard input is read. The input format comes from --format, the
file extension, or a look at the first few kilobytes, in that order.

Examples:
  hext convert data.nq                      # stdout
  hext convert -o data.hext a.nt b.jsonld   # several inputs, one output
  cat data.nt | hext convert -f nt          # stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.apply(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}
			return runConvert(cmd.Context(), cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: nt, nq or jsonld (default: detect)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "output encoding; only utf-8 is produced")
	cmd.Flags().StringVar(&opts.base, "base", "", "base IRI for resolving JSON-LD input")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "JSON-escape quoted fields")

	return cmd
}

// runConvert loads every input and streams its statements to one output.
func runConvert(ctx context.Context, cfg config.Config, inputs []string, stdin io.Reader, stdout io.Writer) (err error) {
	logger := loggerFromContext(ctx)
	start := time.Now()

	out := stdout
	if cfg.Output.Path != "" {
		f, createErr := os.Create(cfg.Output.Path)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	buffered := bufio.NewWriter(out)
	enc := rdf.NewHextuplesWriter(buffered, append(cfg.WriteOptions(), rdf.OptLogger(logger))...)

	for _, name := range inputs {
		if err := convertOne(ctx, logger, cfg, name, stdin, enc); err != nil {
			// Records from earlier inputs are kept.
			if ferr := flushOutput(buffered, enc); ferr != nil {
				return errors.Join(err, ferr)
			}
			return err
		}
	}
	if err := flushOutput(buffered, enc); err != nil {
		return err
	}
	logger.Info("Converted", "inputs", len(inputs), "records", enc.Records(), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// flushOutput closes the record writer and flushes the buffered output.
func flushOutput(buffered *bufio.Writer, enc *rdf.HextuplesWriter) error {
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func convertOne(ctx context.Context, logger *log.Logger, cfg config.Config, name string, stdin io.Reader, enc *rdf.HextuplesWriter) error {
	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	format, r, err := inputFormat(cfg, name, r)
	if err != nil {
		return err
	}

	logger.Debug("Loading", "input", name, "format", format)
	src, err := rdf.Load(r, format, append(cfg.LoadOptions(), rdf.OptContext(ctx))...)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	before := enc.Records()
	err = rdf.EnumerateContexts(src, func(g rdf.Term, t rdf.Triple) error {
		return enc.Write(t.ToQuadInGraph(g))
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	logger.Debug("Wrote", "input", name, "records", enc.Records()-before)
	return nil
}

// inputFormat picks the format from config/flags, then from the file
// extension, then by sniffing the content. The returned reader must be used
// in place of r.
func inputFormat(cfg config.Config, name string, r io.Reader) (rdf.Format, io.Reader, error) {
	if cfg.Input.Format != "" {
		format, ok := rdf.ParseFormat(cfg.Input.Format)
		if !ok || format == rdf.FormatHextuples {
			return "", r, fmt.Errorf("input format %q: %w", cfg.Input.Format, rdf.ErrUnsupportedFormat)
		}
		return format, r, nil
	}
	if name != stdinName {
		if format, ok := rdf.FormatFromPath(name); ok && format != rdf.FormatHextuples {
			return format, r, nil
		}
	}
	format, r, err := rdf.DetectFormat(r)
	switch {
	case errors.Is(err, rdf.ErrUnsupportedFormat):
		return "", r, fmt.Errorf("cannot infer format of %s, use --format: %w", name, err)
	case err != nil:
		return "", r, fmt.Errorf("read %s: %w", name, err)
	}
	return format, r, nil
}
