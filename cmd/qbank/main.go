// Package main provides the CLI entry point for qbank.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ukaji3/qbank-go/internal/config"
	"github.com/ukaji3/qbank-go/pkg/qbank"
	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/output"
)

// errReported marks failures already explained on stdout.
var errReported = errors.New("reported")

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qbank",
		Short: "Convert question-bank spreadsheets to JSON",
		Long: `qbank reads annotated question-bank spreadsheets (xlsx or csv) and writes
either one JSON record per question or a merged chapter catalogue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("sheet", "", "Sheet to read (default: mapping sheet, then "+qbank.DefaultSheet+")")
	pf.String("mapping", "", "YAML field mapping file (default: built-in mapping)")
	pf.StringP("output", "o", "", "Output file path (default: <input name>.json in --output-dir)")
	pf.String("output-dir", ".", "Directory for the output file")
	pf.String("encoding", "utf-8", "CSV input encoding: utf-8, gbk, gb18030")
	pf.BoolP("verbose", "v", false, "Log progress to stderr")
	pf.Bool("dump", false, "Dump the converted result to stderr")

	rootCmd.AddCommand(
		newConvertCommand(qbank.VariantQuestions, "Convert each row into a question record"),
		newConvertCommand(qbank.VariantCatalogue, "Merge chapter, section and lesson columns into a catalogue"),
		newMappingCommand(),
	)
	return rootCmd
}

func newConvertCommand(variant qbank.Variant, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(variant) + " [input.xlsx|input.csv]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, variant)
		},
	}
}

func run(cmd *cobra.Command, args []string, variant qbank.Variant) error {
	cfg, err := config.NewConfig(cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg.Verbose)

	inputPath := cfg.Input
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return fmt.Errorf("no input file: pass a path or set %s_INPUT", config.EnvPrefix)
	}

	opts := qbank.Options{
		Variant:  variant,
		Sheet:    cfg.Sheet,
		Encoding: cfg.Encoding,
	}
	if cfg.Mapping != "" {
		m, err := mapping.LoadFile(cfg.Mapping)
		if err != nil {
			return err
		}
		opts.Mapping = m
		log.Printf("[qbank] using mapping %s", cfg.Mapping)
	}

	sheet := opts.ResolveSheet()
	log.Printf("[qbank] converting %s (sheet %q, %s)", inputPath, sheet, variant)

	result, err := qbank.Convert(inputPath, opts)
	if errors.Is(err, qbank.ErrSheetNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "error: sheet %q not found in %s\n", sheet, inputPath)
		var srcErr *qbank.SourceError
		if errors.As(err, &srcErr) && len(srcErr.Sheets) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "available sheets: %s\n", strings.Join(srcErr.Sheets, ", "))
		}
		return errReported
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	log.Printf("[qbank] read %d rows from sheet %q", result.RowCount, result.Sheet)

	if cfg.Dump {
		spew.Fdump(os.Stderr, result)
	}

	if result.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "no data converted, nothing written")
		return nil
	}

	outPath := cfg.Output
	if outPath == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outPath = filepath.Join(cfg.OutputDir, output.FileName(inputPath))
	}

	if err := output.WriteResult(result, outPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "conversion complete: data saved to %s\n", outPath)
	return nil
}

func setupLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}
