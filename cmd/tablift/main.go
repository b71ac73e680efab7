// Package main provides the CLI entry point for tablift.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tablift/tablift/pkg/tablift"
)

var (
	outputPath string
	configPath string
	force      bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablift [input.pdf|directory]",
		Short: "Extract tables from PDF files into xlsx workbooks",
		Long: `tablift detects tabular data in PDF documents and writes it to a styled
xlsx workbook, trying progressively more aggressive extraction strategies
until one of them finds a table. Given a directory it converts every PDF
inside it.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input path with .xlsx extension)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with detection and cleaning thresholds")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := tablift.DefaultOptions()
	opts.Overwrite = force
	if configPath != "" {
		cfg, err := tablift.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Apply(&opts)
	}

	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input not found: %s", input)
	}

	if info.IsDir() {
		if outputPath != "" {
			return errors.New("--output cannot be used with a directory input")
		}
		return runBatch(input, opts)
	}

	res, err := tablift.Convert(input, outputPath, opts)
	if err != nil {
		return err
	}
	log.Info().
		Str("output", res.OutputPath).
		Int("tables", res.TableCount).
		Str("method", string(res.Method)).
		Msg("conversion complete")
	return nil
}

// runBatch converts every PDF in dir. A failure on one file never aborts the
// rest; the summary reports what happened to each.
func runBatch(dir string, opts tablift.Options) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var converted, noTables, skipped, failed int
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		in := filepath.Join(dir, e.Name())
		res, err := tablift.Convert(in, "", opts)
		switch {
		case err == nil:
			converted++
			log.Info().
				Str("input", e.Name()).
				Str("output", filepath.Base(res.OutputPath)).
				Str("method", string(res.Method)).
				Msg("converted")
		case errors.Is(err, tablift.ErrOutputExists):
			skipped++
			log.Warn().Str("input", e.Name()).Msg("output exists, skipping (use --force)")
		case errors.Is(err, tablift.ErrNoTables):
			noTables++
			log.Warn().Str("input", e.Name()).Msg("no tables found")
		default:
			failed++
			log.Error().Str("input", e.Name()).Err(err).Msg("conversion failed")
		}
	}

	log.Info().
		Int("converted", converted).
		Int("noTables", noTables).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("batch finished")

	if converted == 0 && failed > 0 {
		return fmt.Errorf("no files converted (%d failed)", failed)
	}
	return nil
}
