// Package main implements the logsift executable: it enumerates files
// beneath a root directory, filters them by age, and prints one record per
// matching file. Diagnostics go to stderr, records to stdout or a file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logsift/internal/config"
	"logsift/internal/logging"
	"logsift/internal/progress"
	"logsift/internal/report"
	"logsift/internal/scan"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "logsift [flags] PATH",
	Short: "Find log files by age",
	Long: `logsift enumerates files beneath PATH and filters them by age in days,
printing one record per match. Use --older-than and --younger-than (in
days, both inclusive) to bound the age, computed against the file's
modification time or, with --creation-date, its creation time.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// scanFlags holds the flags for the scan command.
type scanFlags struct {
	recurse      bool
	olderThan    int
	youngerThan  int
	creationDate bool
	pattern      string
	sort         bool
	jobs         int
	output       string
	format       string
	configPath   string
	logLevel     string
}

var scanOpts = &scanFlags{}

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print version information and exit")

	rootCmd.Flags().BoolVarP(&scanOpts.recurse, "recurse", "r", false, "Scan nested subdirectories")
	rootCmd.Flags().IntVar(&scanOpts.olderThan, "older-than", 0, "Only files at least this many days old")
	rootCmd.Flags().IntVar(&scanOpts.youngerThan, "younger-than", 0, "Only files at most this many days old")
	rootCmd.Flags().BoolVar(&scanOpts.creationDate, "creation-date", false, "Age files by creation time instead of modification time")
	rootCmd.Flags().StringVarP(&scanOpts.pattern, "pattern", "p", "*", "Glob matched against file names")
	rootCmd.Flags().BoolVar(&scanOpts.sort, "sort", false, "Sort output by path instead of streaming in walk order")
	rootCmd.Flags().IntVarP(&scanOpts.jobs, "jobs", "j", 0, "Read file metadata with this many concurrent workers")
	rootCmd.Flags().StringVarP(&scanOpts.output, "output", "o", "", "Write records to a file instead of stdout (.zst compresses)")
	rootCmd.Flags().StringVarP(&scanOpts.format, "format", "f", "", "Output format: text or json")
	rootCmd.Flags().StringVar(&scanOpts.configPath, "config", "", "Path to a logsift.yaml config file")
	rootCmd.Flags().StringVar(&scanOpts.logLevel, "log-level", "", "Diagnostics level: debug, info, warn, or error")
}

func runScan(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Printf("logsift v%s\n", version)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one PATH argument")
	}

	cfg := config.Default()
	if scanOpts.configPath != "" {
		var err error
		cfg, err = config.Load(scanOpts.configPath)
		if err != nil {
			return err
		}
	}
	applyConfig(cmd, &cfg)

	logger := logging.NewLogger(cfg.LogLevel)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	req := scan.Request{
		Root:            args[0],
		Pattern:         cfg.Pattern,
		Recurse:         cfg.Recurse,
		UseCreationDate: cfg.UseCreationDate,
		StatWorkers:     cfg.Jobs,
	}
	if cmd.Flags().Changed("older-than") {
		req.OlderThanDays = &scanOpts.olderThan
	}
	if cmd.Flags().Changed("younger-than") {
		req.YoungerThanDays = &scanOpts.youngerThan
	}

	var out io.Writer = os.Stdout
	if scanOpts.output != "" {
		f, err := report.CreateFile(scanOpts.output)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		defer f.Close()
		out = f
	}
	writer := report.NewWriter(out, format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := &scan.Scanner{
		Logger:   logger.WithRoot(args[0]).Logger,
		Progress: &progress.LogTracker{Logger: logger.Logger},
	}

	if err := writeRecords(ctx, scanner, req, writer, cfg.Sort); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}

// applyConfig overlays explicitly set flags onto the config-file defaults.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("pattern") || cfg.Pattern == "" {
		cfg.Pattern = scanOpts.pattern
	}
	if cmd.Flags().Changed("recurse") {
		cfg.Recurse = scanOpts.recurse
	}
	if cmd.Flags().Changed("creation-date") {
		cfg.UseCreationDate = scanOpts.creationDate
	}
	if cmd.Flags().Changed("sort") {
		cfg.Sort = scanOpts.sort
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = scanOpts.jobs
	}
	if cmd.Flags().Changed("format") || cfg.Format == "" {
		cfg.Format = scanOpts.format
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = scanOpts.logLevel
	}
}

func writeRecords(ctx context.Context, scanner *scan.Scanner, req scan.Request, writer *report.Writer, sorted bool) error {
	seq := scanner.Scan(ctx, req)

	if sorted {
		records, err := scan.CollectSorted(seq)
		for _, rec := range records {
			if werr := writer.Write(rec); werr != nil {
				return werr
			}
		}
		return err
	}

	for rec, err := range seq {
		if err != nil {
			return err
		}
		if werr := writer.Write(rec); werr != nil {
			return werr
		}
	}
	return nil
}
