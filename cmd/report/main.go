package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/campus/internal/report"
	"github.com/okian/campus/pkg/logger"
)

// Default configuration constants.
const (
	defaultTopN          = 10
	defaultTimeout       = 10 * time.Second
	defaultReportTimeout = time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		offline     = flag.Bool("offline", false, "Compute the report locally instead of calling the service")
		seedPath    = flag.String("seed", "", "Seed file for -offline (default: embedded seed)")
		topN        = flag.Int("top", defaultTopN, "Number of top performers to list")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		dataset     = flag.String("dataset", "", "Dataset to replace before reporting")
		datasetFile = flag.String("file", "", "JSON array payload for -dataset")
		noColor     = flag.Bool("no-color", false, "Disable coloured headings")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		report.ShowHelp(os.Stdout)
		return
	}

	// Logs go to stderr so the tables stay clean on stdout.
	if err := logger.InitWith(os.Stderr, logger.FormatText); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}
	_ = logger.SetLevelString(level)

	ctx, cancel := context.WithTimeout(context.Background(), defaultReportTimeout)
	defer cancel()

	config := &report.Config{
		BaseURL:     *baseURL,
		SeedPath:    *seedPath,
		Offline:     *offline,
		TopN:        *topN,
		Timeout:     *timeout,
		Dataset:     *dataset,
		DatasetFile: *datasetFile,
		NoColor:     *noColor,
	}

	if err := report.Run(ctx, config, os.Stdout); err != nil {
		os.Stderr.WriteString("Report failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
