package report

import "io"

// ShowHelp prints usage information for the report tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Campus Placement Report
=======================

Prints the placement dashboard as terminal tables.

Usage:
  go run cmd/report/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -offline
        Compute the report locally instead of calling the service
  -seed string
        Seed file for -offline (default: embedded seed)
  -top int
        Number of top performers to list (default 10)
  -timeout duration
        HTTP request timeout (default 10s)
  -dataset string
        Dataset to replace before reporting (requires -file)
  -file string
        JSON array payload for -dataset
  -no-color
        Disable coloured headings
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Report from a running service
  go run cmd/report/main.go -url http://localhost:9080

  # Report from a seed file without a server
  go run cmd/report/main.go -offline -seed data/seed.yaml -top 5

  # Replace students, then report
  go run cmd/report/main.go -dataset students -file students.json
`)
}
