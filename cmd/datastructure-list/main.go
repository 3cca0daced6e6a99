package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	pflag "github.com/spf13/pflag"

	"github.com/ArturiaGit/DataStructure/pkg/logging"
	"github.com/ArturiaGit/DataStructure/pkg/metrics"
	"github.com/ArturiaGit/DataStructure/pkg/render"
	"github.com/ArturiaGit/DataStructure/pkg/script"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = render.FormatText

func main() {
	// Define command line flags.
	var scriptFile = pflag.StringP("script", "s", "", "YAML script of list operations to run")
	var initial = pflag.StringSlice("init", nil, "Initial values, comma separated (replaces the script's initial values)")
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (TEXT, JSON, YAML, ASCIITREE, DOT)")
	var trim = pflag.Int("trim", 0, "Trim values for display purposes")
	var continueOnError = pflag.Bool("continue-on-error", false, "Keep running after an unexpected error")
	var logLevel = pflag.String("log-level", logging.WarnLevel, "Log level (debug, info, warn, error)")
	var showMetrics = pflag.Bool("metrics", false, "Print operation counters to stderr")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRuns a script of operations against a singly linked list.\n")
		fmt.Fprintf(os.Stderr, "Prints the final list to stdout and a step report to stderr.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Handle version flag.
	if *version {
		fmt.Printf("datastructure-list version %s\n", Version)
		os.Exit(0)
	}

	// Handle help flag.
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	// Reject any positional arguments.
	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --script and --init instead.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	logger, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load the script, or start from an empty one.
	s := &script.Script{Name: "init"}
	if *scriptFile != "" {
		s, err = script.LoadScript(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script file '%s': %v\n", *scriptFile, err)
			os.Exit(1)
		}
	}

	// Flags override the script's options.
	if pflag.CommandLine.Changed("init") {
		s.Initial = make([]any, len(*initial))
		for i, v := range *initial {
			s.Initial[i] = v
		}
	}
	if pflag.CommandLine.Changed("format") || s.Options.Format == "" {
		s.Options.Format = *format
	}
	if pflag.CommandLine.Changed("trim") {
		s.Options.TrimValues = *trim
	}
	if *continueOnError {
		s.Options.ContinueOnError = true
	}

	printFunc, err := render.PickPrintFunc(s.Options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector("datastructure", reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report, err := script.NewRunner(logger, collector).Run(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
		os.Exit(1)
	}

	if err := printFunc(report.Values, os.Stdout, &s.Options.Options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	printReport(report)

	if *showMetrics {
		snap, err := metrics.Snapshot(reg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error gathering metrics: %v\n", err)
			os.Exit(1)
		}
		keys := make([]string, 0, len(snap))
		for key := range snap {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(os.Stderr, "%s %v\n", key, snap[key])
		}
	}

	if report.Failures > 0 {
		os.Exit(1)
	}
}

func printReport(report *script.Report) {
	for _, step := range report.Steps {
		status := "ok"
		if !step.Passed() {
			status = "FAILED: " + step.Failure
		} else if step.Err != nil {
			status = "ok (" + metrics.Outcome(step.Err) + ")"
		}
		if step.Result != nil {
			fmt.Fprintf(os.Stderr, "step %d %s -> %v: %s\n", step.Index, step.Name, step.Result, status)
		} else {
			fmt.Fprintf(os.Stderr, "step %d %s: %s\n", step.Index, step.Name, status)
		}
	}
	if report.Stopped {
		fmt.Fprintf(os.Stderr, "run %s stopped early\n", report.RunID)
	}
	fmt.Fprintf(os.Stderr, "run %s: %d steps, %d failures, length %d\n",
		report.RunID, len(report.Steps), report.Failures, report.Length)
}
