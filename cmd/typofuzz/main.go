/*
Package main is the entry point for the typofuzz command-line application.

typofuzz generates typosquatting candidates for a target domain and
optionally resolves whether each candidate is registered. Its primary
functionalities include:
  - Generating candidate domains through two dozen transformations
    (keyboard slips, leetspeak, homoglyph encodings, word confusions,
    TLD games) applied singly or chained in random combinations.
  - Scoring each candidate for visual and cognitive similarity to the
    original and filtering by a similarity threshold.
  - Resolving registration status through a cascade of RDAP, WHOIS,
    and DNS probing, with bounded concurrency and optional rate
    limiting.
  - Streaming results to stdout or a file, optionally filtered to only
    registered or only available domains.

The application uses the Cobra library for command-line interface
structure and flag parsing. It leverages several internal packages:
  - `internal/fuzz`: candidate generation and the transformation registry.
  - `internal/score`: similarity scoring and threshold parsing.
  - `internal/status`: the RDAP -> WHOIS -> DNS resolution cascade.
  - `internal/core`: the concurrent scheduler, batch runner, and pipeline.
  - `internal/metrics`: Prometheus metrics for monitoring throughput.

Graceful shutdown is handled via context cancellation triggered by OS
signals (SIGINT, SIGTERM).
*/
package main

/*
typofuzz — domain typosquatting generator and registration status checker
Copyright (C) 2025  typofuzz contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/typofuzz/typofuzz/internal/core"
	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/fuzz"
	"github.com/typofuzz/typofuzz/internal/metrics"
	"github.com/typofuzz/typofuzz/internal/output"
	"github.com/typofuzz/typofuzz/internal/registry"
	"github.com/typofuzz/typofuzz/internal/score"
	"github.com/typofuzz/typofuzz/internal/status"
)

// Global flags (persistent across commands)
var (
	verbose     bool
	metricsPort int
)

// Flags for the gen and check commands
var (
	transformations []string
	maxResults      int
	combo           bool
	dictionaryPath  string
	minSimilarity   string
	outputPath      string
	onlyRegistered  bool
	onlyAvailable   bool
	checkStatus     bool
	batchSize       int
	concurrency     int
	rateLimit       float64
	seed            int64
	domainsFile     string
)

var rootCmd = &cobra.Command{
	Use:   "typofuzz",
	Short: "typofuzz - A typosquatting domain generator and registration status checker",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if metricsPort > 0 {
			metrics.EnableMetrics()
			if err := metrics.StartMetricsServer(fmt.Sprintf(":%d", metricsPort)); err != nil {
				log.Printf("Failed to start metrics server: %v", err)
			}
		}
	},
}

var genCmd = &cobra.Command{
	Use:   "gen <domain>",
	Short: "Generate typosquatting candidates for a domain",
	Long: `Generates candidate domains by chaining random transformations (default)
or applying each enabled transformation once (--combo=false).
Candidates are scored for similarity to the original; output lines are
"score%, domain, transformation". With --only-registered or
--only-available the registration status of each candidate is resolved
and used to filter the output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), args[0], checkStatus)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <domain>",
	Short: "Generate candidates and resolve their registration status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), args[0], true)
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [domain...]",
	Short: "Resolve the registration status of specific domains",
	Long: `Resolves each domain given as an argument, read from --file, or read
from stdin when no arguments are given. A "-" argument also reads stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.Context(), args)
	},
}

var tldsCmd = &cobra.Command{
	Use:   "tlds",
	Short: "List TLDs with known RDAP endpoints and WHOIS servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("TLDs with RDAP endpoints:")
		for _, tld := range registry.RDAPTLDs() {
			fmt.Printf("  .%s\n", tld)
		}
		fmt.Println("\nTLDs with dedicated WHOIS servers (others fall back to IANA):")
		for _, tld := range registry.WhoisTLDs() {
			fmt.Printf("  .%s\n", tld)
		}
		return nil
	},
}

var transformsCmd = &cobra.Command{
	Use:   "transforms",
	Short: "List available transformations",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fuzz.Names() {
			fmt.Println(name)
		}
		fmt.Println("\nBundles: lookalike (default), system-fault, all")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().IntVar(&metricsPort, "metrics-port", 0, "Prometheus metrics port (0 to disable)")

	for _, cmd := range []*cobra.Command{genCmd, checkCmd} {
		cmd.Flags().StringSliceVarP(&transformations, "transformation", "t", nil, "Transformations or bundles to apply (default: lookalike bundle)")
		cmd.Flags().IntVarP(&maxResults, "max", "n", 100, "Number of candidates to output")
		cmd.Flags().BoolVar(&combo, "combo", true, "Chain random transformations; --combo=false applies each once")
		cmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "Word list file for combosquatting (default: built-in)")
		cmd.Flags().StringVar(&minSimilarity, "min-similarity", "50%", "Minimum similarity threshold (e.g. 73.28% or 0.7328)")
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write results to file instead of stdout (.gz compresses)")
		cmd.Flags().BoolVarP(&onlyRegistered, "only-registered", "r", false, "Only output registered or parked domains (implies status checks)")
		cmd.Flags().BoolVarP(&onlyAvailable, "only-available", "a", false, "Only output available domains (implies status checks)")
		cmd.Flags().IntVar(&batchSize, "batch-size", core.DefaultBatchSize, "Candidates resolved per batch")
		cmd.Flags().IntVarP(&concurrency, "concurrency", "c", core.DefaultConcurrency, "Maximum concurrent status lookups")
		cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "Per-worker lookups per second (0 for unlimited)")
		cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for combo generation (0 for time-based)")
	}
	genCmd.Flags().BoolVar(&checkStatus, "check-status", false, "Resolve registration status of each candidate")

	resolveCmd.Flags().IntVarP(&concurrency, "concurrency", "c", core.DefaultConcurrency, "Maximum concurrent status lookups")
	resolveCmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "Per-worker lookups per second (0 for unlimited)")
	resolveCmd.Flags().StringVarP(&domainsFile, "file", "f", "", "File with one domain per line")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tldsCmd)
	rootCmd.AddCommand(transformsCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		log.Println("Interrupt received, initiating graceful shutdown...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if metricsPort > 0 {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()
		if err := metrics.ShutdownMetricsServer(shutdownCtx); err != nil {
			log.Printf("Error shutting down metrics server: %v", err)
		}
	}
}

// runGenerate is the handler for the gen and check commands.
func runGenerate(ctx context.Context, target string, withStatus bool) error {
	name := domain.Registrable(domain.Normalize(target))
	if !domain.IsValid(name) {
		return fmt.Errorf("invalid domain: %q", target)
	}
	label, tld := domain.Split(name)

	// Status filters require knowing each candidate's status.
	withStatus = withStatus || onlyRegistered || onlyAvailable
	if onlyRegistered && onlyAvailable {
		return fmt.Errorf("--only-registered and --only-available are mutually exclusive")
	}

	enabled, err := fuzz.ParseTransforms(transformations)
	if err != nil {
		return err
	}

	threshold, err := score.ParseThreshold(minSimilarity)
	if err != nil {
		return err
	}

	dict := fuzz.DefaultDictionary()
	if dictionaryPath != "" {
		if dict = fuzz.LoadDictionary(dictionaryPath); len(dict) == 0 {
			return fmt.Errorf("dictionary %q is empty or unreadable", dictionaryPath)
		}
	}

	var src core.Source
	if combo {
		rngSeed := seed
		if rngSeed == 0 {
			rngSeed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(rngSeed))
		src = fuzz.NewComboStream(label, tld, enabled, dict, threshold, 0, rng)
	} else {
		src = fuzz.NewSingleStream(label, tld, enabled, dict, threshold)
	}

	if verbose {
		log.Printf("Generating candidates for %s (label=%s tld=%s, %d transformations, threshold %.2f)",
			name, label, tld, len(enabled), threshold)
	}

	sink, err := openSink(withStatus)
	if err != nil {
		return err
	}
	defer sink.Close()

	if !withStatus {
		return emitWithoutStatus(ctx, src, sink)
	}

	scheduler, err := core.NewScheduler(ctx, concurrency, rateLimit)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer scheduler.Shutdown()

	resolver := status.NewResolver()
	resolver.SetVerbose(verbose)

	filter := core.FilterAny
	if onlyRegistered {
		filter = core.FilterRegistered
	} else if onlyAvailable {
		filter = core.FilterAvailable
	}

	pipeline := &core.Pipeline{
		Runner:    core.NewRunner(scheduler, resolver),
		BatchSize: batchSize,
		Limit:     maxResults,
		Filter:    filter,
	}

	matches := pipeline.Run(ctx, src, name)
	for _, m := range matches {
		if err := sink.WriteMatch(m); err != nil {
			return err
		}
	}

	if verbose {
		log.Printf("Output %d match(es)", len(matches))
	}
	return ctx.Err()
}

// emitWithoutStatus streams candidates straight from the source, no
// resolution involved.
func emitWithoutStatus(ctx context.Context, src core.Source, sink output.Sink) error {
	emitted := 0
	for maxResults <= 0 || emitted < maxResults {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cand, ok := src.Next()
		if !ok {
			break
		}
		if err := sink.WriteMatch(core.Match{Candidate: cand}); err != nil {
			return err
		}
		emitted++
	}

	if verbose {
		log.Printf("Output %d candidate(s)", emitted)
	}
	return nil
}

// runResolve is the handler for the resolve command.
func runResolve(ctx context.Context, args []string) error {
	inputs, err := collectDomains(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no domains to resolve")
	}

	domains := make([]string, 0, len(inputs))
	for _, in := range inputs {
		name := domain.Registrable(domain.Normalize(in))
		if !domain.IsValid(name) {
			return fmt.Errorf("invalid domain: %q", in)
		}
		domains = append(domains, name)
	}

	scheduler, err := core.NewScheduler(ctx, concurrency, rateLimit)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	defer scheduler.Shutdown()

	resolver := status.NewResolver()
	resolver.SetVerbose(verbose)
	runner := core.NewRunner(scheduler, resolver)

	for _, res := range runner.RunBatch(ctx, domains) {
		fmt.Printf("%s: %s\n", res.Domain, res.Outcome)
	}
	return ctx.Err()
}

// collectDomains merges resolve inputs from arguments, --file, and
// stdin. A "-" argument reads stdin; so does an empty argument list
// when no file is given.
func collectDomains(args []string) ([]string, error) {
	var domains []string
	readStdin := len(args) == 0 && domainsFile == ""

	for _, arg := range args {
		if arg == "-" {
			readStdin = true
			continue
		}
		domains = append(domains, arg)
	}

	if domainsFile != "" {
		f, err := os.Open(domainsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open domains file: %w", err)
		}
		defer f.Close()
		lines, err := scanDomains(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read domains file: %w", err)
		}
		domains = append(domains, lines...)
	}

	if readStdin {
		lines, err := scanDomains(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		domains = append(domains, lines...)
	}

	return domains, nil
}

func scanDomains(r io.Reader) ([]string, error) {
	var domains []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	return domains, scanner.Err()
}

func openSink(withStatus bool) (output.Sink, error) {
	if outputPath == "" {
		return output.NewConsoleSink(os.Stdout, withStatus), nil
	}
	sink, err := output.NewFileSink(outputPath, withStatus)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Writing results to %s", outputPath)
	}
	return sink, nil
}
