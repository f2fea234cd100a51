package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/matthiaskaeding/setcover/pkg/app"
	"github.com/matthiaskaeding/setcover/pkg/core/cover"
	"github.com/matthiaskaeding/setcover/pkg/core/index"
	"github.com/matthiaskaeding/setcover/pkg/logging"
)

func main() {
	cliArgs := app.ParseCLIArgs()

	// 1. Setup logging first.
	mainLogger := logging.NewLogger()
	if err := os.MkdirAll(cliArgs.LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFileName := fmt.Sprintf("setcover-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	logFile, err := os.OpenFile(filepath.Join(cliArgs.LogDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	mainLogger.SetWriter(logFile)
	logging.SetDefault(mainLogger)
	if cliArgs.Verbose {
		mainLogger.SetDebug(true)
	}

	runID := uuid.NewString()
	logging.Infof("Main: Run %s starting.", runID)

	if err := run(cliArgs); err != nil {
		logging.Errorf("Main: Run %s failed: %v", runID, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Infof("Main: Run %s finished.", runID)
}

func run(cliArgs *app.CLIArgs) error {
	opts := cover.Options{
		Variant:       cover.Variant(cliArgs.Variant),
		MaxIterations: cliArgs.MaxIterations,
	}

	if cliArgs.Scenario != "" {
		return runScenario(cliArgs.Scenario, opts)
	}

	var (
		pairs                []index.Pair
		numSets, numElements int
		err                  error
	)
	if cliArgs.InputCSV != "" {
		logging.Infof("Main: Loading dataset from %s.", cliArgs.InputCSV)
		pairs, numSets, numElements, err = loadCSV(cliArgs.InputCSV)
		if err != nil {
			return err
		}
	} else {
		logging.Infof("Main: Generating synthetic dataset (%s sets, %s elements, %s rows, seed %d).",
			humanize.Comma(int64(cliArgs.NumSets)), humanize.Comma(int64(cliArgs.NumElements)), humanize.Comma(int64(cliArgs.NumRows)), cliArgs.Seed)
		pairs = generate(cliArgs.NumSets, cliArgs.NumElements, cliArgs.NumRows, cliArgs.Seed)
		numSets, numElements = cliArgs.NumSets, cliArgs.NumElements
	}

	buildStart := time.Now()
	idx, err := index.BuildParallel(context.Background(), pairs, numSets, numElements, cliArgs.Workers)
	if err != nil {
		return err
	}
	buildTime := time.Since(buildStart)

	solveStart := time.Now()
	result, err := cover.Solve(idx, opts)
	if err != nil {
		return err
	}
	solveTime := time.Since(solveStart)

	if !cover.Verify(idx, result) {
		return fmt.Errorf("coverage verification failed for variant %q", opts.Variant)
	}

	fmt.Printf("Rows:      %s (%s sets, %s elements)\n",
		humanize.Comma(int64(len(pairs))), humanize.Comma(int64(numSets)), humanize.Comma(int64(numElements)))
	fmt.Printf("Cover:     %s sets (%s)\n", humanize.Comma(int64(len(result.Sets))), result.Status)
	fmt.Printf("Covered:   %s elements, %s uncovered\n",
		humanize.Comma(int64(result.CoveredCount)), humanize.Comma(int64(result.UncoveredCount)))
	fmt.Printf("Index:     %s\n", buildTime.Round(time.Millisecond))
	fmt.Printf("Solve:     %s\n", solveTime.Round(time.Millisecond))
	return nil
}

func runScenario(path string, opts cover.Options) error {
	scenario, err := loadScenario(path)
	if err != nil {
		return err
	}
	logging.Infof("Main: Solving scenario %s with %d labeled sets.", path, len(scenario))

	result, err := cover.SolveLabeled(scenario, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Cover: %d sets (%s)\n", len(result.Sets), result.Dense.Status)
	for i, label := range result.Sets {
		fmt.Printf("%3d. %s (+%d elements)\n", i+1, label, result.Dense.Steps[i].NewlyCovered)
	}
	if result.Dense.UncoveredCount > 0 {
		fmt.Printf("Uncovered elements remaining: %d\n", result.Dense.UncoveredCount)
	}
	return nil
}
