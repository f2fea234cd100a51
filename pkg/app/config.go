package app

import "flag"

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	InputCSV      string
	Scenario      string
	Variant       string
	MaxIterations int
	Workers       int
	Verbose       bool
	LogDir        string

	// Synthetic dataset parameters, used when no input file is given.
	NumSets     int
	NumElements int
	NumRows     int
	Seed        int64
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.StringVar(&args.InputCSV, "input", "", "Path to a long-form set,element CSV file.")
	flag.StringVar(&args.Scenario, "scenario", "", "Path to a JSON5 scenario file mapping set labels to element lists.")
	flag.StringVar(&args.Variant, "variant", "greedy-standard", "Algorithm variant: greedy-standard, greedy-bitvec or greedy-textbook.")
	flag.IntVar(&args.MaxIterations, "max-iterations", 0, "Cap the number of selections (0 = unlimited).")
	flag.IntVar(&args.Workers, "workers", 0, "Workers for the parallel index build (0 = GOMAXPROCS).")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (debug) logging.")
	flag.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	flag.IntVar(&args.NumSets, "num-sets", 100_000, "Synthetic dataset: number of candidate sets.")
	flag.IntVar(&args.NumElements, "num-elements", 2_000, "Synthetic dataset: size of the universe.")
	flag.IntVar(&args.NumRows, "num-rows", 10_000_000, "Synthetic dataset: number of membership rows.")
	flag.Int64Var(&args.Seed, "seed", 333, "Synthetic dataset: random seed.")
	flag.Parse()

	return args
}
