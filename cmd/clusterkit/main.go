// Command clusterkit clusters a text dataset with a selectable search
// strategy and writes the resulting centroids and partition next to it.
//
//	clusterkit -data points.txt -k 15 -strategy swap -swaps 5000
//	clusterkit -config run.toml
//
// Flags override values from the optional TOML config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/persistence"
)

type config struct {
	Data        string `toml:"data"`
	K           int    `toml:"k"`
	Strategy    string `toml:"strategy"`
	Repeats     int    `toml:"repeats"`
	Swaps       int    `toml:"swaps"`
	MaxIter     int    `toml:"max_iterations"`
	Seed        int64  `toml:"seed"`
	Parallelism int    `toml:"parallelism"`
	OutDir      string `toml:"out_dir"`
	JSONLog     bool   `toml:"json_log"`
	Verbose     bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Strategy:    clusterkit.StrategyRestart,
		Repeats:     100,
		Swaps:       5000,
		MaxIter:     clusterkit.DefaultMaxIterations,
		Parallelism: 1,
		OutDir:      ".",
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "clusterkit:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	if cfg.Data == "" {
		return fmt.Errorf("no dataset given (-data)")
	}
	if cfg.K <= 0 {
		return fmt.Errorf("no cluster count given (-k)")
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var logger *clusterkit.Logger
	if cfg.JSONLog {
		logger = clusterkit.NewJSONLogger(level)
	} else {
		logger = clusterkit.NewTextLogger(level)
	}

	runID := uuid.NewString()[:8]
	log := logger.With("run_id", runID)

	ds, err := persistence.Open(cfg.Data)
	if err != nil {
		return err
	}

	log.Info("dataset loaded",
		"path", cfg.Data,
		"points", ds.Len(),
		"dimension", ds.Dim(),
	)

	opts := []clusterkit.Option{
		clusterkit.WithLogger(logger),
		clusterkit.WithMaxIterations(cfg.MaxIter),
		clusterkit.WithParallelism(cfg.Parallelism),
	}
	if cfg.Seed != 0 {
		opts = append(opts, clusterkit.WithSeed(cfg.Seed))
	}

	ck, err := clusterkit.New(ds, cfg.K, opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	start := time.Now()

	var res *clusterkit.Result

	switch cfg.Strategy {
	case clusterkit.StrategyLloyd:
		res, err = ck.Lloyd(ctx, ck.InitRandom())
	case clusterkit.StrategyRestart:
		res, err = ck.Restart(ctx, cfg.Repeats)
	case clusterkit.StrategySwap:
		res, err = ck.Swap(ctx, ck.InitRandom(), cfg.Swaps)
	case clusterkit.StrategyBisect:
		res, err = ck.Bisect(ctx)
	default:
		return fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
	if err != nil {
		return err
	}

	log.Info("clustering finished",
		"strategy", cfg.Strategy,
		"sse", res.SSE,
		"iterations", res.Iterations,
		"stop", res.Stop.String(),
		"duration", time.Since(start),
	)

	centroidsPath := filepath.Join(cfg.OutDir, fmt.Sprintf("centroids-%s.txt", runID))
	if err := persistence.SaveCentroids(centroidsPath, res.Centroids); err != nil {
		return err
	}

	partitionPath := filepath.Join(cfg.OutDir, fmt.Sprintf("partition-%s.txt", runID))
	if err := persistence.SavePartition(partitionPath, res.Partition); err != nil {
		return err
	}

	log.Info("results written",
		"centroids", centroidsPath,
		"partition", partitionPath,
	)

	return nil
}

// parseArgs loads the optional TOML config and overlays explicitly set
// flags on top of it.
func parseArgs(args []string) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("clusterkit", flag.ContinueOnError)

	configPath := fs.String("config", "", "TOML config file")
	fs.String("data", cfg.Data, "dataset file (.txt, .zst, .lz4)")
	fs.Int("k", cfg.K, "number of clusters")
	fs.String("strategy", cfg.Strategy, "search strategy: lloyd, restart, swap, bisect")
	fs.Int("repeats", cfg.Repeats, "restart trials")
	fs.Int("swaps", cfg.Swaps, "swap rounds")
	fs.Int("maxiter", cfg.MaxIter, "Lloyd iteration cap")
	fs.Int64("seed", cfg.Seed, "random seed (0 = wall clock)")
	fs.Int("parallel", cfg.Parallelism, "worker goroutines")
	fs.String("out", cfg.OutDir, "output directory")
	fs.Bool("json", cfg.JSONLog, "JSON log output")
	fs.Bool("v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return config{}, fmt.Errorf("load config: %w", err)
		}
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		val := f.Value.String()
		switch f.Name {
		case "data":
			cfg.Data = val
		case "k":
			cfg.K, visitErr = strconv.Atoi(val)
		case "strategy":
			cfg.Strategy = val
		case "repeats":
			cfg.Repeats, visitErr = strconv.Atoi(val)
		case "swaps":
			cfg.Swaps, visitErr = strconv.Atoi(val)
		case "maxiter":
			cfg.MaxIter, visitErr = strconv.Atoi(val)
		case "seed":
			cfg.Seed, visitErr = strconv.ParseInt(val, 10, 64)
		case "parallel":
			cfg.Parallelism, visitErr = strconv.Atoi(val)
		case "out":
			cfg.OutDir = val
		case "json":
			cfg.JSONLog = val == "true"
		case "v":
			cfg.Verbose = val == "true"
		}
	})
	if visitErr != nil {
		return config{}, visitErr
	}

	return cfg, nil
}
