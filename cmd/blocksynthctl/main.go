package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"blocksynth/internal/storage"
	synthapi "blocksynth/pkg/blocksynth"
)

const defaultDBPath = "blocksynth.db"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON file with generate request fields; flags are ignored when set")
	samples := fs.Int("samples", 50, "# samples in both X and Y")
	xfeatures := fs.Int("xfeatures", 500, "# features in X")
	yfeatures := fs.Int("yfeatures", 500, "# features in Y")
	blocks := fs.Int("blocks", -1, "# associated blocks; negative derives min(5, min(xfeatures, yfeatures)/2)")
	association := fs.String("association", "line", "association type: line|parabola|log|mixed|sine|step")
	distribution := fs.String("distribution", "uniform", "distribution: uniform|normal")
	noiseWithin := fs.Float64("noise-within", 0.25, "noise within blocks [0 (no noise)..1 (complete noise)]")
	noiseBetween := fs.Float64("noise-between", 0.25, "noise between associated blocks [0..1]")
	noiseWithinStd := fs.Float64("noise-within-std", 1.0, "standard deviation of within-block noise draws")
	noiseBetweenStd := fs.Float64("noise-between-std", 1.0, "standard deviation of between-block noise draws")
	seed := fs.Uint64("seed", 0, "random seed; a fixed seed reproduces the tables bit for bit")
	output := fs.String("output", "", "output directory (required; recreated destructively)")
	runID := fs.String("run-id", "", "run id; defaults to a random uuid")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req synthapi.GenerateRequest
	if *configPath != "" {
		loaded, err := loadGenerateRequestFromConfig(*configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", *configPath, err)
		}
		req = loaded
	} else {
		req = synthapi.GenerateRequest{
			RunID:           *runID,
			Samples:         *samples,
			XFeatures:       *xfeatures,
			YFeatures:       *yfeatures,
			Blocks:          *blocks,
			Association:     *association,
			Distribution:    *distribution,
			NoiseWithin:     *noiseWithin,
			NoiseBetween:    *noiseBetween,
			NoiseWithinStd:  *noiseWithinStd,
			NoiseBetweenStd: *noiseBetweenStd,
			Seed:            *seed,
			OutputDir:       *output,
		}
	}
	if req.OutputDir == "" {
		return usageError("generate requires an output directory (-output)")
	}

	client, err := synthapi.NewClient(ctx, synthapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Generate(ctx, req)
	if err != nil {
		return err
	}

	p := summary.Params
	fmt.Printf("generated run_id=%s association=%s samples=%d xfeatures=%d yfeatures=%d blocks=%d seed=%d\n",
		summary.RunID, p.Association, p.Samples, p.XFeatures, p.YFeatures, p.Blocks, summary.Seed)
	fmt.Printf("x_blocks=%v y_blocks=%v\n", summary.XBlockSizes, summary.YBlockSizes)
	if summary.EmptyBlocks > 0 {
		fmt.Printf("note: %d block(s) received no features on either side\n", summary.EmptyBlocks)
	}
	xCells := int64(summary.XSummary.Rows) * int64(summary.XSummary.Cols)
	yCells := int64(summary.YSummary.Rows) * int64(summary.YSummary.Cols)
	fmt.Printf("X cells=%s mean=%.6f std=%.6f min=%.6f max=%.6f\n",
		humanize.Comma(xCells), summary.XSummary.Mean, summary.XSummary.StdDev, summary.XSummary.Min, summary.XSummary.Max)
	fmt.Printf("Y cells=%s mean=%.6f std=%.6f min=%.6f max=%.6f\n",
		humanize.Comma(yCells), summary.YSummary.Mean, summary.YSummary.StdDev, summary.YSummary.Min, summary.YSummary.Max)
	fmt.Printf("output_dir=%s files=%v\n", filepath.Clean(summary.OutputDir), summary.Files)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	limit := fs.Int("limit", 0, "max runs to list; 0 lists all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := synthapi.NewClient(ctx, synthapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	for _, run := range runs {
		fmt.Printf("run_id=%s created_at=%s association=%s samples=%d xfeatures=%d yfeatures=%d blocks=%d seed=%d output_dir=%s\n",
			run.ID, run.CreatedAtUTC, run.Params.Association, run.Params.Samples,
			run.Params.XFeatures, run.Params.YFeatures, run.Params.Blocks, run.Seed, run.OutputDir)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("show requires exactly one run id argument")
	}

	client, err := synthapi.NewClient(ctx, synthapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	run, ok, err := client.Run(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", fs.Arg(0))
	}
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := synthapi.NewClient(ctx, synthapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Reset(ctx); err != nil {
		return err
	}
	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: blocksynthctl <generate|runs|show|reset> [flags]", msg)
}
