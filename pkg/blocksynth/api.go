// Package blocksynth generates paired numeric tables X and Y whose features
// are partitioned into blocks with controllable association, plus the
// ground-truth association matrix A, for benchmarking association-discovery
// algorithms against a known answer.
package blocksynth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"blocksynth/internal/export"
	"blocksynth/internal/gen"
	"blocksynth/internal/model"
	"blocksynth/internal/stats"
	"blocksynth/internal/storage"
)

const defaultDBPath = "blocksynth.db"

type Options struct {
	StoreKind string
	DBPath    string
}

// Client runs generations and keeps the run registry.
type Client struct {
	store storage.Store
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	path := opts.DBPath
	if path == "" {
		path = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// GenerateRequest configures one generation run. Blocks follows
// model.BlocksDefault semantics: any negative value derives
// min(5, min(XFeatures, YFeatures)/2); an explicit zero is invalid.
// An empty OutputDir skips table export.
type GenerateRequest struct {
	RunID           string
	Samples         int
	XFeatures       int
	YFeatures       int
	Blocks          int
	Association     string
	Distribution    string
	NoiseWithin     float64
	NoiseBetween    float64
	NoiseWithinStd  float64
	NoiseBetweenStd float64
	Seed            uint64
	OutputDir       string
}

// RunSummary reports one completed generation.
type RunSummary struct {
	RunID       string
	Params      model.Parameters
	Seed        uint64
	XBlockSizes []int
	YBlockSizes []int
	EmptyBlocks int
	OutputDir   string
	Files       []string
	XSummary    stats.TableSummary
	YSummary    stats.TableSummary
}

// Generate validates the request, runs the synthesis pipeline with a single
// seeded random source, exports the tables, and records the run. A fixed seed
// reproduces the tables bit for bit.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (RunSummary, error) {
	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	generator := &gen.Generator{
		Params: model.Parameters{
			Samples:         req.Samples,
			XFeatures:       req.XFeatures,
			YFeatures:       req.YFeatures,
			Blocks:          req.Blocks,
			Association:     model.Association(req.Association),
			Distribution:    model.Distribution(req.Distribution),
			NoiseWithin:     req.NoiseWithin,
			NoiseBetween:    req.NoiseBetween,
			NoiseWithinStd:  req.NoiseWithinStd,
			NoiseBetweenStd: req.NoiseBetweenStd,
		},
		Rand: rand.New(rand.NewSource(req.Seed)),
	}
	ds, err := generator.Run(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	var files []string
	if req.OutputDir != "" {
		files, err = export.Write(req.OutputDir, ds.Params.Association, export.Tables{X: ds.X, Y: ds.Y, A: ds.A})
		if err != nil {
			return RunSummary{}, err
		}
	}

	xSizes := gen.BlockSizes(ds.XBlocks)
	ySizes := gen.BlockSizes(ds.YBlocks)

	run := model.GenerationRun{
		VersionedRecord: storage.CurrentVersion(),
		ID:              runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		Seed:            req.Seed,
		Params:          ds.Params,
		XBlockSizes:     xSizes,
		YBlockSizes:     ySizes,
		OutputDir:       req.OutputDir,
		Files:           files,
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return RunSummary{}, fmt.Errorf("record run: %w", err)
	}

	empty := 0
	for k := range xSizes {
		if xSizes[k] == 0 && ySizes[k] == 0 {
			empty++
		}
	}

	return RunSummary{
		RunID:       runID,
		Params:      ds.Params,
		Seed:        req.Seed,
		XBlockSizes: xSizes,
		YBlockSizes: ySizes,
		EmptyBlocks: empty,
		OutputDir:   req.OutputDir,
		Files:       files,
		XSummary:    stats.Summarize(ds.X),
		YSummary:    stats.Summarize(ds.Y),
	}, nil
}

// Runs lists recorded runs, newest first. A non-positive limit returns all.
func (c *Client) Runs(ctx context.Context, limit int) ([]model.GenerationRun, error) {
	runs, err := c.store.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (c *Client) Run(ctx context.Context, id string) (model.GenerationRun, bool, error) {
	return c.store.GetRun(ctx, id)
}

func (c *Client) Reset(ctx context.Context) error {
	return c.store.Reset(ctx)
}
