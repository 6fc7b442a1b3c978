package storage

import (
	"context"

	"blocksynth/internal/model"
)

// Store persists generation-run records.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.GenerationRun) error
	GetRun(ctx context.Context, id string) (model.GenerationRun, bool, error)
	ListRuns(ctx context.Context) ([]model.GenerationRun, error)
	Reset(ctx context.Context) error
}
