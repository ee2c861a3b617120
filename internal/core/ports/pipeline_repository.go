package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/pipeline"
)

// PipelineStageRepository defines the persistence contract for pipeline stage
// definitions, the shared step templates of the production pipeline.
type PipelineStageRepository interface {
	// Add persists a new stage definition. A duplicate sequence position
	// surfaces as errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *pipeline.Stage) error

	// Get retrieves a stage definition by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pipeline.Stage, error)

	// GetAll retrieves all stage definitions ordered by sequence position
	// ascending.
	GetAll(ctx context.Context) ([]*pipeline.Stage, error)
}
