package pipelinerepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/pipeline"
	"atelier/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormPipelineStageRepository implements PipelineStageRepository using GORM.
type GormPipelineStageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPipelineStageRepository creates a new GORM pipeline stage repository.
func NewGormPipelineStageRepository(db *gorm.DB, tracker aggregateTracker) *GormPipelineStageRepository {
	return &GormPipelineStageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pipeline stage definition to the database.
func (r *GormPipelineStageRepository) Add(ctx context.Context, aggregate *pipeline.Stage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"sequencePosition", aggregate.SequencePosition(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pipeline stage definition by ID.
func (r *GormPipelineStageRepository) Get(ctx context.Context, id kernel.UUID) (*pipeline.Stage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pipelineStage", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all pipeline stage definitions ordered by sequence position.
func (r *GormPipelineStageRepository) GetAll(ctx context.Context) ([]*pipeline.Stage, error) {
	var dtos []StageDTO
	if err := r.db.WithContext(ctx).
		Order("sequence_position ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	stages := make([]*pipeline.Stage, 0, len(dtos))
	for _, dto := range dtos {
		stage, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return stages, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
