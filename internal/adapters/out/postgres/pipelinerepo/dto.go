// Package pipelinerepo provides data transfer objects and mapping functions
// for pipeline stage definition persistence.
package pipelinerepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/pipeline"

	"github.com/google/uuid"
)

// StageDTO represents the database structure for persisting pipeline stage
// definitions. Sequence positions are unique so the pipeline order is total.
type StageDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	SequencePosition int       `gorm:"type:int;not null;uniqueIndex"`
}

// TableName specifies the database table name for pipeline stage entities.
func (StageDTO) TableName() string {
	return "pipeline_stages"
}

// fromDomain converts a pipeline stage domain aggregate to its database representation.
func fromDomain(aggregate *pipeline.Stage) StageDTO {
	return StageDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Description:      aggregate.Description(),
		SequencePosition: aggregate.SequencePosition(),
	}
}

// toDomain converts a database DTO to a pipeline stage domain aggregate.
func toDomain(dto StageDTO) (*pipeline.Stage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pipeline.RestoreStage(id, dto.Name, dto.Description, dto.SequencePosition)
}
