// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Stages and particulars are stored as child rows and cascade on order deletion.
type OrderDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderNumber string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	PlacedOn    time.Time        `gorm:"type:date;not null"`
	Status      int              `gorm:"type:int;not null;index"`
	CompletedOn *time.Time       `gorm:"type:date"`
	InvoiceID   *uuid.UUID       `gorm:"type:uuid;index"`
	Stages      []OrderStageDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Particulars []ParticularDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderStageDTO represents the database structure for persisting order stages.
// The (order, sequence position) pair is the pipeline position and is unique.
// A deleted vendor leaves the stage with a null vendor reference.
type OrderStageDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_order_stage_position"`
	PipelineStageID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	SequencePosition int        `gorm:"type:int;not null;uniqueIndex:idx_order_stage_position"`
	Status           int        `gorm:"type:int;not null"`
	StartDate        time.Time  `gorm:"type:date;not null"`
	EndDate          *time.Time `gorm:"type:date"`
	VendorID         *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order stage entities.
func (OrderStageDTO) TableName() string {
	return "order_stages"
}

// ParticularDTO represents the database structure for persisting billable
// line items.
type ParticularDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name    string          `gorm:"type:varchar(255);not null"`
	Detail  string          `gorm:"type:text"`
	Amount  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for particular entities.
func (ParticularDTO) TableName() string {
	return "particulars"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var invoiceID *uuid.UUID
	if id := aggregate.InvoiceID(); id != nil {
		raw := id.Bytes()
		invoiceID = &raw
	}

	stages := make([]OrderStageDTO, 0, len(aggregate.Stages()))
	for _, stage := range aggregate.Stages() {
		stages = append(stages, stageFromDomain(orderID, stage))
	}

	particulars := make([]ParticularDTO, 0, len(aggregate.Particulars()))
	for _, particular := range aggregate.Particulars() {
		particulars = append(particulars, ParticularDTO{
			ID:      particular.ID().Bytes(),
			OrderID: orderID,
			Name:    particular.Name(),
			Detail:  particular.Detail(),
			Amount:  particular.Amount(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		PlacedOn:    aggregate.PlacedOn(),
		Status:      int(aggregate.Status()),
		CompletedOn: aggregate.CompletedOn(),
		InvoiceID:   invoiceID,
		Stages:      stages,
		Particulars: particulars,
	}
}

func stageFromDomain(orderID uuid.UUID, stage *order.Stage) OrderStageDTO {
	var vendorID *uuid.UUID
	if id := stage.VendorID(); id != nil {
		raw := id.Bytes()
		vendorID = &raw
	}

	return OrderStageDTO{
		ID:               stage.ID().Bytes(),
		OrderID:          orderID,
		PipelineStageID:  stage.PipelineStageID().Bytes(),
		SequencePosition: stage.SequencePosition(),
		Status:           int(stage.Status()),
		StartDate:        stage.StartDate(),
		EndDate:          stage.EndDate(),
		VendorID:         vendorID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stages and particulars.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var invoiceID *kernel.UUID
	if dto.InvoiceID != nil {
		iID, invoiceErr := kernel.UUIDFromBytes((*dto.InvoiceID)[:])
		if invoiceErr != nil {
			return nil, invoiceErr
		}
		invoiceID = &iID
	}

	stages := make([]*order.Stage, 0, len(dto.Stages))
	for _, stageDTO := range dto.Stages {
		stage, stageErr := stageToDomain(stageDTO)
		if stageErr != nil {
			return nil, stageErr
		}
		stages = append(stages, stage)
	}

	particulars := make([]*order.Particular, 0, len(dto.Particulars))
	for _, particularDTO := range dto.Particulars {
		particularID, particularErr := kernel.UUIDFromBytes(particularDTO.ID[:])
		if particularErr != nil {
			return nil, particularErr
		}

		particular, particularErr := order.RestoreParticular(
			particularID, particularDTO.Name, particularDTO.Detail, particularDTO.Amount)
		if particularErr != nil {
			return nil, particularErr
		}
		particulars = append(particulars, particular)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		dto.PlacedOn,
		order.Status(dto.Status),
		dto.CompletedOn,
		invoiceID,
		stages,
		particulars,
	)
}

func stageToDomain(dto OrderStageDTO) (*order.Stage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pipelineStageID, err := kernel.UUIDFromBytes(dto.PipelineStageID[:])
	if err != nil {
		return nil, err
	}

	var vendorID *kernel.UUID
	if dto.VendorID != nil {
		vID, vendorErr := kernel.UUIDFromBytes((*dto.VendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorID = &vID
	}

	return order.RestoreStage(
		id,
		pipelineStageID,
		dto.SequencePosition,
		order.StageStatus(dto.Status),
		dto.StartDate,
		dto.EndDate,
		vendorID,
	)
}
