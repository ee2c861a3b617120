// Package invoicerepo provides data transfer objects and mapping functions for
// invoice persistence.
package invoicerepo

import (
	"time"

	"atelier/internal/core/domain/model/invoice"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IssuedOn      time.Time       `gorm:"type:date;not null"`
	DueOn         time.Time       `gorm:"type:date;not null"`
	Paid          bool            `gorm:"type:boolean;not null;index"`
	PaidOn        *time.Time      `gorm:"type:date"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            aggregate.ID().Bytes(),
		InvoiceNumber: aggregate.InvoiceNumber(),
		Amount:        aggregate.Amount(),
		IssuedOn:      aggregate.IssuedOn(),
		DueOn:         aggregate.DueOn(),
		Paid:          aggregate.Paid(),
		PaidOn:        aggregate.PaidOn(),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		dto.InvoiceNumber,
		dto.Amount,
		dto.IssuedOn,
		dto.DueOn,
		dto.Paid,
		dto.PaidOn,
	)
}
