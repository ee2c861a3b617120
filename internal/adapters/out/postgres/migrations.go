package postgres

import (
	"atelier/internal/adapters/out/postgres/customerrepo"
	"atelier/internal/adapters/out/postgres/invoicerepo"
	"atelier/internal/adapters/out/postgres/measurementrepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/pipelinerepo"
	"atelier/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&measurementrepo.MeasurementDTO{},
		&vendorrepo.RoleDTO{},
		&vendorrepo.VendorDTO{},
		&pipelinerepo.StageDTO{},
		&invoicerepo.InvoiceDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderStageDTO{},
		&orderrepo.ParticularDTO{},
	)
}
