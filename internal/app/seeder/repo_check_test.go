package seeder_test

import (
	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/bulk"
	"github.com/heartmarshall/novelreader-backend/internal/app/seeder"
)

// Compile-time check: *bulk.Repo must satisfy CatalogBulkRepo.
var _ seeder.CatalogBulkRepo = (*bulk.Repo)(nil)
