// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/pennywise-fin/pennywise/internal/model"
)

// Storage defines the contract for the bulk-create persistence layer. Each
// SaveImport call is atomic: the batch is committed whole or not at all.
type Storage interface {
	SaveImport(ctx context.Context, fileName string, stmt *model.Statement, result *model.ImportResult) (int64, error)
	GetImport(ctx context.Context, importID int64) (*model.ImportAudit, error)
	ListRevenues(ctx context.Context, importID int64) ([]model.ClassifiedTransaction, error)
	ListExpenses(ctx context.Context, importID int64) ([]model.ClassifiedTransaction, error)
	ListTransfers(ctx context.Context, importID int64) ([]model.TransferRecord, error)
	Migrate(ctx context.Context) error
	Close() error
}
