// File: internal/repository/transaction.go
package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxFn is executed with a transaction-bound handle. Repositories are
// rebound to it via their WithTx methods.
type TxFn func(tx *gorm.DB) error

// TxManager runs a function inside a single database transaction:
// everything commits together or nothing does.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFn) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) WithinTx(ctx context.Context, fn TxFn) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}
