package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner wraps the pool in a transaction runner. The transaction is
// stored in the context handed to fn so repositories resolve it via conn.
func NewTxRunner(db *gorm.DB) domainRepo.TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
