package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contasys/consolida-api/internal/application/usecase"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. Consolidación y su entrada de bitácora se
// confirman juntas o ninguna.
func (r *TxRunner) Run(ctx context.Context, fn func(
	consRepo repository.ConsolidacionRepository,
	bitacoraRepo repository.BitacoraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	consRepo := NewConsolidacionRepository(tx)
	bitacoraRepo := NewBitacoraRepository(tx)

	if err := fn(consRepo, bitacoraRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
