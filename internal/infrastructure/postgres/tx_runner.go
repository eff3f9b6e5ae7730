package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	registroRepo repository.RegistroRepository,
	trasladoRepo repository.TrasladoRepository,
	productoRepo repository.ProductoRepository,
	recetaRepo repository.RecetaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	registroRepo := NewRegistroRepository(tx)
	trasladoRepo := NewTrasladoRepository(tx)
	productoRepo := NewProductoRepository(tx)
	recetaRepo := NewRecetaRepository(tx)

	if err := fn(stockRepo, registroRepo, trasladoRepo, productoRepo, recetaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
