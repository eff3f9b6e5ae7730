package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreinv/ferreteria-api/internal/domain"
)

// ── Querier guionado ────────────────────────────────────────────────────────

// rowFunc adapta una función de scan a pgx.Row.
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

// scriptQuerier registra cada sentencia recibida y responde según el SQL, para
// verificar la forma de las operaciones del repositorio sin una base de datos.
type scriptQuerier struct {
	sqls    []string
	respond func(sql string, args []any) rowFunc
}

func (q *scriptQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	return pgconn.NewCommandTag(""), nil
}

func (q *scriptQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sqls = append(q.sqls, sql)
	return nil, pgx.ErrNoRows
}

func (q *scriptQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.sqls = append(q.sqls, sql)
	return q.respond(sql, args)
}

// ── Decrementar ─────────────────────────────────────────────────────────────

// Una salida por el total debe eliminar la fila con un DELETE directo: la tabla
// tiene CHECK (cantidad > 0), así que un UPDATE intermedio que dejara la
// cantidad en cero violaría el constraint.
func TestDecrementar_SalidaTotalEliminaSinPasarPorCero(t *testing.T) {
	q := &scriptQuerier{respond: func(sql string, args []any) rowFunc {
		if !strings.Contains(sql, "DELETE FROM stock") {
			return func(dest ...any) error { return pgx.ErrNoRows }
		}
		return func(dest ...any) error {
			*(dest[0].(*string)) = "stock-1"
			return nil
		}
	}}
	repo := NewStockRepository(q)

	restante, eliminado, err := repo.Decrementar(1001, "centro|principal 123", decimal.NewFromInt(10))

	require.NoError(t, err)
	assert.True(t, eliminado, "la salida total debe reportar la fila como eliminada")
	assert.True(t, restante.IsZero())
	require.Len(t, q.sqls, 1, "debe bastar una sola sentencia")
	assert.Contains(t, q.sqls[0], "DELETE FROM stock")
	assert.Contains(t, q.sqls[0], "cantidad = $3")
	assert.NotContains(t, q.sqls[0], "UPDATE", "nunca debe escribirse cantidad = 0")
}

func TestDecrementar_ParcialUsaUpdateCondicional(t *testing.T) {
	q := &scriptQuerier{respond: func(sql string, args []any) rowFunc {
		if strings.Contains(sql, "DELETE FROM stock") {
			return func(dest ...any) error { return pgx.ErrNoRows }
		}
		return func(dest ...any) error {
			*(dest[0].(*decimal.Decimal)) = decimal.NewFromInt(6)
			return nil
		}
	}}
	repo := NewStockRepository(q)

	restante, eliminado, err := repo.Decrementar(1001, "centro|principal 123", decimal.NewFromInt(4))

	require.NoError(t, err)
	assert.False(t, eliminado)
	assert.True(t, restante.Equal(decimal.NewFromInt(6)))
	require.Len(t, q.sqls, 2)
	assert.Contains(t, q.sqls[1], "cantidad = cantidad - $3")
	// El predicado es estricto: el caso cantidad == disponible ya lo cubrió el DELETE.
	assert.Contains(t, q.sqls[1], "cantidad > $3")
}

func TestDecrementar_InsuficienteDevuelveSentinel(t *testing.T) {
	q := &scriptQuerier{respond: func(sql string, args []any) rowFunc {
		return func(dest ...any) error { return pgx.ErrNoRows }
	}}
	repo := NewStockRepository(q)

	_, eliminado, err := repo.Decrementar(1001, "centro|principal 123", decimal.NewFromInt(15))

	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.False(t, eliminado)
}
