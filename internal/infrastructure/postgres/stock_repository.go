package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La clave de sucursal normalizada vive en la columna clave_sucursal ('' = sin asignar)
// con unique (codigo_producto, clave_sucursal).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, codigo_producto, sucursal_nombre, sucursal_direccion, cantidad, cantidad_minima, precios_personalizados, created_at, updated_at`

// GetPorID obtiene un registro por ID, o nil si no existe.
func (r *StockRepo) GetPorID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock por id: %w", err)
	}
	return s, nil
}

// Get obtiene el registro de (código, clave de sucursal), o nil si no existe.
func (r *StockRepo) Get(codigo int64, clave string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE codigo_producto = $1 AND clave_sucursal = $2`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, codigo, clave))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el registro y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(codigo int64, clave string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE codigo_producto = $1 AND clave_sucursal = $2 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, codigo, clave))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// UpsertIncremento suma cantidad en una sola sentencia, creando el registro si no
// existe. xmax = 0 distingue insert de update en el RETURNING.
func (r *StockRepo) UpsertIncremento(codigo int64, sucursal *entity.Sucursal, cantidad decimal.Decimal) (bool, error) {
	var nombre, direccion *string
	if sucursal != nil {
		nombre, direccion = &sucursal.Nombre, &sucursal.Direccion
	}
	query := `
		INSERT INTO stock (id, codigo_producto, sucursal_nombre, sucursal_direccion, clave_sucursal, cantidad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (codigo_producto, clave_sucursal)
		DO UPDATE SET cantidad = stock.cantidad + EXCLUDED.cantidad,
		              sucursal_nombre = EXCLUDED.sucursal_nombre,
		              sucursal_direccion = EXCLUDED.sucursal_direccion,
		              updated_at = now()
		RETURNING (xmax = 0)`
	var creado bool
	err := r.q.QueryRow(context.Background(), query,
		uuid.New().String(), codigo, nombre, direccion, sucursal.Clave(), cantidad,
	).Scan(&creado)
	if err != nil {
		return false, fmt.Errorf("upsert incremento stock: %w", err)
	}
	return creado, nil
}

// Decrementar resta cantidad de forma condicional en el motor: la sentencia solo
// aplica si la cantidad disponible alcanza, así la invariante cantidad > 0 no
// depende del caller. Una salida por el total elimina la fila directamente; la
// tabla tiene CHECK (cantidad > 0), por lo que el valor cero nunca se escribe.
func (r *StockRepo) Decrementar(codigo int64, clave string, cantidad decimal.Decimal) (decimal.Decimal, bool, error) {
	var id string
	err := r.q.QueryRow(context.Background(), `
		DELETE FROM stock
		WHERE codigo_producto = $1 AND clave_sucursal = $2 AND cantidad = $3
		RETURNING id`, codigo, clave, cantidad).Scan(&id)
	if err == nil {
		return decimal.Zero, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, false, fmt.Errorf("eliminar stock en cero: %w", err)
	}

	var restante decimal.Decimal
	err = r.q.QueryRow(context.Background(), `
		UPDATE stock SET cantidad = cantidad - $3, updated_at = now()
		WHERE codigo_producto = $1 AND clave_sucursal = $2 AND cantidad > $3
		RETURNING cantidad`, codigo, clave, cantidad).Scan(&restante)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Registro ausente o cantidad insuficiente: el caller ya distingue
			// ambos casos con el GetForUpdate previo dentro de la misma tx.
			return decimal.Zero, false, domain.ErrStockInsuficiente
		}
		return decimal.Zero, false, fmt.Errorf("decrementar stock: %w", err)
	}
	return restante, false, nil
}

// ActualizarCampos sobrescribe cantidad y, si vienen, cantidad mínima y precios.
// Cantidad cero elimina el registro (la tabla nunca guarda filas en cero).
func (r *StockRepo) ActualizarCampos(id string, cantidad decimal.Decimal, cantidadMinima *decimal.Decimal, precios []entity.PrecioPersonalizado) error {
	if cantidad.IsZero() {
		cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("eliminar stock en cero: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	}
	query := `UPDATE stock SET cantidad = $2, updated_at = now()`
	args := []any{id, cantidad}
	pos := 3
	if cantidadMinima != nil {
		query += fmt.Sprintf(", cantidad_minima = $%d", pos)
		args = append(args, *cantidadMinima)
		pos++
	}
	if precios != nil {
		raw, err := json.Marshal(precios)
		if err != nil {
			return fmt.Errorf("serializar precios: %w", err)
		}
		query += fmt.Sprintf(", precios_personalizados = $%d", pos)
		args = append(args, raw)
		pos++
	}
	query += ` WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Listar devuelve los registros de una sucursal (clave) o todos si clave es nil.
func (r *StockRepo) Listar(clave *string) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock`
	args := []any{}
	if clave != nil {
		query += ` WHERE clave_sucursal = $1`
		args = append(args, *clave)
	}
	query += ` ORDER BY codigo_producto`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// scanStock mapea una fila (pgx.Row o pgx.Rows) a la entidad.
func scanStock(row pgx.Row) (*entity.Stock, error) {
	var (
		s          entity.Stock
		nombre     *string
		direccion  *string
		minima     *decimal.Decimal
		preciosRaw []byte
	)
	if err := row.Scan(&s.ID, &s.CodigoProducto, &nombre, &direccion, &s.Cantidad, &minima, &preciosRaw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if nombre != nil || direccion != nil {
		suc := entity.Sucursal{}
		if nombre != nil {
			suc.Nombre = *nombre
		}
		if direccion != nil {
			suc.Direccion = *direccion
		}
		s.Sucursal = &suc
	}
	s.CantidadMinima = minima
	if len(preciosRaw) > 0 {
		if err := json.Unmarshal(preciosRaw, &s.PreciosPersonalizados); err != nil {
			return nil, fmt.Errorf("deserializar precios: %w", err)
		}
	}
	return &s, nil
}
