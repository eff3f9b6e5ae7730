package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo implementación sobre PostgreSQL (usable con pool o tx).
type RegistroRepo struct {
	q Querier
}

// NewRegistroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistroRepository(q Querier) *RegistroRepo {
	return &RegistroRepo{q: q}
}

// Crear persiste un registro de inventario.
func (r *RegistroRepo) Crear(reg *entity.RegistroInventario) error {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	query := `
		INSERT INTO registros_inventario (id, codigo_producto, cantidad, tipo, motivo, usuario, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		reg.ID, reg.CodigoProducto, reg.Cantidad, reg.Tipo, reg.Motivo, reg.Usuario, reg.Fecha,
	)
	if err != nil {
		return fmt.Errorf("crear registro inventario: %w", err)
	}
	return nil
}

// Listar devuelve registros del más reciente al más antiguo.
func (r *RegistroRepo) Listar(limit, offset int) ([]*entity.RegistroInventario, error) {
	query := `
		SELECT id, codigo_producto, cantidad, tipo, motivo, usuario, fecha
		FROM registros_inventario ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar registros: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegistroInventario
	for rows.Next() {
		var reg entity.RegistroInventario
		if err := rows.Scan(&reg.ID, &reg.CodigoProducto, &reg.Cantidad, &reg.Tipo, &reg.Motivo, &reg.Usuario, &reg.Fecha); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}
