package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.TrasladoRepository = (*TrasladoRepo)(nil)

// TrasladoRepo implementación sobre PostgreSQL (usable con pool o tx). Los ítems
// se guardan como JSONB en el mismo documento: el traslado es inmutable y siempre
// se lee completo.
type TrasladoRepo struct {
	q Querier
}

// NewTrasladoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrasladoRepository(q Querier) *TrasladoRepo {
	return &TrasladoRepo{q: q}
}

// Crear persiste un traslado completado.
func (r *TrasladoRepo) Crear(t *entity.Traslado) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	items, err := json.Marshal(t.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	query := `
		INSERT INTO traslados (id, origen_nombre, origen_direccion, destino_nombre, destino_direccion, fecha, notas, estado, usuario, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		t.ID, t.Origen.Nombre, t.Origen.Direccion, t.Destino.Nombre, t.Destino.Direccion,
		t.Fecha, t.Notas, t.Estado, t.Usuario, items,
	)
	if err != nil {
		return fmt.Errorf("crear traslado: %w", err)
	}
	return nil
}

// Listar devuelve traslados del más reciente al más antiguo.
func (r *TrasladoRepo) Listar(limit, offset int) ([]*entity.Traslado, error) {
	query := `
		SELECT id, origen_nombre, origen_direccion, destino_nombre, destino_direccion, fecha, notas, estado, usuario, items
		FROM traslados ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar traslados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Traslado
	for rows.Next() {
		var (
			t        entity.Traslado
			itemsRaw []byte
		)
		if err := rows.Scan(&t.ID, &t.Origen.Nombre, &t.Origen.Direccion, &t.Destino.Nombre, &t.Destino.Direccion,
			&t.Fecha, &t.Notas, &t.Estado, &t.Usuario, &itemsRaw); err != nil {
			return nil, fmt.Errorf("scan traslado: %w", err)
		}
		if len(itemsRaw) > 0 {
			if err := json.Unmarshal(itemsRaw, &t.Items); err != nil {
				return nil, fmt.Errorf("deserializar items: %w", err)
			}
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
