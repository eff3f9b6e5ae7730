package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.RecetaRepository = (*RecetaRepo)(nil)

// RecetaRepo implementación sobre PostgreSQL (usable con pool o tx).
type RecetaRepo struct {
	q Querier
}

// NewRecetaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecetaRepository(q Querier) *RecetaRepo {
	return &RecetaRepo{q: q}
}

// Crear persiste una receta. El nombre es único: devuelve ErrDuplicate si ya existe.
func (r *RecetaRepo) Crear(receta *entity.Receta) error {
	if receta.ID == "" {
		receta.ID = uuid.New().String()
	}
	query := `
		INSERT INTO recetas (id, nombre, codigo_padre, cantidad_padre, codigo_hijo, cantidad_hijo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		receta.ID, receta.Nombre, receta.CodigoPadre, receta.CantidadPadre,
		receta.CodigoHijo, receta.CantidadHijo, receta.CreatedAt, receta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear receta: %w", err)
	}
	return nil
}

// GetPorID obtiene una receta por ID, o nil si no existe.
func (r *RecetaRepo) GetPorID(id string) (*entity.Receta, error) {
	query := `
		SELECT id, nombre, codigo_padre, cantidad_padre, codigo_hijo, cantidad_hijo, created_at, updated_at
		FROM recetas WHERE id = $1`
	var receta entity.Receta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&receta.ID, &receta.Nombre, &receta.CodigoPadre, &receta.CantidadPadre,
		&receta.CodigoHijo, &receta.CantidadHijo, &receta.CreatedAt, &receta.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receta: %w", err)
	}
	return &receta, nil
}

// Actualizar sobrescribe una receta existente.
func (r *RecetaRepo) Actualizar(receta *entity.Receta) error {
	query := `
		UPDATE recetas SET nombre = $2, codigo_padre = $3, cantidad_padre = $4, codigo_hijo = $5, cantidad_hijo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		receta.ID, receta.Nombre, receta.CodigoPadre, receta.CantidadPadre,
		receta.CodigoHijo, receta.CantidadHijo, receta.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar receta: %w", err)
	}
	return nil
}

// Eliminar borra una receta por ID.
func (r *RecetaRepo) Eliminar(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recetas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("eliminar receta: %w", err)
	}
	return nil
}

// Listar devuelve todas las recetas ordenadas por nombre.
func (r *RecetaRepo) Listar() ([]*entity.Receta, error) {
	query := `
		SELECT id, nombre, codigo_padre, cantidad_padre, codigo_hijo, cantidad_hijo, created_at, updated_at
		FROM recetas ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar recetas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receta
	for rows.Next() {
		var receta entity.Receta
		if err := rows.Scan(&receta.ID, &receta.Nombre, &receta.CodigoPadre, &receta.CantidadPadre,
			&receta.CodigoHijo, &receta.CantidadHijo, &receta.CreatedAt, &receta.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receta: %w", err)
		}
		list = append(list, &receta)
	}
	return list, rows.Err()
}

// CrearRegistro agrega un evento de auditoría de recetas.
func (r *RecetaRepo) CrearRegistro(reg *entity.RegistroReceta) error {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	query := `
		INSERT INTO registros_recetas (id, accion, nombre_receta, usuario, fecha)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(context.Background(), query, reg.ID, reg.Accion, reg.NombreReceta, reg.Usuario, reg.Fecha); err != nil {
		return fmt.Errorf("crear registro receta: %w", err)
	}
	return nil
}
