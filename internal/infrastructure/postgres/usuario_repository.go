package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación mínima para el login.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// GetPorEmail obtiene un usuario por email, o nil si no existe.
func (r *UsuarioRepo) GetPorEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, email, hash_contrasena, rol, created_at
		FROM usuarios WHERE email = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.HashContrasena, &u.Rol, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
