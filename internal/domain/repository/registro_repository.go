package repository

import "github.com/ferreinv/ferreteria-api/internal/domain/entity"

// RegistroRepository define el puerto de los registros de inventario (append-only).
type RegistroRepository interface {
	Crear(r *entity.RegistroInventario) error
	// Listar devuelve registros del más reciente al más antiguo.
	Listar(limit, offset int) ([]*entity.RegistroInventario, error)
}
