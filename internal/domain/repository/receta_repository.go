package repository

import "github.com/ferreinv/ferreteria-api/internal/domain/entity"

// RecetaRepository define el puerto de recetas y su auditoría.
type RecetaRepository interface {
	Crear(r *entity.Receta) error
	// GetPorID devuelve la receta o nil si no existe.
	GetPorID(id string) (*entity.Receta, error)
	Actualizar(r *entity.Receta) error
	Eliminar(id string) error
	Listar() ([]*entity.Receta, error)
	// CrearRegistro agrega un evento de auditoría (CREAR/ACTUALIZAR/ELIMINAR/APLICAR).
	CrearRegistro(reg *entity.RegistroReceta) error
}
