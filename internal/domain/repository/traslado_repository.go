package repository

import "github.com/ferreinv/ferreteria-api/internal/domain/entity"

// TrasladoRepository define el puerto del registro de traslados (append-only).
type TrasladoRepository interface {
	Crear(t *entity.Traslado) error
	// Listar devuelve traslados del más reciente al más antiguo.
	Listar(limit, offset int) ([]*entity.Traslado, error)
}
