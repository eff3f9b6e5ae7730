package repository

import "github.com/ferreinv/ferreteria-api/internal/domain/entity"

// ProductoRepository define el puerto de consulta del catálogo. La carga manual
// resuelve primero el catálogo principal y luego el de productos propios; la única
// mutación permitida es propagar la imagen desde una actualización de stock.
type ProductoRepository interface {
	// GetPorCodigo busca en el catálogo principal; nil si no existe.
	GetPorCodigo(codigo int64) (*entity.Producto, error)
	// GetPropioPorCodigo busca en el catálogo secundario de productos propios; nil si no existe.
	GetPropioPorCodigo(codigo int64) (*entity.Producto, error)
	// GetPorCodigos resuelve varios códigos de una vez (ambos catálogos) para la vista de stock.
	GetPorCodigos(codigos []int64) (map[int64]*entity.Producto, error)
	// ActualizarImagen fija la URL de imagen del producto (en el catálogo que lo contenga).
	ActualizarImagen(codigo int64, imagenURL string) error
}
