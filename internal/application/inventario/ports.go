package inventario

import (
	"context"

	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que cada traslado, retiro o aplicación de receta sea
// todo-o-nada: se confirman juntas todas las filas de stock y su auditoría, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		registroRepo repository.RegistroRepository,
		trasladoRepo repository.TrasladoRepository,
		productoRepo repository.ProductoRepository,
		recetaRepo repository.RecetaRepository,
	) error) error
}
