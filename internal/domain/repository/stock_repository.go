package repository

import (
	"github.com/shopspring/decimal"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por producto+sucursal.
// Los incrementos y decrementos se ejecutan como una sola sentencia atómica en el motor
// (nunca read-modify-write del caller); se usa dentro de transacciones vía TxRunner.
type StockRepository interface {
	// GetPorID devuelve el registro por ID, o nil si no existe.
	GetPorID(id string) (*entity.Stock, error)
	// Get devuelve el registro de (código, clave de sucursal), o nil si no existe.
	Get(codigo int64, clave string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) dentro de la tx.
	GetForUpdate(codigo int64, clave string) (*entity.Stock, error)
	// UpsertIncremento suma cantidad al registro, creándolo si no existe.
	// Devuelve true si el registro fue creado.
	UpsertIncremento(codigo int64, sucursal *entity.Sucursal, cantidad decimal.Decimal) (creado bool, err error)
	// Decrementar resta cantidad de forma condicional: falla con ErrStockInsuficiente
	// si la cantidad disponible no alcanza, y elimina la fila si queda exactamente en
	// cero (eliminado=true). La cantidad nunca queda negativa.
	Decrementar(codigo int64, clave string, cantidad decimal.Decimal) (restante decimal.Decimal, eliminado bool, err error)
	// ActualizarCampos sobrescribe cantidad y, si no son nil, cantidad mínima y precios.
	ActualizarCampos(id string, cantidad decimal.Decimal, cantidadMinima *decimal.Decimal, precios []entity.PrecioPersonalizado) error
	// Listar devuelve los registros de una sucursal (clave) o todos si clave es nil.
	Listar(clave *string) ([]*entity.Stock, error)
}
