package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

// StockInsuficienteError detalla el faltante de una operación rechazada.
// errors.Is(err, ErrStockInsuficiente) devuelve true para este tipo.
type StockInsuficienteError struct {
	CodigoProducto int64
	Disponible     decimal.Decimal
	Solicitada     decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d: disponible %s, solicitado %s",
		e.CodigoProducto, e.Disponible.String(), e.Solicitada.String())
}

func (e *StockInsuficienteError) Is(target error) bool {
	return target == ErrStockInsuficiente
}
