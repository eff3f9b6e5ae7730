package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro de inventario.
const (
	TipoRegistroEntrada = "Entrada"
	TipoRegistroSalida  = "Salida"
)

// RegistroInventario es el evento de auditoría de una mutación manual de stock
// (carga, retiro o actualización). Append-only.
type RegistroInventario struct {
	ID             string
	CodigoProducto int64
	Cantidad       decimal.Decimal
	Tipo           string
	Motivo         string
	Usuario        string
	Fecha          time.Time
}
