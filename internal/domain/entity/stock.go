package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrecioPersonalizado es un precio alternativo con nombre (mayorista, contratista, etc.).
type PrecioPersonalizado struct {
	Nombre string          `json:"nombre"`
	Valor  decimal.Decimal `json:"valor"`
}

// Stock representa la existencia de un producto en una sucursal (o en el pool sin
// asignar cuando Sucursal es nil). Hay a lo sumo un registro por (código, sucursal).
// La cantidad nunca es negativa; un registro que llega exactamente a cero se elimina.
type Stock struct {
	ID                    string
	CodigoProducto        int64
	Sucursal              *Sucursal
	Cantidad              decimal.Decimal
	CantidadMinima        *decimal.Decimal
	PreciosPersonalizados []PrecioPersonalizado
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ClaveSucursal devuelve la clave canónica de la sucursal del registro ("" = sin asignar).
func (s *Stock) ClaveSucursal() string {
	return s.Sucursal.Clave()
}
