package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemTrasladoRequest línea de un traslado. Nombre y unidad son informativos
// (se copian tal cual al registro de movimiento).
type ItemTrasladoRequest struct {
	Codigo   int64           `json:"codigo"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Nombre   string          `json:"nombre,omitempty"`
	Unidad   string          `json:"unidad,omitempty"`
}

// TrasladoRequest body para POST /api/traslados.
type TrasladoRequest struct {
	Origen  SucursalDTO           `json:"origen"`
	Destino SucursalDTO           `json:"destino"`
	Items   []ItemTrasladoRequest `json:"items"`
	Notas   string                `json:"notas,omitempty"`
}

// ItemTrasladoDTO línea persistida de un traslado.
type ItemTrasladoDTO struct {
	Nombre   string          `json:"nombre"`
	Codigo   int64           `json:"codigo"`
	Unidad   string          `json:"unidad"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// TrasladoDTO registro de movimiento completado.
type TrasladoDTO struct {
	ID      string            `json:"id"`
	Origen  SucursalDTO       `json:"origen"`
	Destino SucursalDTO       `json:"destino"`
	Fecha   time.Time         `json:"fecha"`
	Notas   string            `json:"notas,omitempty"`
	Estado  string            `json:"estado"`
	Usuario string            `json:"usuario"`
	Items   []ItemTrasladoDTO `json:"items"`
}
