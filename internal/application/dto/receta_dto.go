package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecetaRequest body para crear o actualizar una receta.
type RecetaRequest struct {
	Nombre        string          `json:"nombre"`
	CodigoPadre   int64           `json:"codigo_padre"`
	CantidadPadre decimal.Decimal `json:"cantidad_padre"`
	CodigoHijo    int64           `json:"codigo_hijo"`
	CantidadHijo  decimal.Decimal `json:"cantidad_hijo"`
}

// AplicarRecetaRequest body para POST /api/recetas/:id/aplicar. Sucursal solo es
// obligatoria cuando las recetas operan por sucursal (RECETAS_POR_SUCURSAL=true).
type AplicarRecetaRequest struct {
	Sucursal *SucursalDTO `json:"sucursal,omitempty"`
}

// RecetaDTO receta persistida.
type RecetaDTO struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	CodigoPadre   int64           `json:"codigo_padre"`
	CantidadPadre decimal.Decimal `json:"cantidad_padre"`
	CodigoHijo    int64           `json:"codigo_hijo"`
	CantidadHijo  decimal.Decimal `json:"cantidad_hijo"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
