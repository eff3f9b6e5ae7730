package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CargaManualRequest body para POST /api/inventario/cargas.
// Sucursal omitido = pool sin asignar.
type CargaManualRequest struct {
	CodigoProducto int64           `json:"codigo_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Sucursal       *SucursalDTO    `json:"sucursal,omitempty"`
	Motivo         string          `json:"motivo,omitempty"`
}

// CargaManualResponse indica si el registro de stock fue creado o actualizado.
type CargaManualResponse struct {
	Message string `json:"message"`
	Creado  bool   `json:"creado"`
}

// RetiroRequest body para DELETE /api/inventario/retiros.
type RetiroRequest struct {
	CodigoProducto int64           `json:"codigo_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Sucursal       *SucursalDTO    `json:"sucursal,omitempty"`
	Motivo         string          `json:"motivo"`
}

// RetiroResponse describe la cantidad restante o la eliminación completa del registro.
type RetiroResponse struct {
	Message   string          `json:"message"`
	Restante  decimal.Decimal `json:"restante"`
	Eliminado bool            `json:"eliminado"`
}

// PrecioPersonalizadoDTO precio alternativo con nombre.
type PrecioPersonalizadoDTO struct {
	Nombre string          `json:"nombre"`
	Valor  decimal.Decimal `json:"valor"`
}

// ActualizarStockRequest body para PUT /api/inventario/stock/:id. Solo se
// sobrescriben los campos presentes; cantidad es obligatoria y >= 0.
type ActualizarStockRequest struct {
	Cantidad              decimal.Decimal           `json:"cantidad"`
	CantidadMinima        *decimal.Decimal          `json:"cantidad_minima,omitempty"`
	PreciosPersonalizados *[]PrecioPersonalizadoDTO `json:"precios_personalizados,omitempty"`
	ImagenURL             *string                   `json:"imagen_url,omitempty"`
}

// RegistroInventarioDTO evento de auditoría de una mutación manual.
type RegistroInventarioDTO struct {
	ID             string          `json:"id"`
	CodigoProducto int64           `json:"codigo_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Tipo           string          `json:"tipo"`
	Motivo         string          `json:"motivo"`
	Usuario        string          `json:"usuario"`
	Fecha          time.Time       `json:"fecha"`
}

// StockVistaDTO proyección tipada de un registro de stock con los datos de catálogo
// resueltos campo a campo (sin merges dinámicos).
type StockVistaDTO struct {
	ID                    string                   `json:"id"`
	CodigoProducto        int64                    `json:"codigo_producto"`
	NombreProducto        string                   `json:"nombre_producto"`
	Unidad                string                   `json:"unidad"`
	Marca                 string                   `json:"marca"`
	ImagenURL             string                   `json:"imagen_url,omitempty"`
	Sucursal              *SucursalDTO             `json:"sucursal,omitempty"`
	Cantidad              decimal.Decimal          `json:"cantidad"`
	CantidadMinima        *decimal.Decimal         `json:"cantidad_minima,omitempty"`
	PreciosPersonalizados []PrecioPersonalizadoDTO `json:"precios_personalizados,omitempty"`
	BajoMinimo            bool                     `json:"bajo_minimo"`
	UpdatedAt             time.Time                `json:"updated_at"`
}
