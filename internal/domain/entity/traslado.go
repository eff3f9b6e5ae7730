package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoTrasladoCompletado: único estado persistido; un traslado solo se escribe
// cuando todos sus ítems se aplicaron dentro de la misma transacción.
const EstadoTrasladoCompletado = "completado"

// ItemTraslado es una línea de un traslado. Nombre y unidad los aporta el caller
// (el orquestador no vuelve a resolverlos contra el catálogo).
type ItemTraslado struct {
	Nombre   string          `json:"nombre"`
	Codigo   int64           `json:"codigo"`
	Unidad   string          `json:"unidad"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// Traslado es el registro de auditoría de un movimiento entre sucursales.
// Inmutable una vez creado.
type Traslado struct {
	ID      string
	Origen  Sucursal
	Destino Sucursal
	Fecha   time.Time
	Notas   string
	Estado  string
	Usuario string
	Items   []ItemTraslado
}
