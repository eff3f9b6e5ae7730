package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receta es una regla fija de conversión: consume CantidadPadre unidades del
// producto padre y produce CantidadHijo unidades del producto hijo.
type Receta struct {
	ID            string
	Nombre        string
	CodigoPadre   int64
	CantidadPadre decimal.Decimal
	CodigoHijo    int64
	CantidadHijo  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Acciones auditadas sobre recetas.
const (
	AccionRecetaCrear      = "CREAR"
	AccionRecetaActualizar = "ACTUALIZAR"
	AccionRecetaEliminar   = "ELIMINAR"
	AccionRecetaAplicar    = "APLICAR"
)

// RegistroReceta es el evento de auditoría de una acción sobre recetas. Append-only.
type RegistroReceta struct {
	ID           string
	Accion       string
	NombreReceta string
	Usuario      string
	Fecha        time.Time
}
