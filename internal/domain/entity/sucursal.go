package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Sucursal identifica una ubicación física de la cadena. Dos sucursales son la misma
// ubicación si nombre y dirección coinciden tras normalizar; el stock sin sucursal
// asignada se modela con Sucursal nil (pool consolidado).
type Sucursal struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

// Clave devuelve la clave canónica de la sucursal. Para un puntero nil (stock sin
// asignar) la clave es la cadena vacía, que es el valor centinela en la tabla stock.
func (s *Sucursal) Clave() string {
	if s == nil {
		return ""
	}
	return ClaveSucursal(s.Nombre, s.Direccion)
}

// EsVacia indica si la sucursal no tiene datos (equivale al pool sin asignar).
func (s *Sucursal) EsVacia() bool {
	return s == nil || (strings.TrimSpace(s.Nombre) == "" && strings.TrimSpace(s.Direccion) == "")
}

// ClaveSucursal normaliza nombre y dirección a una clave estable: NFC para unificar
// representaciones Unicode (tildes compuestas vs precompuestas), case folding y
// colapso de espacios. Así "Bodega Central" y "bodega  central" son la misma sucursal.
func ClaveSucursal(nombre, direccion string) string {
	n := normalizar(nombre)
	d := normalizar(direccion)
	if n == "" && d == "" {
		return ""
	}
	return n + "|" + d
}

var plegador = cases.Fold()

func normalizar(s string) string {
	s = norm.NFC.String(s)
	s = plegador.String(s)
	return strings.Join(strings.Fields(s), " ")
}
