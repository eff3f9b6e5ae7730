package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

func TestClaveSucursal_NormalizaMayusculasYEspacios(t *testing.T) {
	a := entity.ClaveSucursal("Bodega Central", "Calle 10 #5-20")
	b := entity.ClaveSucursal("  bodega   CENTRAL ", "calle 10  #5-20")
	assert.Equal(t, a, b, "mayúsculas y espacios repetidos no distinguen sucursales")
}

func TestClaveSucursal_NormalizaUnicode(t *testing.T) {
	// Tildes precompuestas (U+00E9) vs combinadas (e + U+0301)
	a := entity.ClaveSucursal("Ferretería José", "Cra 7")
	b := entity.ClaveSucursal("Ferretería José", "Cra 7")
	assert.Equal(t, a, b, "ambas representaciones Unicode deben producir la misma clave")
}

func TestClaveSucursal_DistingueSucursalesDistintas(t *testing.T) {
	a := entity.ClaveSucursal("Centro", "Calle 10")
	b := entity.ClaveSucursal("Centro", "Calle 11")
	assert.NotEqual(t, a, b, "la dirección forma parte de la identidad")

	c := entity.ClaveSucursal("Norte", "Calle 10")
	assert.NotEqual(t, a, c)
}

func TestClaveSucursal_VaciaEsElPool(t *testing.T) {
	assert.Equal(t, "", entity.ClaveSucursal("", ""))
	assert.Equal(t, "", entity.ClaveSucursal("   ", " "))

	var nula *entity.Sucursal
	assert.Equal(t, "", nula.Clave(), "puntero nil equivale al pool sin asignar")
}

func TestClaveSucursal_SoloUnCampoNoEsVacia(t *testing.T) {
	// Nombre sin dirección sigue siendo una sucursal identificable
	clave := entity.ClaveSucursal("Centro", "")
	assert.NotEqual(t, "", clave)
	assert.Equal(t, "centro|", clave)
}

func TestSucursal_EsVacia(t *testing.T) {
	var nula *entity.Sucursal
	assert.True(t, nula.EsVacia())
	assert.True(t, (&entity.Sucursal{Nombre: "  "}).EsVacia())
	assert.False(t, (&entity.Sucursal{Nombre: "Centro"}).EsVacia())
}
