package inventario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

func newTrasladoUC(m *memStore) *inventario.TrasladoUseCase {
	return inventario.NewTrasladoUseCase(&fakeTxRunner{m: m}, &fakeTrasladoRepo{m: m})
}

var (
	origenCentro = entity.Sucursal{Nombre: "Centro", Direccion: "Calle 10 #5-20"}
	destinoNorte = entity.Sucursal{Nombre: "Norte", Direccion: "Av 30 #45-12"}
)

func TestTrasladar_MueveYConservaElTotal(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	uc := newTrasladoUC(m)

	err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
		Origen:  origenCentro,
		Destino: destinoNorte,
		Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("4"), Nombre: "Cemento", Unidad: "saco"}},
		Usuario: "María",
	})
	require.NoError(t, err)

	origen := m.buscarStock(1001, origenCentro.Clave())
	destino := m.buscarStock(1001, destinoNorte.Clave())
	require.NotNil(t, origen)
	require.NotNil(t, destino)
	assert.True(t, origen.Cantidad.Equal(d("6")))
	assert.True(t, destino.Cantidad.Equal(d("4")))
	assert.True(t, m.totalStock(1001).Equal(d("10")), "un traslado nunca crea ni destruye stock")

	require.Len(t, m.traslados, 1)
	doc := m.traslados[0]
	assert.Equal(t, entity.EstadoTrasladoCompletado, doc.Estado)
	assert.Equal(t, "María", doc.Usuario)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Cemento", doc.Items[0].Nombre)
}

func TestTrasladar_TodoElStockEliminaElOrigen(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	uc := newTrasladoUC(m)

	err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
		Origen:  origenCentro,
		Destino: destinoNorte,
		Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("10")}},
		Usuario: "María",
	})
	require.NoError(t, err)

	assert.Nil(t, m.buscarStock(1001, origenCentro.Clave()), "el origen en cero se elimina")
	assert.True(t, m.buscarStock(1001, destinoNorte.Clave()).Cantidad.Equal(d("10")))
}

func TestTrasladar_InsuficienteRevierteTodo(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	m.seedStock(1002, &origenCentro, d("2"))
	uc := newTrasladoUC(m)

	// El primer ítem alcanza, el segundo no: nada debe aplicarse
	err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
		Origen:  origenCentro,
		Destino: destinoNorte,
		Items: []inventario.ItemTrasladoInput{
			{Codigo: 1001, Cantidad: d("4")},
			{Codigo: 1002, Cantidad: d("5")},
		},
		Usuario: "María",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	var detalle *domain.StockInsuficienteError
	require.True(t, errors.As(err, &detalle))
	assert.Equal(t, int64(1002), detalle.CodigoProducto)
	assert.True(t, detalle.Disponible.Equal(d("2")))
	assert.True(t, detalle.Solicitada.Equal(d("5")))

	// Rollback total: ni el ítem válido se movió, ni quedó documento
	assert.True(t, m.buscarStock(1001, origenCentro.Clave()).Cantidad.Equal(d("10")))
	assert.True(t, m.buscarStock(1002, origenCentro.Clave()).Cantidad.Equal(d("2")))
	assert.Nil(t, m.buscarStock(1001, destinoNorte.Clave()))
	assert.Empty(t, m.traslados, "un traslado rechazado no deja documento de movimiento")
}

func TestTrasladar_OrigenAusenteRevierteTodo(t *testing.T) {
	m := newMemStore()
	uc := newTrasladoUC(m)

	err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
		Origen:  origenCentro,
		Destino: destinoNorte,
		Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("1")}},
		Usuario: "María",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	var detalle *domain.StockInsuficienteError
	require.True(t, errors.As(err, &detalle))
	assert.True(t, detalle.Disponible.IsZero(), "origen ausente reporta disponible cero")
	assert.Empty(t, m.traslados)
}

func TestTrasladar_AlPoolSinAsignar(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	uc := newTrasladoUC(m)

	err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
		Origen:  origenCentro,
		Destino: entity.Sucursal{}, // descarga al pool
		Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("3")}},
		Usuario: "María",
	})
	require.NoError(t, err)

	pool := m.buscarStock(1001, "")
	require.NotNil(t, pool)
	assert.True(t, pool.Cantidad.Equal(d("3")))
	assert.Nil(t, pool.Sucursal, "el stock del pool no referencia sucursal")
}

func TestTrasladar_Validaciones(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	uc := newTrasladoUC(m)

	casos := []inventario.TrasladoInput{
		// Mismo origen y destino tras normalizar
		{
			Origen:  origenCentro,
			Destino: entity.Sucursal{Nombre: "  CENTRO ", Direccion: "calle 10  #5-20"},
			Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("1")}},
			Usuario: "María",
		},
		// Sin ítems
		{Origen: origenCentro, Destino: destinoNorte, Usuario: "María"},
		// Ítem con cantidad no positiva
		{
			Origen:  origenCentro,
			Destino: destinoNorte,
			Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("0")}},
			Usuario: "María",
		},
		// Ítem sin código
		{
			Origen:  origenCentro,
			Destino: destinoNorte,
			Items:   []inventario.ItemTrasladoInput{{Codigo: 0, Cantidad: d("1")}},
			Usuario: "María",
		},
		// Sin usuario
		{
			Origen:  origenCentro,
			Destino: destinoNorte,
			Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("1")}},
		},
	}
	for _, in := range casos {
		err := uc.Trasladar(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.True(t, m.buscarStock(1001, origenCentro.Clave()).Cantidad.Equal(d("10")))
	assert.Empty(t, m.traslados)
}

func TestListarTraslados_MasRecientePrimero(t *testing.T) {
	m := newMemStore()
	m.seedStock(1001, &origenCentro, d("10"))
	uc := newTrasladoUC(m)

	for _, notas := range []string{"primero", "segundo"} {
		err := uc.Trasladar(context.Background(), inventario.TrasladoInput{
			Origen:  origenCentro,
			Destino: destinoNorte,
			Items:   []inventario.ItemTrasladoInput{{Codigo: 1001, Cantidad: d("1")}},
			Notas:   notas,
			Usuario: "María",
		})
		require.NoError(t, err)
	}

	out, err := uc.ListarTraslados(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "segundo", out[0].Notas)
	assert.Equal(t, "primero", out[1].Notas)
}
