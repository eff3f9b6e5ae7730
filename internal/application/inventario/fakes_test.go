package inventario_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

// memStore es el estado compartido de los repos en memoria. El fakeTxRunner toma un
// snapshot antes de cada transacción y lo restaura si la función devuelve error, para
// que los tests puedan afirmar el rollback total igual que con PostgreSQL.
type memStore struct {
	stocks           []*entity.Stock
	registros        []*entity.RegistroInventario
	traslados        []*entity.Traslado
	recetas          []*entity.Receta
	registrosRecetas []*entity.RegistroReceta
	productos        map[int64]*entity.Producto
	propios          map[int64]*entity.Producto
}

func newMemStore() *memStore {
	return &memStore{
		productos: make(map[int64]*entity.Producto),
		propios:   make(map[int64]*entity.Producto),
	}
}

func (m *memStore) clone() *memStore {
	c := newMemStore()
	for _, s := range m.stocks {
		c.stocks = append(c.stocks, cloneStock(s))
	}
	for _, r := range m.registros {
		cp := *r
		c.registros = append(c.registros, &cp)
	}
	for _, t := range m.traslados {
		cp := *t
		cp.Items = append([]entity.ItemTraslado(nil), t.Items...)
		c.traslados = append(c.traslados, &cp)
	}
	for _, r := range m.recetas {
		cp := *r
		c.recetas = append(c.recetas, &cp)
	}
	for _, r := range m.registrosRecetas {
		cp := *r
		c.registrosRecetas = append(c.registrosRecetas, &cp)
	}
	for k, v := range m.productos {
		cp := *v
		c.productos[k] = &cp
	}
	for k, v := range m.propios {
		cp := *v
		c.propios[k] = &cp
	}
	return c
}

func (m *memStore) restore(snap *memStore) {
	*m = *snap
}

func cloneStock(s *entity.Stock) *entity.Stock {
	cp := *s
	if s.Sucursal != nil {
		suc := *s.Sucursal
		cp.Sucursal = &suc
	}
	if s.CantidadMinima != nil {
		min := *s.CantidadMinima
		cp.CantidadMinima = &min
	}
	cp.PreciosPersonalizados = append([]entity.PrecioPersonalizado(nil), s.PreciosPersonalizados...)
	return &cp
}

func (m *memStore) buscarStock(codigo int64, clave string) *entity.Stock {
	for _, s := range m.stocks {
		if s.CodigoProducto == codigo && s.ClaveSucursal() == clave {
			return s
		}
	}
	return nil
}

func (m *memStore) eliminarStock(id string) {
	for i, s := range m.stocks {
		if s.ID == id {
			m.stocks = append(m.stocks[:i], m.stocks[i+1:]...)
			return
		}
	}
}

// seedStock agrega un registro de stock directamente (estado inicial del test).
func (m *memStore) seedStock(codigo int64, sucursal *entity.Sucursal, cantidad decimal.Decimal) *entity.Stock {
	s := &entity.Stock{
		ID:             uuid.New().String(),
		CodigoProducto: codigo,
		Sucursal:       sucursal,
		Cantidad:       cantidad,
	}
	m.stocks = append(m.stocks, s)
	return s
}

// seedProducto agrega un producto al catálogo principal.
func (m *memStore) seedProducto(codigo int64, nombre, unidad string) {
	m.productos[codigo] = &entity.Producto{Codigo: codigo, Nombre: nombre, Unidad: unidad}
}

// totalStock suma las cantidades de todos los registros de un producto.
func (m *memStore) totalStock(codigo int64) decimal.Decimal {
	total := decimal.Zero
	for _, s := range m.stocks {
		if s.CodigoProducto == codigo {
			total = total.Add(s.Cantidad)
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct{ m *memStore }

func (r *fakeStockRepo) GetPorID(id string) (*entity.Stock, error) {
	for _, s := range r.m.stocks {
		if s.ID == id {
			return cloneStock(s), nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Get(codigo int64, clave string) (*entity.Stock, error) {
	if s := r.m.buscarStock(codigo, clave); s != nil {
		return cloneStock(s), nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(codigo int64, clave string) (*entity.Stock, error) {
	return r.Get(codigo, clave)
}

func (r *fakeStockRepo) UpsertIncremento(codigo int64, sucursal *entity.Sucursal, cantidad decimal.Decimal) (bool, error) {
	if s := r.m.buscarStock(codigo, sucursal.Clave()); s != nil {
		s.Cantidad = s.Cantidad.Add(cantidad)
		return false, nil
	}
	r.m.seedStock(codigo, sucursal, cantidad)
	return true, nil
}

func (r *fakeStockRepo) Decrementar(codigo int64, clave string, cantidad decimal.Decimal) (decimal.Decimal, bool, error) {
	s := r.m.buscarStock(codigo, clave)
	if s == nil || s.Cantidad.LessThan(cantidad) {
		return decimal.Zero, false, domain.ErrStockInsuficiente
	}
	s.Cantidad = s.Cantidad.Sub(cantidad)
	if s.Cantidad.IsZero() {
		r.m.eliminarStock(s.ID)
		return decimal.Zero, true, nil
	}
	return s.Cantidad, false, nil
}

func (r *fakeStockRepo) ActualizarCampos(id string, cantidad decimal.Decimal, cantidadMinima *decimal.Decimal, precios []entity.PrecioPersonalizado) error {
	for _, s := range r.m.stocks {
		if s.ID == id {
			if cantidad.IsZero() {
				r.m.eliminarStock(id)
				return nil
			}
			s.Cantidad = cantidad
			if cantidadMinima != nil {
				min := *cantidadMinima
				s.CantidadMinima = &min
			}
			if precios != nil {
				s.PreciosPersonalizados = append([]entity.PrecioPersonalizado(nil), precios...)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) Listar(clave *string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.m.stocks {
		if clave == nil || s.ClaveSucursal() == *clave {
			out = append(out, cloneStock(s))
		}
	}
	return out, nil
}

type fakeProductoRepo struct{ m *memStore }

func (r *fakeProductoRepo) GetPorCodigo(codigo int64) (*entity.Producto, error) {
	if p, ok := r.m.productos[codigo]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetPropioPorCodigo(codigo int64) (*entity.Producto, error) {
	if p, ok := r.m.propios[codigo]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetPorCodigos(codigos []int64) (map[int64]*entity.Producto, error) {
	out := make(map[int64]*entity.Producto, len(codigos))
	for _, c := range codigos {
		if p, ok := r.m.propios[c]; ok {
			cp := *p
			out[c] = &cp
		}
		if p, ok := r.m.productos[c]; ok {
			cp := *p
			out[c] = &cp
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ActualizarImagen(codigo int64, imagenURL string) error {
	if p, ok := r.m.productos[codigo]; ok {
		p.ImagenURL = imagenURL
		return nil
	}
	if p, ok := r.m.propios[codigo]; ok {
		p.ImagenURL = imagenURL
	}
	return nil
}

type fakeRegistroRepo struct{ m *memStore }

func (r *fakeRegistroRepo) Crear(reg *entity.RegistroInventario) error {
	cp := *reg
	r.m.registros = append(r.m.registros, &cp)
	return nil
}

func (r *fakeRegistroRepo) Listar(limit, offset int) ([]*entity.RegistroInventario, error) {
	var out []*entity.RegistroInventario
	for i := len(r.m.registros) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *r.m.registros[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTrasladoRepo struct{ m *memStore }

func (r *fakeTrasladoRepo) Crear(t *entity.Traslado) error {
	cp := *t
	cp.Items = append([]entity.ItemTraslado(nil), t.Items...)
	r.m.traslados = append(r.m.traslados, &cp)
	return nil
}

func (r *fakeTrasladoRepo) Listar(limit, offset int) ([]*entity.Traslado, error) {
	var out []*entity.Traslado
	for i := len(r.m.traslados) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *r.m.traslados[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeRecetaRepo struct{ m *memStore }

func (r *fakeRecetaRepo) Crear(receta *entity.Receta) error {
	for _, existente := range r.m.recetas {
		if existente.Nombre == receta.Nombre {
			return domain.ErrDuplicate
		}
	}
	cp := *receta
	r.m.recetas = append(r.m.recetas, &cp)
	return nil
}

func (r *fakeRecetaRepo) GetPorID(id string) (*entity.Receta, error) {
	for _, receta := range r.m.recetas {
		if receta.ID == id {
			cp := *receta
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRecetaRepo) Actualizar(receta *entity.Receta) error {
	for i, existente := range r.m.recetas {
		if existente.ID == receta.ID {
			cp := *receta
			r.m.recetas[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeRecetaRepo) Eliminar(id string) error {
	for i, receta := range r.m.recetas {
		if receta.ID == id {
			r.m.recetas = append(r.m.recetas[:i], r.m.recetas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRecetaRepo) Listar() ([]*entity.Receta, error) {
	var out []*entity.Receta
	for _, receta := range r.m.recetas {
		cp := *receta
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRecetaRepo) CrearRegistro(reg *entity.RegistroReceta) error {
	cp := *reg
	r.m.registrosRecetas = append(r.m.registrosRecetas, &cp)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner en memoria con rollback por snapshot
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ m *memStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	registroRepo repository.RegistroRepository,
	trasladoRepo repository.TrasladoRepository,
	productoRepo repository.ProductoRepository,
	recetaRepo repository.RecetaRepository,
) error) error {
	snap := tx.m.clone()
	err := fn(
		&fakeStockRepo{m: tx.m},
		&fakeRegistroRepo{m: tx.m},
		&fakeTrasladoRepo{m: tx.m},
		&fakeProductoRepo{m: tx.m},
		&fakeRecetaRepo{m: tx.m},
	)
	if err != nil {
		tx.m.restore(snap)
	}
	return err
}

// d construye un decimal desde string (pánico si es inválido).
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
