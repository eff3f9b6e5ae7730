package inventario

import (
	"context"
	"fmt"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

// VistaStock devuelve la proyección stock+catálogo. Con clave nil lista todo; con
// clave "" el pool sin asignar; cualquier otra clave, esa sucursal.
func (uc *InventarioUseCase) VistaStock(ctx context.Context, clave *string) ([]dto.StockVistaDTO, error) {
	stocks, err := uc.stockRepo.Listar(clave)
	if err != nil {
		return nil, err
	}

	codigos := make([]int64, 0, len(stocks))
	vistos := make(map[int64]bool, len(stocks))
	for _, s := range stocks {
		if !vistos[s.CodigoProducto] {
			vistos[s.CodigoProducto] = true
			codigos = append(codigos, s.CodigoProducto)
		}
	}
	productos, err := uc.productoRepo.GetPorCodigos(codigos)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockVistaDTO, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, nuevaStockVista(s, productos[s.CodigoProducto]))
	}
	return out, nil
}

// nuevaStockVista mapea explícitamente campo a campo un registro de stock y su
// producto de catálogo a la proyección; el merge dinámico del diseño anterior queda
// reemplazado por este mapeo tipado.
func nuevaStockVista(s *entity.Stock, p *entity.Producto) dto.StockVistaDTO {
	v := dto.StockVistaDTO{
		ID:             s.ID,
		CodigoProducto: s.CodigoProducto,
		Cantidad:       s.Cantidad,
		CantidadMinima: s.CantidadMinima,
		UpdatedAt:      s.UpdatedAt,
	}
	if p != nil {
		v.NombreProducto = p.Nombre
		v.Unidad = p.Unidad
		v.Marca = p.Marca
		v.ImagenURL = p.ImagenURL
	} else {
		// Stock huérfano de catálogo: visible pero marcado, nunca oculto
		v.NombreProducto = fmt.Sprintf("Producto %d (sin catálogo)", s.CodigoProducto)
	}
	if s.Sucursal != nil {
		v.Sucursal = &dto.SucursalDTO{Nombre: s.Sucursal.Nombre, Direccion: s.Sucursal.Direccion}
	}
	if len(s.PreciosPersonalizados) > 0 {
		precios := make([]dto.PrecioPersonalizadoDTO, 0, len(s.PreciosPersonalizados))
		for _, pp := range s.PreciosPersonalizados {
			precios = append(precios, dto.PrecioPersonalizadoDTO{Nombre: pp.Nombre, Valor: pp.Valor})
		}
		v.PreciosPersonalizados = precios
	}
	if s.CantidadMinima != nil && s.Cantidad.LessThanOrEqual(*s.CantidadMinima) {
		v.BajoMinimo = true
	}
	return v
}
