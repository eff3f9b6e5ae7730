package inventario

import (
	"context"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

// Adaptadores request HTTP -> input de caso de uso. Usar desde handlers que ya
// extrajeron el usuario del token.

func sucursalDesdeDTO(d *dto.SucursalDTO) *entity.Sucursal {
	if d == nil {
		return nil
	}
	s := entity.Sucursal{Nombre: d.Nombre, Direccion: d.Direccion}
	if s.EsVacia() {
		return nil
	}
	return &s
}

// CargaManualFromRequest adapta el request HTTP a CargaManual(ctx, CargaManualInput).
func (uc *InventarioUseCase) CargaManualFromRequest(ctx context.Context, usuario string, in dto.CargaManualRequest) (bool, error) {
	return uc.CargaManual(ctx, CargaManualInput{
		CodigoProducto: in.CodigoProducto,
		Cantidad:       in.Cantidad,
		Sucursal:       sucursalDesdeDTO(in.Sucursal),
		Motivo:         in.Motivo,
		Usuario:        usuario,
	})
}

// RetiroFromRequest adapta el request HTTP a Retiro(ctx, RetiroInput).
func (uc *InventarioUseCase) RetiroFromRequest(ctx context.Context, usuario string, in dto.RetiroRequest) (dto.RetiroResponse, error) {
	restante, eliminado, err := uc.Retiro(ctx, RetiroInput{
		CodigoProducto: in.CodigoProducto,
		Cantidad:       in.Cantidad,
		Sucursal:       sucursalDesdeDTO(in.Sucursal),
		Motivo:         in.Motivo,
		Usuario:        usuario,
	})
	if err != nil {
		return dto.RetiroResponse{}, err
	}
	resp := dto.RetiroResponse{Restante: restante, Eliminado: eliminado}
	if eliminado {
		resp.Message = "stock retirado por completo; el registro fue eliminado"
	} else {
		resp.Message = "retiro registrado; quedan " + restante.String() + " unidades"
	}
	return resp, nil
}

// ActualizarStockFromRequest adapta el request HTTP a ActualizarStock.
func (uc *InventarioUseCase) ActualizarStockFromRequest(ctx context.Context, id, usuario string, in dto.ActualizarStockRequest) error {
	input := ActualizarStockInput{
		ID:             id,
		Cantidad:       in.Cantidad,
		CantidadMinima: in.CantidadMinima,
		ImagenURL:      in.ImagenURL,
		Usuario:        usuario,
	}
	if in.PreciosPersonalizados != nil {
		precios := make([]entity.PrecioPersonalizado, 0, len(*in.PreciosPersonalizados))
		for _, p := range *in.PreciosPersonalizados {
			precios = append(precios, entity.PrecioPersonalizado{Nombre: p.Nombre, Valor: p.Valor})
		}
		input.PreciosPersonalizados = &precios
	}
	return uc.ActualizarStock(ctx, input)
}

// TrasladarFromRequest adapta el request HTTP a Trasladar(ctx, TrasladoInput).
func (uc *TrasladoUseCase) TrasladarFromRequest(ctx context.Context, usuario string, in dto.TrasladoRequest) error {
	items := make([]ItemTrasladoInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, ItemTrasladoInput{
			Codigo:   item.Codigo,
			Cantidad: item.Cantidad,
			Nombre:   item.Nombre,
			Unidad:   item.Unidad,
		})
	}
	return uc.Trasladar(ctx, TrasladoInput{
		Origen:  entity.Sucursal{Nombre: in.Origen.Nombre, Direccion: in.Origen.Direccion},
		Destino: entity.Sucursal{Nombre: in.Destino.Nombre, Direccion: in.Destino.Direccion},
		Items:   items,
		Notas:   in.Notas,
		Usuario: usuario,
	})
}

// AplicarFromRequest adapta el request HTTP a Aplicar.
func (uc *RecetaUseCase) AplicarFromRequest(ctx context.Context, id, usuario string, in dto.AplicarRecetaRequest) error {
	return uc.Aplicar(ctx, id, sucursalDesdeDTO(in.Sucursal), usuario)
}

// CrearFromRequest adapta el request HTTP a Crear.
func (uc *RecetaUseCase) CrearFromRequest(ctx context.Context, usuario string, in dto.RecetaRequest) (string, error) {
	return uc.Crear(ctx, recetaInputDesdeRequest(usuario, in))
}

// ActualizarFromRequest adapta el request HTTP a Actualizar.
func (uc *RecetaUseCase) ActualizarFromRequest(ctx context.Context, id, usuario string, in dto.RecetaRequest) error {
	return uc.Actualizar(ctx, id, recetaInputDesdeRequest(usuario, in))
}

func recetaInputDesdeRequest(usuario string, in dto.RecetaRequest) RecetaInput {
	return RecetaInput{
		Nombre:        in.Nombre,
		CodigoPadre:   in.CodigoPadre,
		CantidadPadre: in.CantidadPadre,
		CodigoHijo:    in.CodigoHijo,
		CantidadHijo:  in.CantidadHijo,
		Usuario:       usuario,
	}
}
