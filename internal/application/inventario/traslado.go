package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

// TrasladoUseCase mueve cantidades entre el stock de dos sucursales. Todo el traslado
// (decrementos en origen, incrementos en destino y el documento de movimiento) corre
// en una sola transacción: si cualquier ítem no tiene stock suficiente, no se aplica
// ninguno y no queda documento.
type TrasladoUseCase struct {
	txRunner     TxRunner
	trasladoRepo repository.TrasladoRepository
}

// NewTrasladoUseCase construye el caso de uso.
func NewTrasladoUseCase(txRunner TxRunner, trasladoRepo repository.TrasladoRepository) *TrasladoUseCase {
	return &TrasladoUseCase{txRunner: txRunner, trasladoRepo: trasladoRepo}
}

// ItemTrasladoInput línea de un traslado. Nombre y unidad los aporta el caller y se
// copian tal cual al documento (no se vuelven a resolver contra el catálogo).
type ItemTrasladoInput struct {
	Codigo   int64
	Cantidad decimal.Decimal
	Nombre   string
	Unidad   string
}

// TrasladoInput entrada para un traslado. Una sucursal vacía referencia el pool sin
// asignar, que en la tabla de stock se identifica por la clave centinela vacía.
type TrasladoInput struct {
	Origen  entity.Sucursal
	Destino entity.Sucursal
	Items   []ItemTrasladoInput
	Notas   string
	Usuario string
}

// Trasladar aplica el traslado ítem por ítem dentro de una transacción y persiste el
// documento de movimiento con estado "completado" antes del commit.
func (uc *TrasladoUseCase) Trasladar(ctx context.Context, in TrasladoInput) error {
	if in.Usuario == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	claveOrigen := entity.ClaveSucursal(in.Origen.Nombre, in.Origen.Direccion)
	claveDestino := entity.ClaveSucursal(in.Destino.Nombre, in.Destino.Direccion)
	if claveOrigen == claveDestino {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Codigo == 0 || !item.Cantidad.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}

	// Destino nil cuando el traslado descarga al pool sin asignar
	var sucursalDestino *entity.Sucursal
	if !in.Destino.EsVacia() {
		destino := in.Destino
		sucursalDestino = &destino
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.RegistroRepository,
		trasladoRepo repository.TrasladoRepository,
		_ repository.ProductoRepository,
		_ repository.RecetaRepository,
	) error {
		items := make([]entity.ItemTraslado, 0, len(in.Items))
		for _, item := range in.Items {
			// Bloquea la fila de origen: la verificación y el decremento no compiten
			origen, err := stockRepo.GetForUpdate(item.Codigo, claveOrigen)
			if err != nil {
				return err
			}
			disponible := decimal.Zero
			if origen != nil {
				disponible = origen.Cantidad
			}
			if origen == nil || disponible.LessThan(item.Cantidad) {
				return &domain.StockInsuficienteError{
					CodigoProducto: item.Codigo,
					Disponible:     disponible,
					Solicitada:     item.Cantidad,
				}
			}
			if _, _, err := stockRepo.Decrementar(item.Codigo, claveOrigen, item.Cantidad); err != nil {
				return err
			}
			if _, err := stockRepo.UpsertIncremento(item.Codigo, sucursalDestino, item.Cantidad); err != nil {
				return err
			}
			items = append(items, entity.ItemTraslado{
				Nombre:   item.Nombre,
				Codigo:   item.Codigo,
				Unidad:   item.Unidad,
				Cantidad: item.Cantidad,
			})
		}

		return trasladoRepo.Crear(&entity.Traslado{
			ID:      uuid.New().String(),
			Origen:  in.Origen,
			Destino: in.Destino,
			Fecha:   time.Now(),
			Notas:   in.Notas,
			Estado:  entity.EstadoTrasladoCompletado,
			Usuario: in.Usuario,
			Items:   items,
		})
	})
}

// ListarTraslados devuelve los traslados del más reciente al más antiguo.
func (uc *TrasladoUseCase) ListarTraslados(ctx context.Context, limit, offset int) ([]dto.TrasladoDTO, error) {
	traslados, err := uc.trasladoRepo.Listar(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrasladoDTO, 0, len(traslados))
	for _, t := range traslados {
		items := make([]dto.ItemTrasladoDTO, 0, len(t.Items))
		for _, item := range t.Items {
			items = append(items, dto.ItemTrasladoDTO{
				Nombre:   item.Nombre,
				Codigo:   item.Codigo,
				Unidad:   item.Unidad,
				Cantidad: item.Cantidad,
			})
		}
		out = append(out, dto.TrasladoDTO{
			ID:      t.ID,
			Origen:  dto.SucursalDTO{Nombre: t.Origen.Nombre, Direccion: t.Origen.Direccion},
			Destino: dto.SucursalDTO{Nombre: t.Destino.Nombre, Direccion: t.Destino.Direccion},
			Fecha:   t.Fecha,
			Notas:   t.Notas,
			Estado:  t.Estado,
			Usuario: t.Usuario,
			Items:   items,
		})
	}
	return out, nil
}
