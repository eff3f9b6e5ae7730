package inventario

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/domain"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

// InventarioUseCase cubre las mutaciones de una sola ubicación (carga manual, retiro,
// actualización de campos) y las lecturas de registros y vista de stock. Cada mutación
// corre dentro de una transacción con bloqueo de fila (SELECT FOR UPDATE) y deja
// exactamente un registro de auditoría.
type InventarioUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	stockRepo    repository.StockRepository
	registroRepo repository.RegistroRepository
}

// NewInventarioUseCase construye el caso de uso. Los repos aquí van atados al pool
// (lecturas y validaciones); las mutaciones usan los repos de la tx.
func NewInventarioUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	stockRepo repository.StockRepository,
	registroRepo repository.RegistroRepository,
) *InventarioUseCase {
	return &InventarioUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		stockRepo:    stockRepo,
		registroRepo: registroRepo,
	}
}

// CargaManualInput entrada para una carga manual de stock.
type CargaManualInput struct {
	CodigoProducto int64
	Cantidad       decimal.Decimal
	Sucursal       *entity.Sucursal
	Motivo         string
	Usuario        string
}

// CargaManual suma cantidad al registro (código, sucursal), creándolo si no existe.
// El producto debe existir en el catálogo principal o en el de productos propios.
// Devuelve true si el registro de stock fue creado.
func (uc *InventarioUseCase) CargaManual(ctx context.Context, in CargaManualInput) (bool, error) {
	if in.CodigoProducto == 0 || !in.Cantidad.GreaterThan(decimal.Zero) || in.Usuario == "" {
		return false, domain.ErrInvalidInput
	}

	// Resolver existencia: catálogo principal, luego productos propios
	producto, err := uc.productoRepo.GetPorCodigo(in.CodigoProducto)
	if err != nil {
		return false, err
	}
	if producto == nil {
		producto, err = uc.productoRepo.GetPropioPorCodigo(in.CodigoProducto)
		if err != nil {
			return false, err
		}
	}
	if producto == nil {
		return false, domain.ErrNotFound
	}

	motivo := in.Motivo
	if motivo == "" {
		motivo = "Carga manual"
	}

	var creado bool
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		registroRepo repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		_ repository.RecetaRepository,
	) error {
		var err error
		creado, err = stockRepo.UpsertIncremento(in.CodigoProducto, in.Sucursal, in.Cantidad)
		if err != nil {
			return err
		}
		return registroRepo.Crear(&entity.RegistroInventario{
			ID:             uuid.New().String(),
			CodigoProducto: in.CodigoProducto,
			Cantidad:       in.Cantidad,
			Tipo:           entity.TipoRegistroEntrada,
			Motivo:         motivo,
			Usuario:        in.Usuario,
			Fecha:          time.Now(),
		})
	})
	return creado, err
}

// RetiroInput entrada para un retiro de stock.
type RetiroInput struct {
	CodigoProducto int64
	Cantidad       decimal.Decimal
	Sucursal       *entity.Sucursal
	Motivo         string
	Usuario        string
}

// Retiro descuenta cantidad del registro (código, sucursal). Si el registro no existe
// devuelve ErrNotFound; si la cantidad disponible no alcanza, StockInsuficienteError
// (política única: nunca se descuenta más de lo disponible). Si el registro queda
// exactamente en cero, se elimina. Devuelve la cantidad restante y si se eliminó.
func (uc *InventarioUseCase) Retiro(ctx context.Context, in RetiroInput) (decimal.Decimal, bool, error) {
	if in.CodigoProducto == 0 || in.Cantidad.LessThan(decimal.NewFromInt(1)) || in.Motivo == "" || in.Usuario == "" {
		return decimal.Zero, false, domain.ErrInvalidInput
	}

	clave := in.Sucursal.Clave()
	var (
		restante  decimal.Decimal
		eliminado bool
	)
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		registroRepo repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		_ repository.RecetaRepository,
	) error {
		// Bloquea la fila para que la verificación y el decremento no compitan
		stock, err := stockRepo.GetForUpdate(in.CodigoProducto, clave)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if stock.Cantidad.LessThan(in.Cantidad) {
			return &domain.StockInsuficienteError{
				CodigoProducto: in.CodigoProducto,
				Disponible:     stock.Cantidad,
				Solicitada:     in.Cantidad,
			}
		}
		restante, eliminado, err = stockRepo.Decrementar(in.CodigoProducto, clave, in.Cantidad)
		if err != nil {
			return err
		}
		return registroRepo.Crear(&entity.RegistroInventario{
			ID:             uuid.New().String(),
			CodigoProducto: in.CodigoProducto,
			Cantidad:       in.Cantidad,
			Tipo:           entity.TipoRegistroSalida,
			Motivo:         in.Motivo,
			Usuario:        in.Usuario,
			Fecha:          time.Now(),
		})
	})
	if err != nil {
		return decimal.Zero, false, err
	}
	return restante, eliminado, nil
}

// ActualizarStockInput entrada para la actualización parcial de un registro de stock.
// Cantidad es obligatoria; el resto solo se sobrescribe si viene presente.
type ActualizarStockInput struct {
	ID                    string
	Cantidad              decimal.Decimal
	CantidadMinima        *decimal.Decimal
	PreciosPersonalizados *[]entity.PrecioPersonalizado
	ImagenURL             *string
	Usuario               string
}

// ActualizarStock sobrescribe los campos presentes del registro. La imagen no se
// guarda por sucursal: se propaga al producto de catálogo. Deja un registro de
// auditoría nombrando los campos modificados, con el delta de cantidad.
func (uc *InventarioUseCase) ActualizarStock(ctx context.Context, in ActualizarStockInput) error {
	if in.ID == "" || in.Cantidad.IsNegative() || in.Usuario == "" {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		registroRepo repository.RegistroRepository,
		_ repository.TrasladoRepository,
		productoRepo repository.ProductoRepository,
		_ repository.RecetaRepository,
	) error {
		stock, err := stockRepo.GetPorID(in.ID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}

		campos := []string{"cantidad"}
		var precios []entity.PrecioPersonalizado
		if in.PreciosPersonalizados != nil {
			precios = *in.PreciosPersonalizados
			campos = append(campos, "precios_personalizados")
		}
		if in.CantidadMinima != nil {
			campos = append(campos, "cantidad_minima")
		}
		if err := stockRepo.ActualizarCampos(in.ID, in.Cantidad, in.CantidadMinima, precios); err != nil {
			return err
		}

		if in.ImagenURL != nil {
			campos = append(campos, "imagen")
			if err := productoRepo.ActualizarImagen(stock.CodigoProducto, *in.ImagenURL); err != nil {
				return err
			}
		}

		// El delta de cantidad determina el tipo del registro
		delta := in.Cantidad.Sub(stock.Cantidad)
		tipo := entity.TipoRegistroEntrada
		if delta.IsNegative() {
			tipo = entity.TipoRegistroSalida
		}
		return registroRepo.Crear(&entity.RegistroInventario{
			ID:             uuid.New().String(),
			CodigoProducto: stock.CodigoProducto,
			Cantidad:       delta.Abs(),
			Tipo:           tipo,
			Motivo:         "Actualización de stock: " + strings.Join(campos, ", "),
			Usuario:        in.Usuario,
			Fecha:          time.Now(),
		})
	})
}

// ListarRegistros devuelve los registros de inventario del más reciente al más antiguo.
func (uc *InventarioUseCase) ListarRegistros(ctx context.Context, limit, offset int) ([]dto.RegistroInventarioDTO, error) {
	registros, err := uc.registroRepo.Listar(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroInventarioDTO, 0, len(registros))
	for _, r := range registros {
		out = append(out, dto.RegistroInventarioDTO{
			ID:             r.ID,
			CodigoProducto: r.CodigoProducto,
			Cantidad:       r.Cantidad,
			Tipo:           r.Tipo,
			Motivo:         r.Motivo,
			Usuario:        r.Usuario,
			Fecha:          r.Fecha,
		})
	}
	return out, nil
}
