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

// RecetaUseCase administra recetas de conversión y su aplicación: consumir stock del
// producto padre para producir stock del producto hijo según una razón fija.
//
// porSucursal decide el alcance del stock al aplicar (pregunta abierta del diseño
// original, resuelta por configuración): en false la receta opera sobre el pool
// consolidado sin sucursal; en true exige sucursal y resuelve padre e hijo allí.
type RecetaUseCase struct {
	txRunner    TxRunner
	recetaRepo  repository.RecetaRepository
	porSucursal bool
}

// NewRecetaUseCase construye el caso de uso.
func NewRecetaUseCase(txRunner TxRunner, recetaRepo repository.RecetaRepository, porSucursal bool) *RecetaUseCase {
	return &RecetaUseCase{txRunner: txRunner, recetaRepo: recetaRepo, porSucursal: porSucursal}
}

// RecetaInput entrada para crear o actualizar una receta.
type RecetaInput struct {
	Nombre        string
	CodigoPadre   int64
	CantidadPadre decimal.Decimal
	CodigoHijo    int64
	CantidadHijo  decimal.Decimal
	Usuario       string
}

func (in RecetaInput) validar() error {
	if in.Nombre == "" || in.Usuario == "" {
		return domain.ErrInvalidInput
	}
	if in.CodigoPadre == 0 || in.CodigoHijo == 0 || in.CodigoPadre == in.CodigoHijo {
		return domain.ErrInvalidInput
	}
	if !in.CantidadPadre.GreaterThan(decimal.Zero) || !in.CantidadHijo.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Crear registra la receta y su evento de auditoría en una transacción.
func (uc *RecetaUseCase) Crear(ctx context.Context, in RecetaInput) (string, error) {
	if err := in.validar(); err != nil {
		return "", err
	}
	id := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockRepository,
		_ repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		recetaRepo repository.RecetaRepository,
	) error {
		now := time.Now()
		if err := recetaRepo.Crear(&entity.Receta{
			ID:            id,
			Nombre:        in.Nombre,
			CodigoPadre:   in.CodigoPadre,
			CantidadPadre: in.CantidadPadre,
			CodigoHijo:    in.CodigoHijo,
			CantidadHijo:  in.CantidadHijo,
			CreatedAt:     now,
			UpdatedAt:     now,
		}); err != nil {
			return err
		}
		return uc.auditar(recetaRepo, entity.AccionRecetaCrear, in.Nombre, in.Usuario)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Actualizar sobrescribe la receta y deja el evento de auditoría.
func (uc *RecetaUseCase) Actualizar(ctx context.Context, id string, in RecetaInput) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := in.validar(); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.StockRepository,
		_ repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		recetaRepo repository.RecetaRepository,
	) error {
		receta, err := recetaRepo.GetPorID(id)
		if err != nil {
			return err
		}
		if receta == nil {
			return domain.ErrNotFound
		}
		receta.Nombre = in.Nombre
		receta.CodigoPadre = in.CodigoPadre
		receta.CantidadPadre = in.CantidadPadre
		receta.CodigoHijo = in.CodigoHijo
		receta.CantidadHijo = in.CantidadHijo
		receta.UpdatedAt = time.Now()
		if err := recetaRepo.Actualizar(receta); err != nil {
			return err
		}
		return uc.auditar(recetaRepo, entity.AccionRecetaActualizar, receta.Nombre, in.Usuario)
	})
}

// Eliminar borra la receta y deja el evento de auditoría.
func (uc *RecetaUseCase) Eliminar(ctx context.Context, id, usuario string) error {
	if id == "" || usuario == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.StockRepository,
		_ repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		recetaRepo repository.RecetaRepository,
	) error {
		receta, err := recetaRepo.GetPorID(id)
		if err != nil {
			return err
		}
		if receta == nil {
			return domain.ErrNotFound
		}
		if err := recetaRepo.Eliminar(id); err != nil {
			return err
		}
		return uc.auditar(recetaRepo, entity.AccionRecetaEliminar, receta.Nombre, usuario)
	})
}

// Aplicar consume CantidadPadre del stock padre y produce CantidadHijo en el stock
// hijo, en una sola transacción. El padre se bloquea y se valida antes de descontar;
// si queda exactamente en cero se elimina, igual que en retiros y traslados.
func (uc *RecetaUseCase) Aplicar(ctx context.Context, id string, sucursal *entity.Sucursal, usuario string) error {
	if id == "" || usuario == "" {
		return domain.ErrInvalidInput
	}
	if uc.porSucursal && sucursal == nil {
		return domain.ErrInvalidInput
	}
	if !uc.porSucursal {
		sucursal = nil // pool consolidado
	}

	receta, err := uc.recetaRepo.GetPorID(id)
	if err != nil {
		return err
	}
	if receta == nil {
		return domain.ErrNotFound
	}

	clave := sucursal.Clave()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.RegistroRepository,
		_ repository.TrasladoRepository,
		_ repository.ProductoRepository,
		recetaRepo repository.RecetaRepository,
	) error {
		padre, err := stockRepo.GetForUpdate(receta.CodigoPadre, clave)
		if err != nil {
			return err
		}
		disponible := decimal.Zero
		if padre != nil {
			disponible = padre.Cantidad
		}
		if padre == nil || disponible.LessThan(receta.CantidadPadre) {
			return &domain.StockInsuficienteError{
				CodigoProducto: receta.CodigoPadre,
				Disponible:     disponible,
				Solicitada:     receta.CantidadPadre,
			}
		}
		if _, _, err := stockRepo.Decrementar(receta.CodigoPadre, clave, receta.CantidadPadre); err != nil {
			return err
		}
		if _, err := stockRepo.UpsertIncremento(receta.CodigoHijo, sucursal, receta.CantidadHijo); err != nil {
			return err
		}
		return uc.auditar(recetaRepo, entity.AccionRecetaAplicar, receta.Nombre, usuario)
	})
}

// Listar devuelve todas las recetas.
func (uc *RecetaUseCase) Listar(ctx context.Context) ([]dto.RecetaDTO, error) {
	recetas, err := uc.recetaRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecetaDTO, 0, len(recetas))
	for _, r := range recetas {
		out = append(out, dto.RecetaDTO{
			ID:            r.ID,
			Nombre:        r.Nombre,
			CodigoPadre:   r.CodigoPadre,
			CantidadPadre: r.CantidadPadre,
			CodigoHijo:    r.CodigoHijo,
			CantidadHijo:  r.CantidadHijo,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *RecetaUseCase) auditar(recetaRepo repository.RecetaRepository, accion, nombre, usuario string) error {
	return recetaRepo.CrearRegistro(&entity.RegistroReceta{
		ID:           uuid.New().String(),
		Accion:       accion,
		NombreReceta: nombre,
		Usuario:      usuario,
		Fecha:        time.Now(),
	})
}
