package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
)

// InventarioHandler maneja las mutaciones y lecturas de stock (protegido).
type InventarioHandler struct {
	uc *inventario.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// CargaManual godoc
// @Summary      Carga manual de stock
// @Description  Suma cantidad al registro (producto, sucursal); lo crea si no existe.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CargaManualRequest  true  "codigo_producto, cantidad > 0, sucursal opcional (omitida = pool sin asignar)"
// @Success      201   {object}  dto.CargaManualResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/cargas [post]
func (h *InventarioHandler) CargaManual(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CargaManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	creado, err := h.uc.CargaManualFromRequest(c.Context(), usuario, in)
	if err != nil {
		return errorJSON(c, err)
	}
	resp := dto.CargaManualResponse{Creado: creado}
	if creado {
		resp.Message = "registro de stock creado"
	} else {
		resp.Message = "cantidad sumada al registro existente"
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Retiro godoc
// @Summary      Retiro de stock
// @Description  Descuenta cantidad del registro; si queda en cero el registro se elimina.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RetiroRequest  true  "codigo_producto, cantidad >= 1, motivo obligatorio"
// @Success      200   {object}  dto.RetiroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/retiros [delete]
func (h *InventarioHandler) Retiro(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RetiroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RetiroFromRequest(c.Context(), usuario, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// ActualizarStock godoc
// @Summary      Actualizar campos de un registro de stock
// @Description  Sobrescribe cantidad y los campos opcionales presentes; la imagen se propaga al catálogo.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro de stock"
// @Param        body  body  dto.ActualizarStockRequest  true  "cantidad >= 0; cantidad_minima, precios_personalizados e imagen_url opcionales"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/stock/{id} [put]
func (h *InventarioHandler) ActualizarStock(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	var in dto.ActualizarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarStockFromRequest(c.Context(), id, usuario, in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock actualizado"})
}

// ListarRegistros godoc
// @Summary      Registros de inventario
// @Description  Eventos de auditoría de mutaciones manuales, del más reciente al más antiguo.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.RegistroInventarioDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/registros [get]
func (h *InventarioHandler) ListarRegistros(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	registros, err := h.uc.ListarRegistros(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(registros)
}

// VistaStock godoc
// @Summary      Vista de stock con datos de catálogo
// @Description  Proyección tipada stock+producto. Sin filtros lista todo; con sucursal/direccion
//
//	filtra esa sucursal; con pool=true solo el stock sin asignar.
//
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        sucursal   query  string  false  "Nombre de sucursal"
// @Param        direccion  query  string  false  "Dirección de sucursal"
// @Param        pool       query  bool    false  "Solo el pool sin asignar"
// @Success      200  {array}   dto.StockVistaDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/stock [get]
func (h *InventarioHandler) VistaStock(c *fiber.Ctx) error {
	var clave *string
	nombre := c.Query("sucursal")
	direccion := c.Query("direccion")
	switch {
	case c.QueryBool("pool"):
		vacia := ""
		clave = &vacia
	case nombre != "" || direccion != "":
		k := entity.ClaveSucursal(nombre, direccion)
		clave = &k
	}
	vista, err := h.uc.VistaStock(c.Context(), clave)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(vista)
}
