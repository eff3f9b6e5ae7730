package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
)

// TrasladoHandler maneja traslados de stock entre sucursales (protegido).
type TrasladoHandler struct {
	uc *inventario.TrasladoUseCase
}

// NewTrasladoHandler construye el handler.
func NewTrasladoHandler(uc *inventario.TrasladoUseCase) *TrasladoHandler {
	return &TrasladoHandler{uc: uc}
}

// Trasladar godoc
// @Summary      Trasladar stock entre sucursales
// @Description  Mueve las cantidades de todos los ítems del origen al destino en una sola
//
//	transacción: si algún ítem no tiene stock suficiente no se aplica ninguno.
//
// @Tags         traslados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrasladoRequest  true  "origen, destino e items (codigo, cantidad > 0)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/traslados [post]
func (h *TrasladoHandler) Trasladar(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.TrasladarFromRequest(c.Context(), usuario, in); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "traslado completado"})
}

// Listar godoc
// @Summary      Historial de traslados
// @Tags         traslados
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de traslados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.TrasladoDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/traslados [get]
func (h *TrasladoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	traslados, err := h.uc.ListarTraslados(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(traslados)
}
