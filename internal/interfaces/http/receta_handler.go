package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreinv/ferreteria-api/internal/application/dto"
	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
)

// RecetaHandler maneja las recetas de conversión y su aplicación (protegido).
type RecetaHandler struct {
	uc *inventario.RecetaUseCase
}

// NewRecetaHandler construye el handler.
func NewRecetaHandler(uc *inventario.RecetaUseCase) *RecetaHandler {
	return &RecetaHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear receta de conversión
// @Tags         recetas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecetaRequest  true  "nombre único, códigos padre/hijo distintos, cantidades > 0"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/recetas [post]
func (h *RecetaHandler) Crear(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CrearFromRequest(c.Context(), usuario, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "receta creada"})
}

// Actualizar godoc
// @Summary      Actualizar receta
// @Tags         recetas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.RecetaRequest  true  "definición completa de la receta"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [put]
func (h *RecetaHandler) Actualizar(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarFromRequest(c.Context(), c.Params("id"), usuario, in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta actualizada"})
}

// Eliminar godoc
// @Summary      Eliminar receta
// @Tags         recetas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [delete]
func (h *RecetaHandler) Eliminar(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), usuario); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta eliminada"})
}

// Aplicar godoc
// @Summary      Aplicar receta de conversión
// @Description  Consume la cantidad padre del stock y produce la cantidad hija, en una
//
//	transacción. La sucursal solo aplica cuando las recetas operan por sucursal.
//
// @Tags         recetas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.AplicarRecetaRequest  false  "sucursal (solo en modo por sucursal)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recetas/{id}/aplicar [post]
func (h *RecetaHandler) Aplicar(c *fiber.Ctx) error {
	usuario := GetNombre(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AplicarRecetaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.AplicarFromRequest(c.Context(), c.Params("id"), usuario, in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "receta aplicada"})
}

// Listar godoc
// @Summary      Listar recetas
// @Tags         recetas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RecetaDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/recetas [get]
func (h *RecetaHandler) Listar(c *fiber.Ctx) error {
	recetas, err := h.uc.Listar(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(recetas)
}
