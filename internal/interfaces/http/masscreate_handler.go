package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/application/usecase"
	"github.com/camisetasbahia/catalogo-api/internal/domain"
)

// MassCreateHandler maneja las altas masivas del panel (protegido).
type MassCreateHandler struct {
	uc *usecase.MassCreateUseCase
}

// NewMassCreateHandler construye el handler.
func NewMassCreateHandler(uc *usecase.MassCreateUseCase) *MassCreateHandler {
	return &MassCreateHandler{uc: uc}
}

// Mass godoc
// @Summary      Alta masiva de productos por imágenes
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MassCreateRequest  true  "Ruta de categoría y variantes"
// @Success      201   {object}  dto.MassCreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/masivo [post]
func (h *MassCreateHandler) Mass(c *fiber.Ctx) error {
	var in dto.MassCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.MassCreate(c.Context(), GetActor(c), in)
	if err != nil {
		return massCreateError(c, err)
	}
	return massCreateResult(c, out)
}

// Preset godoc
// @Summary      Alta masiva con preset (bermudas, chupines)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        preset  path  string  true  "Nombre del preset"
// @Param        body    body  dto.PresetCreateRequest  true  "Cantidad a crear"
// @Success      201     {object}  dto.MassCreateResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/admin/productos/preset/{preset} [post]
func (h *MassCreateHandler) Preset(c *fiber.Ctx) error {
	var in dto.PresetCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePreset(c.Context(), GetActor(c), c.Params("preset"), in.Count)
	if err != nil {
		return massCreateError(c, err)
	}
	return massCreateResult(c, out)
}

func massCreateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// massCreateResult distingue el éxito parcial: si ningún lote entró, el alta
// falló entera.
func massCreateResult(c *fiber.Ctx, out *dto.MassCreateResponse) error {
	if out.Created == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron crear los productos"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
