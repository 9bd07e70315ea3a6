package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/ports"
)

// CEPHandler trata a consulta de CEP (preenchimento automático de endereço).
type CEPHandler struct {
	svc ports.CEPService
}

// NewCEPHandler constrói o handler.
func NewCEPHandler(svc ports.CEPService) *CEPHandler {
	return &CEPHandler{svc: svc}
}

// Lookup godoc
// @Summary      Consultar CEP
// @Tags         cep
// @Produce      json
// @Param        cep  path  string  true  "CEP com 8 dígitos"
// @Success      200  {object}  dto.CEPResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cep/{cep} [get]
func (h *CEPHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.svc.Lookup(c.Context(), c.Params("cep"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
