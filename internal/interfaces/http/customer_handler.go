package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
)

// CustomerHandler trata as requisições HTTP de clientes.
type CustomerHandler struct {
	uc *registry.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *registry.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente pelo CPF
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        tax_id  path  string  true  "CPF do cliente"
// @Param        body    body  dto.UpdateCustomerRequest  true  "Dados a atualizar"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /customers/tax_id/{tax_id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("tax_id"), &in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByTaxID godoc
// @Summary      Buscar cliente pelo CPF
// @Tags         customers
// @Produce      json
// @Param        tax_id  path  string  true  "CPF do cliente"
// @Success      200     {object}  dto.CustomerResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /customers/{tax_id} [get]
func (h *CustomerHandler) GetByTaxID(c *fiber.Ctx) error {
	out, err := h.uc.GetByTaxID(c.Context(), c.Params("tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Param        tax_id  query  string  false  "Filtro por CPF exato"
// @Success      200     {array}  dto.CustomerResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
