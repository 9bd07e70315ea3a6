package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
)

// EmployeeHandler trata as requisições HTTP de funcionários.
type EmployeeHandler struct {
	uc *registry.EmployeeUseCase
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(uc *registry.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar funcionário
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
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
// @Summary      Atualizar funcionário pelo CPF
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        tax_id  path  string  true  "CPF do funcionário"
// @Param        body    body  dto.UpdateEmployeeRequest  true  "Dados a atualizar"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /employees/tax_id/{tax_id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
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
// @Summary      Buscar funcionário pelo CPF
// @Tags         employees
// @Produce      json
// @Param        tax_id  path  string  true  "CPF do funcionário"
// @Success      200     {object}  dto.EmployeeResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /employees/{tax_id} [get]
func (h *EmployeeHandler) GetByTaxID(c *fiber.Ctx) error {
	out, err := h.uc.GetByTaxID(c.Context(), c.Params("tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar funcionários com função e endereço
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
