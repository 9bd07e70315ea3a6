package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
)

// SupplierHandler trata as requisições HTTP de fornecedores.
type SupplierHandler struct {
	uc *registry.SupplierUseCase
}

// NewSupplierHandler constrói o handler.
func NewSupplierHandler(uc *registry.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar fornecedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
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
// @Summary      Atualizar fornecedor pelo CNPJ
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        tax_id  path  string  true  "CNPJ do fornecedor"
// @Param        body    body  dto.UpdateSupplierRequest  true  "Dados a atualizar"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /suppliers/tax_id/{tax_id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
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
// @Summary      Buscar fornecedor pelo CNPJ
// @Tags         suppliers
// @Produce      json
// @Param        tax_id  path  string  true  "CNPJ do fornecedor"
// @Success      200     {object}  dto.SupplierResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /suppliers/{tax_id} [get]
func (h *SupplierHandler) GetByTaxID(c *fiber.Ctx) error {
	out, err := h.uc.GetByTaxID(c.Context(), c.Params("tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         suppliers
// @Produce      json
// @Param        tax_id  query  string  false  "Filtro por CNPJ exato"
// @Success      200     {array}  dto.SupplierResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Picker godoc
// @Summary      Fornecedores para o formulário de produto (id + nome)
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  dto.SupplierPickerItem
// @Router       /suppliers/picker [get]
func (h *SupplierHandler) Picker(c *fiber.Ctx) error {
	out, err := h.uc.Picker(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
