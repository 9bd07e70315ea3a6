package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/usecase"
	"github.com/annaclaralemossilva/testesss/internal/domain"
)

// RoleHandler trata as requisições HTTP de funções/cargos.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler constrói o handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar função
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Dados da função"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
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
// @Summary      Atualizar função pelo id
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da função"
// @Param        body  body  dto.UpdateRoleRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domainError(c, domain.ErrInvalidInput)
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, &in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar funções
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Picker godoc
// @Summary      Funções para o formulário de funcionário (id + nome)
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RolePickerItem
// @Router       /roles/picker [get]
func (h *RoleHandler) Picker(c *fiber.Ctx) error {
	out, err := h.uc.Picker(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
