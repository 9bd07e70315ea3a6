package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/usecase"
	"github.com/annaclaralemossilva/testesss/internal/domain"
)

// CartHandler trata o carrinho pendente.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler constrói o handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Add godoc
// @Summary      Adicionar item ao carrinho
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Cliente, produto e quantidade"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.Context(), &in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar itens do carrinho
// @Tags         cart
// @Produce      json
// @Param        customer_tax_id  query  string  false  "Filtro por CPF do cliente"
// @Success      200  {array}  dto.CartItemResponse
// @Router       /cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("customer_tax_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Remover item do carrinho pelo id
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID do item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cart/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domainError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.Remove(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
