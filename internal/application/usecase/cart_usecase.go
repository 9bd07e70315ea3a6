package usecase

import (
	"context"
	"time"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// CartUseCase orquestra o carrinho pendente. Itens de carrinho são
// pré-venda: não reservam estoque nem viram venda automaticamente.
type CartUseCase struct {
	repo         repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewCartUseCase(repo repository.CartRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{repo: repo, customerRepo: customerRepo, productRepo: productRepo}
}

// Add insere um item no carrinho do cliente. Cliente e produto precisam existir.
func (uc *CartUseCase) Add(ctx context.Context, in *dto.AddCartItemRequest) (*dto.CreatedResponse, error) {
	in.CustomerTaxID = textutil.Clean(in.CustomerTaxID)
	if in.CustomerTaxID == "" || in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByTaxID(in.CustomerTaxID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	id, err := uc.repo.Create(&entity.CartItem{
		CustomerTaxID: in.CustomerTaxID,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		AddedAt:       time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Item adicionado ao carrinho."}, nil
}

// List retorna os itens do carrinho; customerTaxID não vazio filtra por cliente.
func (uc *CartUseCase) List(ctx context.Context, customerTaxID string) ([]*dto.CartItemResponse, error) {
	items, err := uc.repo.List(textutil.Clean(customerTaxID))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &dto.CartItemResponse{
			ID:            item.ID,
			CustomerTaxID: item.CustomerTaxID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			AddedAt:       item.AddedAt,
		})
	}
	return out, nil
}

// Remove exclui um item do carrinho pelo id.
func (uc *CartUseCase) Remove(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Item removido do carrinho."}, nil
}
