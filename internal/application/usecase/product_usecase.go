package usecase

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// ProductUseCase orquestra o catálogo de produtos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto. Nome, tipo, descrição e fornecedor são
// obrigatórios; preço não pode ser negativo e estoque inicial tampouco.
func (uc *ProductUseCase) Create(ctx context.Context, in *dto.CreateProductRequest) (*dto.CreatedResponse, error) {
	textutil.CleanAll(&in.Name, &in.Type, &in.Description)
	if in.Name == "" || in.Type == "" || in.Description == "" || in.SupplierID == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	id, err := uc.repo.Create(&entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Type:        in.Type,
		Description: in.Description,
		SupplierID:  in.SupplierID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Produto cadastrado com sucesso."}, nil
}

// Update atualiza todos os campos do produto pelo id da rota.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in *dto.UpdateProductRequest) (*dto.MessageResponse, error) {
	textutil.CleanAll(&in.Name, &in.Type, &in.Description)
	if id <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	err := uc.repo.Update(&entity.Product{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Type:        in.Type,
		Description: in.Description,
		SupplierID:  in.SupplierID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Produto atualizado com sucesso."}, nil
}

// GetByID busca um produto pelo id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return productResponse(p), nil
}

// List retorna o catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse(p))
	}
	return out, nil
}

// Picker retorna id, nome e estoque de todos os produtos, para o formulário de vendas.
func (uc *ProductUseCase) Picker(ctx context.Context) ([]*dto.ProductPickerItem, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductPickerItem, 0, len(products))
	for _, p := range products {
		out = append(out, &dto.ProductPickerItem{ID: p.ID, Name: p.Name, Stock: p.Stock})
	}
	return out, nil
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Type:        p.Type,
		Description: p.Description,
		SupplierID:  p.SupplierID,
	}
}
