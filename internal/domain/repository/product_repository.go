package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// ProductRepository define o porto de persistência para Product.
type ProductRepository interface {
	Create(p *entity.Product) (int64, error)
	// GetByID retorna o produto (nil, nil se não existe).
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate retorna o produto bloqueando a linha (SELECT FOR UPDATE).
	// Usar apenas dentro de transação.
	GetForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Update atualiza todos os campos pelo id. domain.ErrNotFound se nenhuma linha foi afetada.
	Update(p *entity.Product) error
	// UpdateStock grava a nova quantidade em estoque.
	UpdateStock(id int64, stock int) error
}
