package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// CartRepository define o porto de persistência para itens de carrinho.
type CartRepository interface {
	Create(item *entity.CartItem) (int64, error)
	// List retorna os itens; customerTaxID não vazio filtra por cliente.
	List(customerTaxID string) ([]*entity.CartItem, error)
	// Delete remove um item pelo id. domain.ErrNotFound se nenhuma linha foi afetada.
	Delete(id int64) error
}
