package postgres

import (
	"context"
	"fmt"

	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementação de CartRepository (usável com pool ou tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste um item de carrinho e devolve o id gerado.
func (r *CartRepo) Create(item *entity.CartItem) (int64, error) {
	query := `
		INSERT INTO cart_items (customer_tax_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		item.CustomerTaxID, item.ProductID, item.Quantity, item.AddedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cart item: %w", err)
	}
	return id, nil
}

// List lista itens de carrinho; customerTaxID não vazio filtra por cliente.
func (r *CartRepo) List(customerTaxID string) ([]*entity.CartItem, error) {
	query := `SELECT id, customer_tax_id, product_id, quantity, added_at FROM cart_items`
	args := []any{}
	if customerTaxID != "" {
		query += ` WHERE customer_tax_id = $1`
		args = append(args, customerTaxID)
	}
	query += ` ORDER BY added_at`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.CustomerTaxID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Delete remove um item de carrinho pelo id.
func (r *CartRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
