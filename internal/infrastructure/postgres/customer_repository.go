package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente e devolve o id gerado.
func (r *CustomerRepo) Create(c *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, tax_id, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, c.Name, c.TaxID, c.Email, c.Phone).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// UpdateByTaxID atualiza o cliente pela chave natural (CPF) e devolve o id.
func (r *CustomerRepo) UpdateByTaxID(c *entity.Customer) (int64, error) {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4
		WHERE tax_id = $1
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, c.TaxID, c.Name, c.Email, c.Phone).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("update customer: %w", err)
	}
	return id, nil
}

const customerSelect = `
	SELECT c.id, c.name, c.tax_id, c.email, c.phone,
	       a.id, a.postal_code, a.street, a.neighborhood, a.city, a.state, a.ibge_code, a.number, a.reference
	FROM customers c
	LEFT JOIN addresses a ON a.customer_id = c.id`

// GetByTaxID obtém um cliente com endereço pelo CPF (nil, nil se não existe).
func (r *CustomerRepo) GetByTaxID(taxID string) (*entity.CustomerWithAddress, error) {
	row := r.q.QueryRow(context.Background(), customerSelect+` WHERE c.tax_id = $1`, taxID)
	c, err := scanCustomerWithAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes com endereço; taxID não vazio filtra por igualdade.
func (r *CustomerRepo) List(taxID string) ([]*entity.CustomerWithAddress, error) {
	query := customerSelect
	args := []any{}
	if taxID != "" {
		query += ` WHERE c.tax_id = $1`
		args = append(args, taxID)
	}
	query += ` ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerWithAddress
	for rows.Next() {
		c, err := scanCustomerWithAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCustomerWithAddress(row pgx.Row) (*entity.CustomerWithAddress, error) {
	var c entity.CustomerWithAddress
	var addrID *int64
	var cep, street, neighborhood, city, state, ibge, number, reference *string
	err := row.Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone,
		&addrID, &cep, &street, &neighborhood, &city, &state, &ibge, &number, &reference,
	)
	if err != nil {
		return nil, err
	}
	if addrID != nil {
		ownerID := c.ID
		c.Address = &entity.Address{
			ID:           *addrID,
			CustomerID:   &ownerID,
			PostalCode:   deref(cep),
			Street:       deref(street),
			Neighborhood: deref(neighborhood),
			City:         deref(city),
			State:        deref(state),
			IBGECode:     deref(ibge),
			Number:       deref(number),
			Reference:    deref(reference),
		}
	}
	return &c, nil
}
