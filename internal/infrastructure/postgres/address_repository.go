package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementação de AddressRepository (usável com pool ou tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// ownerColumn mapeia o tipo de dono para a coluna FK correspondente.
// O valor é fixo por construção, nunca vem de input do usuário.
func ownerColumn(kind entity.AddressOwnerKind) (string, error) {
	switch kind {
	case entity.OwnerCustomer:
		return "customer_id", nil
	case entity.OwnerSupplier:
		return "supplier_id", nil
	case entity.OwnerEmployee:
		return "employee_id", nil
	}
	return "", fmt.Errorf("tipo de dono de endereço desconhecido: %q", kind)
}

// Create persiste um novo endereço e devolve o id gerado.
func (r *AddressRepo) Create(a *entity.Address) (int64, error) {
	query := `
		INSERT INTO addresses
			(customer_id, supplier_id, employee_id, postal_code, street, neighborhood, city, state, ibge_code, number, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		a.CustomerID, a.SupplierID, a.EmployeeID,
		a.PostalCode, a.Street, a.Neighborhood, a.City, a.State, a.IBGECode, a.Number, a.Reference,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert address: %w", err)
	}
	return id, nil
}

// GetByOwner obtém o endereço do dono (nil, nil se não existe).
func (r *AddressRepo) GetByOwner(kind entity.AddressOwnerKind, ownerID int64) (*entity.Address, error) {
	col, err := ownerColumn(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, customer_id, supplier_id, employee_id,
		       postal_code, street, neighborhood, city, state, ibge_code, number, reference
		FROM addresses WHERE %s = $1`, col)
	var a entity.Address
	err = r.q.QueryRow(context.Background(), query, ownerID).Scan(
		&a.ID, &a.CustomerID, &a.SupplierID, &a.EmployeeID,
		&a.PostalCode, &a.Street, &a.Neighborhood, &a.City, &a.State, &a.IBGECode, &a.Number, &a.Reference,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}

// UpdateByOwner sobrescreve os campos do endereço do dono.
func (r *AddressRepo) UpdateByOwner(kind entity.AddressOwnerKind, ownerID int64, a *entity.Address) error {
	col, err := ownerColumn(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE addresses
		SET postal_code = $2, street = $3, neighborhood = $4, city = $5,
		    state = $6, ibge_code = $7, number = $8, reference = $9
		WHERE %s = $1`, col)
	_, err = r.q.Exec(context.Background(), query, ownerID,
		a.PostalCode, a.Street, a.Neighborhood, a.City, a.State, a.IBGECode, a.Number, a.Reference,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}
