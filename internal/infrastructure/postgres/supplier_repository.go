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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação de SupplierRepository (usável com pool ou tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste um novo fornecedor e devolve o id gerado.
func (r *SupplierRepo) Create(s *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO suppliers (name, tax_id, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, s.Name, s.TaxID, s.Email, s.Phone).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	return id, nil
}

// UpdateByTaxID atualiza o fornecedor pela chave natural (CNPJ) e devolve o id.
func (r *SupplierRepo) UpdateByTaxID(s *entity.Supplier) (int64, error) {
	query := `
		UPDATE suppliers SET name = $2, email = $3, phone = $4
		WHERE tax_id = $1
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, s.TaxID, s.Name, s.Email, s.Phone).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("update supplier: %w", err)
	}
	return id, nil
}

const supplierSelect = `
	SELECT s.id, s.name, s.tax_id, s.email, s.phone,
	       a.id, a.postal_code, a.street, a.neighborhood, a.city, a.state, a.ibge_code, a.number, a.reference
	FROM suppliers s
	LEFT JOIN addresses a ON a.supplier_id = s.id`

// GetByTaxID obtém um fornecedor com endereço pelo CNPJ (nil, nil se não existe).
func (r *SupplierRepo) GetByTaxID(taxID string) (*entity.SupplierWithAddress, error) {
	row := r.q.QueryRow(context.Background(), supplierSelect+` WHERE s.tax_id = $1`, taxID)
	s, err := scanSupplierWithAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// List lista fornecedores com endereço; taxID não vazio filtra por igualdade.
func (r *SupplierRepo) List(taxID string) ([]*entity.SupplierWithAddress, error) {
	query := supplierSelect
	args := []any{}
	if taxID != "" {
		query += ` WHERE s.tax_id = $1`
		args = append(args, taxID)
	}
	query += ` ORDER BY s.name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierWithAddress
	for rows.Next() {
		s, err := scanSupplierWithAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSupplierWithAddress(row pgx.Row) (*entity.SupplierWithAddress, error) {
	var s entity.SupplierWithAddress
	var addrID *int64
	var cep, street, neighborhood, city, state, ibge, number, reference *string
	err := row.Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone,
		&addrID, &cep, &street, &neighborhood, &city, &state, &ibge, &number, &reference,
	)
	if err != nil {
		return nil, err
	}
	if addrID != nil {
		ownerID := s.ID
		s.Address = &entity.Address{
			ID:           *addrID,
			SupplierID:   &ownerID,
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
	return &s, nil
}
