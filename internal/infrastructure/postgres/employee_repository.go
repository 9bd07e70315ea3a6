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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação de EmployeeRepository (usável com pool ou tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste um novo funcionário e devolve o id gerado.
func (r *EmployeeRepo) Create(e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO employees (name, tax_id, national_id, phone, email, birth_date, hire_date, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.Name, e.TaxID, e.NationalID, e.Phone, e.Email, e.BirthDate, e.HireDate, e.RoleID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// UpdateByTaxID atualiza o funcionário pela chave natural (CPF) e devolve o id.
func (r *EmployeeRepo) UpdateByTaxID(e *entity.Employee) (int64, error) {
	query := `
		UPDATE employees
		SET name = $2, national_id = $3, phone = $4, email = $5,
		    birth_date = $6, hire_date = $7, role_id = $8
		WHERE tax_id = $1
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.TaxID, e.Name, e.NationalID, e.Phone, e.Email, e.BirthDate, e.HireDate, e.RoleID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("update employee: %w", err)
	}
	return id, nil
}

const employeeSelect = `
	SELECT e.id, e.name, e.tax_id, e.national_id, e.phone, e.email,
	       e.birth_date, e.hire_date, e.role_id, COALESCE(r.name, ''),
	       a.id, a.postal_code, a.street, a.neighborhood, a.city, a.state, a.ibge_code, a.number, a.reference
	FROM employees e
	LEFT JOIN roles r ON r.id = e.role_id
	LEFT JOIN addresses a ON a.employee_id = e.id`

// GetByTaxID obtém um funcionário com função e endereço pelo CPF (nil, nil se não existe).
func (r *EmployeeRepo) GetByTaxID(taxID string) (*entity.EmployeeWithRole, error) {
	row := r.q.QueryRow(context.Background(), employeeSelect+` WHERE e.tax_id = $1`, taxID)
	e, err := scanEmployeeWithRole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List lista todos os funcionários com função e endereço.
func (r *EmployeeRepo) List() ([]*entity.EmployeeWithRole, error) {
	rows, err := r.q.Query(context.Background(), employeeSelect+` ORDER BY e.name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeWithRole
	for rows.Next() {
		e, err := scanEmployeeWithRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployeeWithRole(row pgx.Row) (*entity.EmployeeWithRole, error) {
	var e entity.EmployeeWithRole
	var addrID *int64
	var cep, street, neighborhood, city, state, ibge, number, reference *string
	err := row.Scan(
		&e.ID, &e.Name, &e.TaxID, &e.NationalID, &e.Phone, &e.Email,
		&e.BirthDate, &e.HireDate, &e.RoleID, &e.RoleName,
		&addrID, &cep, &street, &neighborhood, &city, &state, &ibge, &number, &reference,
	)
	if err != nil {
		return nil, err
	}
	if addrID != nil {
		ownerID := e.ID
		e.Address = &entity.Address{
			ID:           *addrID,
			EmployeeID:   &ownerID,
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
	return &e, nil
}
