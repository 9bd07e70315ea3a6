package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// EmployeeRepository define o porto de persistência para Employee.
type EmployeeRepository interface {
	Create(e *entity.Employee) (int64, error)
	UpdateByTaxID(e *entity.Employee) (int64, error)
	GetByTaxID(taxID string) (*entity.EmployeeWithRole, error)
	List() ([]*entity.EmployeeWithRole, error)
}
