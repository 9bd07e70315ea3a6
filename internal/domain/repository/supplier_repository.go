package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// SupplierRepository define o porto de persistência para Supplier.
type SupplierRepository interface {
	Create(s *entity.Supplier) (int64, error)
	UpdateByTaxID(s *entity.Supplier) (int64, error)
	GetByTaxID(taxID string) (*entity.SupplierWithAddress, error)
	List(taxID string) ([]*entity.SupplierWithAddress, error)
}
