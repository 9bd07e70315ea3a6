package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// SaleRepository define o porto de persistência para Sale (uma linha por item).
type SaleRepository interface {
	Create(s *entity.Sale) (int64, error)
}
