package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// AddressRepository define o porto de persistência para Address.
// O dono é identificado por (tipo, id da entidade dona).
type AddressRepository interface {
	Create(a *entity.Address) (int64, error)
	// GetByOwner retorna o endereço do dono (nil, nil se não existe).
	GetByOwner(kind entity.AddressOwnerKind, ownerID int64) (*entity.Address, error)
	// UpdateByOwner sobrescreve os campos do endereço do dono.
	UpdateByOwner(kind entity.AddressOwnerKind, ownerID int64, a *entity.Address) error
}
