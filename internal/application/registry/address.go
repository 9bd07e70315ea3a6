package registry

import (
	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// toAddress monta a entidade de endereço a partir do sub-registro da requisição,
// já apontando para o dono correto.
func toAddress(in *dto.AddressRequest, kind entity.AddressOwnerKind, ownerID int64) *entity.Address {
	textutil.CleanAll(&in.PostalCode, &in.Street, &in.Neighborhood, &in.City, &in.State, &in.IBGECode, &in.Number, &in.Reference)

	addr := &entity.Address{
		PostalCode:   in.PostalCode,
		Street:       in.Street,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		IBGECode:     in.IBGECode,
		Number:       in.Number,
		Reference:    in.Reference,
	}
	switch kind {
	case entity.OwnerCustomer:
		addr.CustomerID = &ownerID
	case entity.OwnerSupplier:
		addr.SupplierID = &ownerID
	case entity.OwnerEmployee:
		addr.EmployeeID = &ownerID
	}
	return addr
}

// upsertAddress atualiza o endereço do dono se já existir, senão cria.
// Deve rodar dentro da mesma tx que gravou a entidade dona.
func upsertAddress(addressRepo repository.AddressRepository, kind entity.AddressOwnerKind, ownerID int64, in *dto.AddressRequest) error {
	existing, err := addressRepo.GetByOwner(kind, ownerID)
	if err != nil {
		return err
	}
	addr := toAddress(in, kind, ownerID)
	if existing == nil {
		_, err = addressRepo.Create(addr)
		return err
	}
	return addressRepo.UpdateByOwner(kind, ownerID, addr)
}

func addressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		IBGECode:     a.IBGECode,
		Number:       a.Number,
		Reference:    a.Reference,
	}
}
