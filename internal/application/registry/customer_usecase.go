package registry

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// CustomerUseCase orquestra o cadastro de clientes. Escritas rodam em
// transação via TxRunner; leituras usam o repositório direto.
type CustomerUseCase struct {
	txRunner TxRunner
	repo     repository.CustomerRepository
}

func NewCustomerUseCase(txRunner TxRunner, repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{txRunner: txRunner, repo: repo}
}

// Create grava o cliente e, se a requisição trouxe CEP, o endereço,
// na mesma transação.
func (uc *CustomerUseCase) Create(ctx context.Context, in *dto.CreateCustomerRequest) (*dto.CreatedResponse, error) {
	textutil.CleanAll(&in.Name, &in.TaxID, &in.Email, &in.Phone)
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}

	var id int64
	err := uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SupplierRepository,
		_ repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		var err error
		id, err = customerRepo.Create(&entity.Customer{
			Name:  in.Name,
			TaxID: in.TaxID,
			Email: in.Email,
			Phone: in.Phone,
		})
		if err != nil {
			return err
		}
		if in.Address.HasPostalCode() {
			_, err = addressRepo.Create(toAddress(in.Address, entity.OwnerCustomer, id))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Cliente cadastrado com sucesso."}, nil
}

// Update altera os dados do cliente identificado pelo CPF da rota.
// O endereço só é tocado quando a requisição traz CEP.
func (uc *CustomerUseCase) Update(ctx context.Context, taxID string, in *dto.UpdateCustomerRequest) (*dto.MessageResponse, error) {
	taxID = textutil.Clean(taxID)
	textutil.CleanAll(&in.Name, &in.Email, &in.Phone)
	if taxID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SupplierRepository,
		_ repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		id, err := customerRepo.UpdateByTaxID(&entity.Customer{
			Name:  in.Name,
			TaxID: taxID,
			Email: in.Email,
			Phone: in.Phone,
		})
		if err != nil {
			return err
		}
		if !in.Address.HasPostalCode() {
			return nil
		}
		return upsertAddress(addressRepo, entity.OwnerCustomer, id, in.Address)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Cliente atualizado com sucesso."}, nil
}

// GetByTaxID busca um cliente pelo CPF.
func (uc *CustomerUseCase) GetByTaxID(ctx context.Context, taxID string) (*dto.CustomerResponse, error) {
	taxID = textutil.Clean(taxID)
	if taxID == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return customerResponse(c), nil
}

// List retorna os clientes; taxID não vazio filtra por CPF exato.
func (uc *CustomerUseCase) List(ctx context.Context, taxID string) ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List(textutil.Clean(taxID))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse(c))
	}
	return out, nil
}

func customerResponse(c *entity.CustomerWithAddress) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: addressResponse(c.Address),
	}
}
