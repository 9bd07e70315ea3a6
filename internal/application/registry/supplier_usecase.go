package registry

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// SupplierUseCase orquestra o cadastro de fornecedores, seguindo o mesmo
// protocolo de escrita entidade+endereço do cadastro de clientes.
type SupplierUseCase struct {
	txRunner TxRunner
	repo     repository.SupplierRepository
}

func NewSupplierUseCase(txRunner TxRunner, repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{txRunner: txRunner, repo: repo}
}

// Create grava o fornecedor e, se veio CEP, o endereço, na mesma transação.
func (uc *SupplierUseCase) Create(ctx context.Context, in *dto.CreateSupplierRequest) (*dto.CreatedResponse, error) {
	textutil.CleanAll(&in.Name, &in.TaxID, &in.Email, &in.Phone)
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}

	var id int64
	err := uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		supplierRepo repository.SupplierRepository,
		_ repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		var err error
		id, err = supplierRepo.Create(&entity.Supplier{
			Name:  in.Name,
			TaxID: in.TaxID,
			Email: in.Email,
			Phone: in.Phone,
		})
		if err != nil {
			return err
		}
		if in.Address.HasPostalCode() {
			_, err = addressRepo.Create(toAddress(in.Address, entity.OwnerSupplier, id))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Fornecedor cadastrado com sucesso."}, nil
}

// Update altera os dados do fornecedor identificado pelo CNPJ da rota.
func (uc *SupplierUseCase) Update(ctx context.Context, taxID string, in *dto.UpdateSupplierRequest) (*dto.MessageResponse, error) {
	taxID = textutil.Clean(taxID)
	textutil.CleanAll(&in.Name, &in.Email, &in.Phone)
	if taxID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		supplierRepo repository.SupplierRepository,
		_ repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		id, err := supplierRepo.UpdateByTaxID(&entity.Supplier{
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
		return upsertAddress(addressRepo, entity.OwnerSupplier, id, in.Address)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Fornecedor atualizado com sucesso."}, nil
}

// GetByTaxID busca um fornecedor pelo CNPJ.
func (uc *SupplierUseCase) GetByTaxID(ctx context.Context, taxID string) (*dto.SupplierResponse, error) {
	taxID = textutil.Clean(taxID)
	if taxID == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.GetByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return supplierResponse(s), nil
}

// List retorna os fornecedores; taxID não vazio filtra por CNPJ exato.
func (uc *SupplierUseCase) List(ctx context.Context, taxID string) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(textutil.Clean(taxID))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierResponse(s))
	}
	return out, nil
}

// Picker retorna id e nome de todos os fornecedores, para o formulário de produto.
func (uc *SupplierUseCase) Picker(ctx context.Context) ([]*dto.SupplierPickerItem, error) {
	suppliers, err := uc.repo.List("")
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierPickerItem, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, &dto.SupplierPickerItem{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func supplierResponse(s *entity.SupplierWithAddress) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		TaxID:   s.TaxID,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: addressResponse(s.Address),
	}
}
