package registry

import (
	"context"
	"time"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

const dateLayout = "2006-01-02"

// EmployeeUseCase orquestra o cadastro de funcionários. Funcionários
// seguem o mesmo protocolo entidade+endereço de clientes e fornecedores.
type EmployeeUseCase struct {
	txRunner TxRunner
	repo     repository.EmployeeRepository
}

func NewEmployeeUseCase(txRunner TxRunner, repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{txRunner: txRunner, repo: repo}
}

// Create grava o funcionário e, se veio CEP, o endereço, na mesma transação.
func (uc *EmployeeUseCase) Create(ctx context.Context, in *dto.CreateEmployeeRequest) (*dto.CreatedResponse, error) {
	textutil.CleanAll(&in.Name, &in.TaxID, &in.NationalID, &in.Phone, &in.Email, &in.BirthDate, &in.HireDate)
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	birthDate, err := time.Parse(dateLayout, in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	hireDate, err := time.Parse(dateLayout, in.HireDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var id int64
	err = uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		_ repository.SupplierRepository,
		employeeRepo repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		var err error
		id, err = employeeRepo.Create(&entity.Employee{
			Name:       in.Name,
			TaxID:      in.TaxID,
			NationalID: in.NationalID,
			Phone:      in.Phone,
			Email:      in.Email,
			BirthDate:  birthDate,
			HireDate:   hireDate,
			RoleID:     in.RoleID,
		})
		if err != nil {
			return err
		}
		if in.Address.HasPostalCode() {
			_, err = addressRepo.Create(toAddress(in.Address, entity.OwnerEmployee, id))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Funcionário cadastrado com sucesso."}, nil
}

// Update altera os dados do funcionário identificado pelo CPF da rota.
func (uc *EmployeeUseCase) Update(ctx context.Context, taxID string, in *dto.UpdateEmployeeRequest) (*dto.MessageResponse, error) {
	taxID = textutil.Clean(taxID)
	textutil.CleanAll(&in.Name, &in.NationalID, &in.Phone, &in.Email, &in.BirthDate, &in.HireDate)
	if taxID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	birthDate, err := time.Parse(dateLayout, in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	hireDate, err := time.Parse(dateLayout, in.HireDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		_ repository.SupplierRepository,
		employeeRepo repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error {
		id, err := employeeRepo.UpdateByTaxID(&entity.Employee{
			Name:       in.Name,
			TaxID:      taxID,
			NationalID: in.NationalID,
			Phone:      in.Phone,
			Email:      in.Email,
			BirthDate:  birthDate,
			HireDate:   hireDate,
			RoleID:     in.RoleID,
		})
		if err != nil {
			return err
		}
		if !in.Address.HasPostalCode() {
			return nil
		}
		return upsertAddress(addressRepo, entity.OwnerEmployee, id, in.Address)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Funcionário atualizado com sucesso."}, nil
}

// GetByTaxID busca um funcionário pelo CPF.
func (uc *EmployeeUseCase) GetByTaxID(ctx context.Context, taxID string) (*dto.EmployeeResponse, error) {
	taxID = textutil.Clean(taxID)
	if taxID == "" {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.repo.GetByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return employeeResponse(e), nil
}

// List retorna todos os funcionários com função e endereço.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeResponse(e))
	}
	return out, nil
}

func employeeResponse(e *entity.EmployeeWithRole) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		TaxID:      e.TaxID,
		NationalID: e.NationalID,
		Phone:      e.Phone,
		Email:      e.Email,
		BirthDate:  e.BirthDate.Format(dateLayout),
		HireDate:   e.HireDate.Format(dateLayout),
		RoleID:     e.RoleID,
		RoleName:   e.RoleName,
		Address:    addressResponse(e.Address),
	}
}
