package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	nextID  int64
	byTaxID map[string]*entity.CustomerWithAddress
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byTaxID: map[string]*entity.CustomerWithAddress{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) (int64, error) {
	if _, ok := r.byTaxID[c.TaxID]; ok {
		return 0, domain.ErrDuplicate
	}
	r.nextID++
	c.ID = r.nextID
	r.byTaxID[c.TaxID] = &entity.CustomerWithAddress{Customer: *c}
	return c.ID, nil
}

func (r *fakeCustomerRepo) UpdateByTaxID(c *entity.Customer) (int64, error) {
	existing, ok := r.byTaxID[c.TaxID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	existing.Name = c.Name
	existing.Email = c.Email
	existing.Phone = c.Phone
	return existing.ID, nil
}

func (r *fakeCustomerRepo) GetByTaxID(taxID string) (*entity.CustomerWithAddress, error) {
	c, ok := r.byTaxID[taxID]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(taxID string) ([]*entity.CustomerWithAddress, error) {
	var out []*entity.CustomerWithAddress
	for _, c := range r.byTaxID {
		if taxID == "" || c.TaxID == taxID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	nextID  int64
	byTaxID map[string]*entity.SupplierWithAddress
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byTaxID: map[string]*entity.SupplierWithAddress{}}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) (int64, error) {
	if _, ok := r.byTaxID[s.TaxID]; ok {
		return 0, domain.ErrDuplicate
	}
	r.nextID++
	s.ID = r.nextID
	r.byTaxID[s.TaxID] = &entity.SupplierWithAddress{Supplier: *s}
	return s.ID, nil
}

func (r *fakeSupplierRepo) UpdateByTaxID(s *entity.Supplier) (int64, error) {
	existing, ok := r.byTaxID[s.TaxID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	existing.Name = s.Name
	existing.Email = s.Email
	existing.Phone = s.Phone
	return existing.ID, nil
}

func (r *fakeSupplierRepo) GetByTaxID(taxID string) (*entity.SupplierWithAddress, error) {
	s, ok := r.byTaxID[taxID]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) List(taxID string) ([]*entity.SupplierWithAddress, error) {
	var out []*entity.SupplierWithAddress
	for _, s := range r.byTaxID {
		if taxID == "" || s.TaxID == taxID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	nextID  int64
	byTaxID map[string]*entity.EmployeeWithRole
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byTaxID: map[string]*entity.EmployeeWithRole{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) (int64, error) {
	if _, ok := r.byTaxID[e.TaxID]; ok {
		return 0, domain.ErrDuplicate
	}
	r.nextID++
	e.ID = r.nextID
	r.byTaxID[e.TaxID] = &entity.EmployeeWithRole{Employee: *e}
	return e.ID, nil
}

func (r *fakeEmployeeRepo) UpdateByTaxID(e *entity.Employee) (int64, error) {
	existing, ok := r.byTaxID[e.TaxID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	existing.Name = e.Name
	existing.Email = e.Email
	existing.Phone = e.Phone
	existing.NationalID = e.NationalID
	existing.BirthDate = e.BirthDate
	existing.HireDate = e.HireDate
	existing.RoleID = e.RoleID
	return existing.ID, nil
}

func (r *fakeEmployeeRepo) GetByTaxID(taxID string) (*entity.EmployeeWithRole, error) {
	e, ok := r.byTaxID[taxID]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *fakeEmployeeRepo) List() ([]*entity.EmployeeWithRole, error) {
	var out []*entity.EmployeeWithRole
	for _, e := range r.byTaxID {
		out = append(out, e)
	}
	return out, nil
}

type fakeAddressRepo struct {
	nextID int64
	rows   []*entity.Address
}

func ownerMatches(a *entity.Address, kind entity.AddressOwnerKind, ownerID int64) bool {
	switch kind {
	case entity.OwnerCustomer:
		return a.CustomerID != nil && *a.CustomerID == ownerID
	case entity.OwnerSupplier:
		return a.SupplierID != nil && *a.SupplierID == ownerID
	case entity.OwnerEmployee:
		return a.EmployeeID != nil && *a.EmployeeID == ownerID
	}
	return false
}

func (r *fakeAddressRepo) Create(a *entity.Address) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.rows = append(r.rows, a)
	return a.ID, nil
}

func (r *fakeAddressRepo) GetByOwner(kind entity.AddressOwnerKind, ownerID int64) (*entity.Address, error) {
	for _, a := range r.rows {
		if ownerMatches(a, kind, ownerID) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAddressRepo) UpdateByOwner(kind entity.AddressOwnerKind, ownerID int64, in *entity.Address) error {
	for _, a := range r.rows {
		if ownerMatches(a, kind, ownerID) {
			a.PostalCode = in.PostalCode
			a.Street = in.Street
			a.Neighborhood = in.Neighborhood
			a.City = in.City
			a.State = in.State
			a.IBGECode = in.IBGECode
			a.Number = in.Number
			a.Reference = in.Reference
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner executa o callback diretamente sobre os fakes, contando
// commits e rollbacks.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	suppliers *fakeSupplierRepo
	employees *fakeEmployeeRepo
	addresses *fakeAddressRepo
	commits   int
	rollbacks int
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		customers: newFakeCustomerRepo(),
		suppliers: newFakeSupplierRepo(),
		employees: newFakeEmployeeRepo(),
		addresses: &fakeAddressRepo{},
	}
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.CustomerRepository,
	repository.SupplierRepository,
	repository.EmployeeRepository,
	repository.AddressRepository,
) error) error {
	if err := fn(r.customers, r.suppliers, r.employees, r.addresses); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_SemEndereco(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	out, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:  "  Maria Silva ",
		TaxID: "12345678901",
		Email: "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 1, runner.commits)
	assert.Empty(t, runner.addresses.rows, "sem CEP não deve gravar endereço")

	stored, err := runner.customers.GetByTaxID("12345678901")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Maria Silva", stored.Name, "espaços nas pontas devem ser removidos")
}

func TestCustomerCreate_ComEndereco(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	out, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:  "João Souza",
		TaxID: "98765432100",
		Address: &dto.AddressRequest{
			PostalCode: "01001000",
			Street:     "Praça da Sé",
			City:       "São Paulo",
			State:      "SP",
		},
	})
	require.NoError(t, err)
	require.Len(t, runner.addresses.rows, 1, "deve gravar exatamente um endereço")

	addr := runner.addresses.rows[0]
	require.NotNil(t, addr.CustomerID)
	assert.Equal(t, out.ID, *addr.CustomerID, "o endereço deve pertencer ao cliente criado")
	assert.Nil(t, addr.SupplierID)
	assert.Nil(t, addr.EmployeeID)
}

func TestCustomerCreate_SemNomeOuCPF(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{TaxID: "111"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "Sem CPF"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, runner.commits, "validação falha antes de abrir transação")
}

func TestCustomerCreate_CPFDuplicado(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "A", TaxID: "11122233344"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "B", TaxID: "11122233344"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestCustomerUpdate_CPFInexistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Update(context.Background(), "00000000000", &dto.UpdateCustomerRequest{Name: "Novo Nome"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, runner.rollbacks)
}

func TestCustomerUpdate_InsereEnderecoQuandoNaoExiste(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "Ana", TaxID: "22233344455"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "22233344455", &dto.UpdateCustomerRequest{
		Name:    "Ana Paula",
		Address: &dto.AddressRequest{PostalCode: "30130010", City: "Belo Horizonte"},
	})
	require.NoError(t, err)
	assert.Len(t, runner.addresses.rows, 1)
}

func TestCustomerUpdate_AtualizaEnderecoExistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:    "Ana",
		TaxID:   "22233344455",
		Address: &dto.AddressRequest{PostalCode: "30130010", City: "Belo Horizonte"},
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "22233344455", &dto.UpdateCustomerRequest{
		Name:    "Ana",
		Address: &dto.AddressRequest{PostalCode: "01001000", City: "São Paulo"},
	})
	require.NoError(t, err)

	require.Len(t, runner.addresses.rows, 1, "atualização não deve criar segundo endereço")
	assert.Equal(t, "01001000", runner.addresses.rows[0].PostalCode)
	assert.Equal(t, "São Paulo", runner.addresses.rows[0].City)
}

func TestCustomerUpdate_SemCEPNaoTocaEndereco(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:    "Ana",
		TaxID:   "22233344455",
		Address: &dto.AddressRequest{PostalCode: "30130010", City: "Belo Horizonte"},
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "22233344455", &dto.UpdateCustomerRequest{Name: "Ana Paula"})
	require.NoError(t, err)
	assert.Equal(t, "30130010", runner.addresses.rows[0].PostalCode, "endereço intocado sem CEP na requisição")
}

func TestCustomerGetByTaxID_Inexistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.GetByTaxID(context.Background(), "00000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerList_FiltroPorCPF(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewCustomerUseCase(runner, runner.customers)

	_, err := uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "A", TaxID: "111"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "B", TaxID: "222"})
	require.NoError(t, err)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := uc.List(context.Background(), "222")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "B", filtered[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fornecedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierCreate_ComEndereco(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewSupplierUseCase(runner, runner.suppliers)

	out, err := uc.Create(context.Background(), &dto.CreateSupplierRequest{
		Name:    "Distribuidora ABC",
		TaxID:   "12345678000190",
		Address: &dto.AddressRequest{PostalCode: "01310100", Street: "Av. Paulista"},
	})
	require.NoError(t, err)
	require.Len(t, runner.addresses.rows, 1)

	addr := runner.addresses.rows[0]
	require.NotNil(t, addr.SupplierID)
	assert.Equal(t, out.ID, *addr.SupplierID)
	assert.Nil(t, addr.CustomerID)
}

func TestSupplierPicker(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewSupplierUseCase(runner, runner.suppliers)

	_, err := uc.Create(context.Background(), &dto.CreateSupplierRequest{Name: "Fornecedor X", TaxID: "111"})
	require.NoError(t, err)

	items, err := uc.Picker(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fornecedor X", items[0].Name)
	assert.NotZero(t, items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Funcionários
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeCreate_ComFuncaoEEndereco(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewEmployeeUseCase(runner, runner.employees)

	roleID := int64(3)
	out, err := uc.Create(context.Background(), &dto.CreateEmployeeRequest{
		Name:      "Carlos Lima",
		TaxID:     "55566677788",
		BirthDate: "1990-04-15",
		HireDate:  "2024-01-02",
		RoleID:    &roleID,
		Address:   &dto.AddressRequest{PostalCode: "01001000"},
	})
	require.NoError(t, err)

	stored, err := runner.employees.GetByTaxID("55566677788")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1990, stored.BirthDate.Year())
	require.NotNil(t, stored.RoleID)
	assert.Equal(t, roleID, *stored.RoleID)

	require.Len(t, runner.addresses.rows, 1)
	require.NotNil(t, runner.addresses.rows[0].EmployeeID)
	assert.Equal(t, out.ID, *runner.addresses.rows[0].EmployeeID)
}

func TestEmployeeCreate_DataInvalida(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewEmployeeUseCase(runner, runner.employees)

	_, err := uc.Create(context.Background(), &dto.CreateEmployeeRequest{
		Name:      "Carlos",
		TaxID:     "555",
		BirthDate: "15/04/1990", // formato errado
		HireDate:  "2024-01-02",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, runner.commits)
}

func TestEmployeeUpdate_CPFInexistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := registry.NewEmployeeUseCase(runner, runner.employees)

	_, err := uc.Update(context.Background(), "00000000000", &dto.UpdateEmployeeRequest{
		Name:      "Ninguém",
		BirthDate: "1990-01-01",
		HireDate:  "2020-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
