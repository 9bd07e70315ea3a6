package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	apphttp "github.com/annaclaralemossilva/testesss/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar um CustomerUseCase real em memória
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	nextID  int64
	byTaxID map[string]*entity.CustomerWithAddress
}

func (r *memCustomerRepo) Create(c *entity.Customer) (int64, error) {
	if _, ok := r.byTaxID[c.TaxID]; ok {
		return 0, domain.ErrDuplicate
	}
	r.nextID++
	c.ID = r.nextID
	r.byTaxID[c.TaxID] = &entity.CustomerWithAddress{Customer: *c}
	return c.ID, nil
}

func (r *memCustomerRepo) UpdateByTaxID(c *entity.Customer) (int64, error) {
	existing, ok := r.byTaxID[c.TaxID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	existing.Name = c.Name
	return existing.ID, nil
}

func (r *memCustomerRepo) GetByTaxID(taxID string) (*entity.CustomerWithAddress, error) {
	return r.byTaxID[taxID], nil
}

func (r *memCustomerRepo) List(taxID string) ([]*entity.CustomerWithAddress, error) {
	var out []*entity.CustomerWithAddress
	for _, c := range r.byTaxID {
		if taxID == "" || c.TaxID == taxID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memAddressRepo struct{ rows []*entity.Address }

func (r *memAddressRepo) Create(a *entity.Address) (int64, error) {
	r.rows = append(r.rows, a)
	return int64(len(r.rows)), nil
}

func (r *memAddressRepo) GetByOwner(entity.AddressOwnerKind, int64) (*entity.Address, error) {
	return nil, nil
}

func (r *memAddressRepo) UpdateByOwner(entity.AddressOwnerKind, int64, *entity.Address) error {
	return nil
}

type memTxRunner struct {
	customers *memCustomerRepo
	addresses *memAddressRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	repository.CustomerRepository,
	repository.SupplierRepository,
	repository.EmployeeRepository,
	repository.AddressRepository,
) error) error {
	return fn(r.customers, nil, nil, r.addresses)
}

type fakeCEPService struct{}

func (fakeCEPService) Lookup(_ context.Context, cep string) (*dto.CEPResponse, error) {
	switch cep {
	case "01001000":
		return &dto.CEPResponse{PostalCode: "01001-000", City: "São Paulo", State: "SP"}, nil
	case "99999999":
		return nil, domain.ErrNotFound
	default:
		return nil, domain.ErrInvalidInput
	}
}

// buildTestApp monta uma aplicação Fiber só com as rotas de cliente e CEP,
// suficiente para exercitar o mapeamento de erros de domínio para status HTTP.
func buildTestApp() *fiber.App {
	runner := &memTxRunner{
		customers: &memCustomerRepo{byTaxID: map[string]*entity.CustomerWithAddress{}},
		addresses: &memAddressRepo{},
	}
	customerUC := registry.NewCustomerUseCase(runner, runner.customers)
	customerHandler := apphttp.NewCustomerHandler(customerUC)
	cepHandler := apphttp.NewCEPHandler(fakeCEPService{})

	app := fiber.New()
	app.Post("/customers", customerHandler.Create)
	app.Get("/customers/:tax_id", customerHandler.GetByTaxID)
	app.Get("/cep/:cep", cepHandler.Lookup)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeamento de status
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_HTTP201(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/customers",
		`{"name":"Maria","tax_id":"12345678901"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.NotEmpty(t, body.Message)
}

func TestCustomerCreate_HTTP400SemNome(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/customers", `{"tax_id":"123"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestCustomerCreate_HTTP400CorpoInvalido(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/customers", `{"name":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_BODY", body.Code)
}

func TestCustomerCreate_HTTP409Duplicado(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/customers",
		`{"name":"Maria","tax_id":"12345678901"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/customers",
		`{"name":"Outra Maria","tax_id":"12345678901"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCustomerGet_HTTP404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/customers/00000000000", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCEP_Mapeamento(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/cep/01001000", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/cep/99999999", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/cep/abc", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
