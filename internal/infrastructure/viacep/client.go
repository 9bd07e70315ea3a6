package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/ports"
	"github.com/annaclaralemossilva/testesss/internal/domain"
)

// Garantir em tempo de compilação que Client implementa CEPService.
var _ ports.CEPService = (*Client)(nil)

// Client adaptador que implementa CEPService consultando a API pública ViaCEP.
// Usa net/http da biblioteca padrão; o serviço não exige autenticação.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o adaptador. baseURL normalmente é https://viacep.com.br.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// viacepPayload corpo de resposta do ViaCEP. O serviço devolve 200 com
// {"erro": true} quando o CEP tem formato válido mas não existe.
type viacepPayload struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	IBGECode     string `json:"ibge"`
	Error        bool   `json:"erro"`
}

// Lookup consulta um CEP de 8 dígitos e devolve o endereço correspondente.
func (c *Client) Lookup(ctx context.Context, cep string) (*dto.CEPResponse, error) {
	if !validCEP(cep) {
		return nil, domain.ErrInvalidInput
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: criar HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("viacep: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("viacep: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("viacep: ler resposta: %w", err)
	}

	// ViaCEP responde 400 para CEPs malformados.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, domain.ErrInvalidInput
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var payload viacepPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("viacep: deserializar resposta: %w", err)
	}
	if payload.Error {
		return nil, domain.ErrNotFound
	}

	return &dto.CEPResponse{
		PostalCode:   payload.CEP,
		Street:       payload.Street,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
		IBGECode:     payload.IBGECode,
	}, nil
}

// validCEP aceita exatamente 8 dígitos.
func validCEP(cep string) bool {
	if len(cep) != 8 {
		return false
	}
	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
