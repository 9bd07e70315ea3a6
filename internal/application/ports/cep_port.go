package ports

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
)

// CEPService porto de consulta de CEP (serviço externo de endereços).
// domain.ErrNotFound quando o serviço não conhece o CEP.
type CEPService interface {
	Lookup(ctx context.Context, cep string) (*dto.CEPResponse, error)
}
