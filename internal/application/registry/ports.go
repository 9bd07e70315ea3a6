package registry

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do protocolo
// entidade+endereço: ou a entidade e seu endereço entram juntos, ou nada entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		supplierRepo repository.SupplierRepository,
		employeeRepo repository.EmployeeRepository,
		addressRepo repository.AddressRepository,
	) error) error
}
