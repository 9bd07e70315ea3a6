package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// CustomerRepository define o porto de persistência para Customer.
type CustomerRepository interface {
	// Create insere o cliente e retorna o id gerado. domain.ErrDuplicate se o CPF já existe.
	Create(c *entity.Customer) (int64, error)
	// UpdateByTaxID atualiza nome/email/telefone pelo CPF e retorna o id da linha.
	// domain.ErrNotFound se nenhuma linha foi afetada.
	UpdateByTaxID(c *entity.Customer) (int64, error)
	// GetByTaxID retorna o cliente com endereço (nil, nil se não existe).
	GetByTaxID(taxID string) (*entity.CustomerWithAddress, error)
	// List retorna todos os clientes com endereço; taxID não vazio filtra por igualdade.
	List(taxID string) ([]*entity.CustomerWithAddress, error)
}
