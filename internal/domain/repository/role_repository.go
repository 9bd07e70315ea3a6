package repository

import "github.com/annaclaralemossilva/testesss/internal/domain/entity"

// RoleRepository define o porto de persistência para Role.
type RoleRepository interface {
	Create(r *entity.Role) (int64, error)
	List() ([]*entity.Role, error)
	// Update atualiza todos os campos pelo id. domain.ErrNotFound se nenhuma linha foi afetada.
	Update(r *entity.Role) error
}
