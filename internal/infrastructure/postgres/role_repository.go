package postgres

import (
	"context"
	"fmt"

	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementação de RoleRepository (usável com pool ou tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste uma nova função e devolve o id gerado.
func (r *RoleRepo) Create(role *entity.Role) (int64, error) {
	query := `
		INSERT INTO roles (name, description, salary, weekly_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		role.Name, role.Description, role.Salary, role.WeeklyHours,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert role: %w", err)
	}
	return id, nil
}

// List lista todas as funções.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `SELECT id, name, description, salary, weekly_hours FROM roles ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.Salary, &role.WeeklyHours); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update atualiza todos os campos da função pelo id.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, salary = $4, weekly_hours = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Salary, role.WeeklyHours,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
