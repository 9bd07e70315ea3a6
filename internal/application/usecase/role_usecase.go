package usecase

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// RoleUseCase orquestra as funções/cargos de funcionários.
type RoleUseCase struct {
	repo repository.RoleRepository
}

func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create cadastra uma função. Nome e descrição são obrigatórios;
// salário e carga horária não podem ser negativos.
func (uc *RoleUseCase) Create(ctx context.Context, in *dto.CreateRoleRequest) (*dto.CreatedResponse, error) {
	textutil.CleanAll(&in.Name, &in.Description)
	if in.Name == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() || in.WeeklyHours < 0 {
		return nil, domain.ErrInvalidInput
	}

	id, err := uc.repo.Create(&entity.Role{
		Name:        in.Name,
		Description: in.Description,
		Salary:      in.Salary,
		WeeklyHours: in.WeeklyHours,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Função cadastrada com sucesso."}, nil
}

// Update atualiza todos os campos da função pelo id da rota.
func (uc *RoleUseCase) Update(ctx context.Context, id int64, in *dto.UpdateRoleRequest) (*dto.MessageResponse, error) {
	textutil.CleanAll(&in.Name, &in.Description)
	if id <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() || in.WeeklyHours < 0 {
		return nil, domain.ErrInvalidInput
	}

	err := uc.repo.Update(&entity.Role{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Salary:      in.Salary,
		WeeklyHours: in.WeeklyHours,
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Função atualizada com sucesso."}, nil
}

// List retorna todas as funções.
func (uc *RoleUseCase) List(ctx context.Context) ([]*dto.RoleResponse, error) {
	roles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Salary:      r.Salary,
			WeeklyHours: r.WeeklyHours,
		})
	}
	return out, nil
}

// Picker retorna id e nome de todas as funções, para o formulário de funcionário.
func (uc *RoleUseCase) Picker(ctx context.Context) ([]*dto.RolePickerItem, error) {
	roles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RolePickerItem, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RolePickerItem{ID: r.ID, Name: r.Name})
	}
	return out, nil
}
