package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/google/uuid"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	positionRepo repository.PositionRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(employeeRepo repository.EmployeeRepository, positionRepo repository.PositionRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	// Проверяем существование должности
	position, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		PositionID: position.ID,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	employee.Position = position
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Обновляем должность, если передана
	if req.PositionID != nil {
		position, err := s.positionRepo.GetByID(ctx, *req.PositionID)
		if err != nil {
			return nil, err
		}
		employee.PositionID = position.ID
		employee.Position = position
	}

	// Обновляем имя, если передано
	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
