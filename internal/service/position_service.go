package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/google/uuid"
)

// PositionService определяет интерфейс бизнес-логики для должностей
type PositionService interface {
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error)
	GetByID(ctx context.Context, id string) (*domain.Position, error)
	GetAll(ctx context.Context) ([]domain.Position, error)
	Update(ctx context.Context, id string, req *dto.UpdatePositionRequest) (*domain.Position, error)
	Delete(ctx context.Context, id string) error
}

type positionService struct {
	positionRepo repository.PositionRepository
}

// NewPositionService создаёт новый экземпляр сервиса
func NewPositionService(positionRepo repository.PositionRepository) PositionService {
	return &positionService{positionRepo: positionRepo}
}

func (s *positionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*domain.Position, error) {
	position := &domain.Position{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(req.Name),
	}

	if err := s.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	return position, nil
}

func (s *positionService) GetByID(ctx context.Context, id string) (*domain.Position, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *positionService) GetAll(ctx context.Context) ([]domain.Position, error) {
	return s.positionRepo.GetAll(ctx)
}

func (s *positionService) Update(ctx context.Context, id string, req *dto.UpdatePositionRequest) (*domain.Position, error) {
	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	position.Name = strings.TrimSpace(req.Name)

	if err := s.positionRepo.Update(ctx, position); err != nil {
		return nil, err
	}

	return position, nil
}

func (s *positionService) Delete(ctx context.Context, id string) error {
	return s.positionRepo.Delete(ctx, id)
}
