package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/repositories"
	"github.com/homeseek/backend/internal/utils"
)

type OwnerService interface {
	List(ctx context.Context) ([]*models.Owner, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Owner, error)
}

type ownerService struct {
	owners repositories.OwnerRepository
}

func NewOwnerService(owners repositories.OwnerRepository) OwnerService {
	return &ownerService{owners: owners}
}

func (s *ownerService) List(ctx context.Context) ([]*models.Owner, error) {
	owners, err := s.owners.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed fetching owner list", err)
	}
	return owners, nil
}

func (s *ownerService) Get(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	owner, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Failed fetching owner data", err)
	}
	if owner == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Owner not found",
			fmt.Errorf("no owner matching id: %s", id))
	}
	return owner, nil
}
