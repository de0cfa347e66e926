package http

import (
	"context"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/service"
)

// Service is the project operations the handlers need.
type Service interface {
	Create(ctx context.Context, in service.CreateProjectInput) (*service.CreateResult, error)
	List(ctx context.Context, p service.ListParams) (*service.ListResult, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Project, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	Delete(ctx context.Context, id string) error
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type statusReq struct {
	Status string `json:"status"`
}
