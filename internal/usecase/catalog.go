package usecase

import (
	"context"

	"bb-schoonmaak-backend/internal/domain"
)

type catalogUsecase struct {
	repo domain.CatalogRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(repo domain.CatalogRepository) domain.CatalogUsecase {
	return &catalogUsecase{repo: repo}
}

func (uc *catalogUsecase) ListServices(_ context.Context) ([]domain.Service, error) {
	return uc.repo.ListServices(), nil
}

func (uc *catalogUsecase) GetServiceBySlug(_ context.Context, slug string) (*domain.Service, error) {
	return uc.repo.GetServiceBySlug(slug)
}

func (uc *catalogUsecase) ListJobs(_ context.Context) ([]domain.Job, error) {
	return uc.repo.ListJobs(), nil
}

func (uc *catalogUsecase) GetJobByID(_ context.Context, id string) (*domain.Job, error) {
	return uc.repo.GetJobByID(id)
}

func (uc *catalogUsecase) ListReviews(_ context.Context) ([]domain.Review, error) {
	return uc.repo.ListReviews(), nil
}

func (uc *catalogUsecase) About(_ context.Context) (domain.AboutContent, error) {
	return uc.repo.About(), nil
}
