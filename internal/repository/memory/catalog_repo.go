package memory

import (
	"bb-schoonmaak-backend/internal/domain"
)

// catalogRepository serves the static site catalog. The data set is fixed at
// compile time; entries are copied out so callers cannot mutate the source.
type catalogRepository struct {
	services []domain.Service
	jobs     []domain.Job
	reviews  []domain.Review
	about    domain.AboutContent
	navItems []domain.NavItem
}

// NewCatalogRepository creates the in-memory catalog repository
func NewCatalogRepository() domain.CatalogRepository {
	return &catalogRepository{
		services: services,
		jobs:     jobs,
		reviews:  reviews,
		about:    about,
		navItems: navItems,
	}
}

func (r *catalogRepository) ListServices() []domain.Service {
	out := make([]domain.Service, len(r.services))
	copy(out, r.services)
	return out
}

func (r *catalogRepository) GetServiceBySlug(slug string) (*domain.Service, error) {
	for _, s := range r.services {
		if s.Slug == slug {
			svc := s
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *catalogRepository) ListJobs() []domain.Job {
	out := make([]domain.Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

func (r *catalogRepository) GetJobByID(id string) (*domain.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *catalogRepository) ListReviews() []domain.Review {
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out
}

func (r *catalogRepository) About() domain.AboutContent {
	return r.about
}

func (r *catalogRepository) NavItems() []domain.NavItem {
	out := make([]domain.NavItem, len(r.navItems))
	copy(out, r.navItems)
	return out
}
