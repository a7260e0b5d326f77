package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// IconKind tags a catalog entry with the icon the frontend should render.
// The catalog stays pure data; the icon-kind to renderer lookup lives client-side.
type IconKind string

const (
	IconSparkles    IconKind = "sparkles"
	IconDroplets    IconKind = "droplets"
	IconPaintBucket IconKind = "paint-bucket"
	IconBuilding    IconKind = "building"
	IconWind        IconKind = "wind"
)

// Sentinel service-type values the quote form offers next to the real catalog
const (
	ServiceTypeCustom = "maatwerk"
	ServiceTypeOther  = "anders"
)

type Service struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Icon        IconKind `json:"icon"`
	Span        bool     `json:"span,omitempty"`
}

type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

type Review struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type AboutContent struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
}

type NavItem struct {
	Label     string `json:"label"`
	Href      string `json:"href"`
	SectionID string `json:"sectionId,omitempty"`
}

// CatalogRepository serves the static site reference data. Lookups are
// in-memory and never block, so no context parameter is carried.
type CatalogRepository interface {
	ListServices() []Service
	GetServiceBySlug(slug string) (*Service, error)
	ListJobs() []Job
	GetJobByID(id string) (*Job, error)
	ListReviews() []Review
	About() AboutContent
	NavItems() []NavItem
}

type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*Service, error)
	ListJobs(ctx context.Context) ([]Job, error)
	GetJobByID(ctx context.Context, id string) (*Job, error)
	ListReviews(ctx context.Context) ([]Review, error)
	About(ctx context.Context) (AboutContent, error)
}
