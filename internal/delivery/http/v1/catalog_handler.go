package v1

import (
	"errors"
	"net/http"

	"bb-schoonmaak-backend/internal/delivery/http/response"
	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewCatalogHandler registers the static catalog routes the site renders from
func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
	}

	public.GET("/services", handler.ListServices)
	public.GET("/services/:slug", handler.GetService)
	public.GET("/jobs", handler.ListJobs)
	public.GET("/jobs/:id", handler.GetJob)
	public.GET("/reviews", handler.ListReviews)
	public.GET("/content/about", handler.GetAbout)
}

// ListServices godoc
// @Summary      List Services
// @Description  All cleaning services with slug, description and icon kind.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogUC.ListServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Services retrieved", services)
}

// GetService godoc
// @Summary      Get Service Detail
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Service slug"
// @Success      200   {object}  response.Response{data=domain.Service}
// @Failure      404   {object}  response.Response
// @Router       /services/{slug} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalogUC.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Dienst niet gevonden"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Service retrieved", service)
}

// ListJobs godoc
// @Summary      List Vacancies
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *CatalogHandler) ListJobs(c *gin.Context) {
	jobs, err := h.catalogUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get Vacancy Detail
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *CatalogHandler) GetJob(c *gin.Context) {
	job, err := h.catalogUC.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Vacature niet gevonden"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// ListReviews godoc
// @Summary      List Reviews
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Review}
// @Router       /reviews [get]
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	reviews, err := h.catalogUC.ListReviews(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reviews retrieved", reviews)
}

// GetAbout godoc
// @Summary      Get About Content
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AboutContent}
// @Router       /content/about [get]
func (h *CatalogHandler) GetAbout(c *gin.Context) {
	about, err := h.catalogUC.About(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About content retrieved", about)
}
