package v1

import (
	"errors"
	"net/http"
	"strings"

	"bb-schoonmaak-backend/internal/delivery/http/response"
	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/relay"
	"bb-schoonmaak-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewFormHandler registers the form submission routes (public, no auth required)
func NewFormHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &FormHandler{
		submissionUC: submissionUC,
	}

	public.POST("/contact", handler.SubmitContact)
	public.POST("/quote", handler.SubmitQuote)
	public.POST("/application", handler.SubmitApplication)
	public.POST("/application/open", handler.SubmitOpenApplication)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form message to the office mailbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.submissionUC.SubmitContact(c.Request.Context(), &req); err != nil {
		h.renderSubmissionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Uw bericht is succesvol verzonden!", nil)
}

// SubmitQuote godoc
// @Summary      Submit Custom Quote Request
// @Description  Relay an offerte request. The service slug is resolved to a readable title for the email subject.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Request Data"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /quote [post]
func (h *FormHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.submissionUC.SubmitQuote(c.Request.Context(), &req); err != nil {
		h.renderSubmissionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Uw offerteaanvraag is succesvol verzonden!", nil)
}

// SubmitApplication godoc
// @Summary      Submit Job Application
// @Description  Relay a sollicitatie for the cleaning staff vacancy, optional CV attached (max 5MB decoded).
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        application  body      domain.ApplicationRequest  true  "Application Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      502          {object}  response.Response
// @Router       /application [post]
func (h *FormHandler) SubmitApplication(c *gin.Context) {
	h.submitApplication(c, domain.DefaultApplicationType)
}

// SubmitOpenApplication godoc
// @Summary      Submit Open Application
// @Description  Relay an open sollicitatie not tied to a specific vacancy.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        application  body      domain.ApplicationRequest  true  "Application Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      502          {object}  response.Response
// @Router       /application/open [post]
func (h *FormHandler) SubmitOpenApplication(c *gin.Context) {
	h.submitApplication(c, domain.OpenApplicationType)
}

func (h *FormHandler) submitApplication(c *gin.Context, applicationType string) {
	var req domain.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.submissionUC.SubmitApplication(c.Request.Context(), &req, applicationType); err != nil {
		h.renderSubmissionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Uw sollicitatie is succesvol verzonden!", nil)
}

// renderSubmissionError translates pipeline errors for the frontend.
// Validation errors carry the inline field messages. The transport branches
// below are unreachable under the default always-succeed fallback policy; they
// fire only when PROPAGATE_RELAY_FAILURES is enabled.
func (h *FormHandler) renderSubmissionError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		response.ValidationFailed(c, vErr.Messages)
		return
	}

	if strings.Contains(err.Error(), relay.ConfigurationErrorMarker) {
		c.Error(apperror.New(http.StatusBadGateway,
			"Configuratiefout: De ontwikkelaar moet het relay-endpoint instellen.", err))
		return
	}
	c.Error(apperror.New(http.StatusBadGateway,
		"Er is iets misgegaan bij het versturen. Controleer uw verbinding en probeer het later opnieuw.", err))
}
