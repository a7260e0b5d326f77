package v1

import (
	"net/http"

	"bb-schoonmaak-backend/internal/delivery/http/response"
	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// visitorIDHeader carries the anonymous id the SPA generates per browser.
// It replaces direct localStorage access with server-held state.
const visitorIDHeader = "X-Visitor-ID"

type ClientStateHandler struct {
	stateUC domain.ClientStateUsecase
}

type consentBody struct {
	Status string `json:"status" binding:"required"`
}

// NewClientStateHandler registers the consent and widget-state routes
func NewClientStateHandler(public *gin.RouterGroup, stateUC domain.ClientStateUsecase) {
	handler := &ClientStateHandler{
		stateUC: stateUC,
	}

	state := public.Group("/state")
	state.GET("/consent", handler.GetConsent)
	state.PUT("/consent", handler.PutConsent)
	state.DELETE("/consent", handler.DeleteConsent)
	state.GET("/whatsapp-widget", handler.GetWidgetVisibility)
	state.POST("/whatsapp-widget/dismiss", handler.DismissWidget)
}

// GetConsent godoc
// @Summary      Get Cookie Consent
// @Description  Returns the stored consent decision for this visitor, empty when undecided.
// @Tags         state
// @Produce      json
// @Param        X-Visitor-ID  header    string  true  "Anonymous visitor id"
// @Success      200           {object}  response.Response
// @Router       /state/consent [get]
func (h *ClientStateHandler) GetConsent(c *gin.Context) {
	visitorID, ok := h.visitorID(c)
	if !ok {
		return
	}

	status, err := h.stateUC.Consent(c.Request.Context(), visitorID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Consent retrieved", gin.H{"status": status})
}

// PutConsent godoc
// @Summary      Record Cookie Consent
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        X-Visitor-ID  header    string       true  "Anonymous visitor id"
// @Param        consent       body      consentBody  true  "accepted or rejected"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Router       /state/consent [put]
func (h *ClientStateHandler) PutConsent(c *gin.Context) {
	visitorID, ok := h.visitorID(c)
	if !ok {
		return
	}

	var body consentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.stateUC.RecordConsent(c.Request.Context(), visitorID, domain.ConsentStatus(body.Status)); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "Consent recorded", nil)
}

// DeleteConsent godoc
// @Summary      Withdraw Cookie Consent
// @Tags         state
// @Produce      json
// @Param        X-Visitor-ID  header    string  true  "Anonymous visitor id"
// @Success      200           {object}  response.Response
// @Router       /state/consent [delete]
func (h *ClientStateHandler) DeleteConsent(c *gin.Context) {
	visitorID, ok := h.visitorID(c)
	if !ok {
		return
	}

	if err := h.stateUC.WithdrawConsent(c.Request.Context(), visitorID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Consent withdrawn", nil)
}

// GetWidgetVisibility godoc
// @Summary      Get WhatsApp Widget Visibility
// @Description  False while the 24h cooldown after an explicit dismissal is active.
// @Tags         state
// @Produce      json
// @Param        X-Visitor-ID  header    string  true  "Anonymous visitor id"
// @Success      200           {object}  response.Response
// @Router       /state/whatsapp-widget [get]
func (h *ClientStateHandler) GetWidgetVisibility(c *gin.Context) {
	visitorID, ok := h.visitorID(c)
	if !ok {
		return
	}

	show, err := h.stateUC.ShouldShowWidget(c.Request.Context(), visitorID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Widget visibility retrieved", gin.H{"show": show})
}

// DismissWidget godoc
// @Summary      Dismiss WhatsApp Widget
// @Tags         state
// @Produce      json
// @Param        X-Visitor-ID  header    string  true  "Anonymous visitor id"
// @Success      200           {object}  response.Response
// @Router       /state/whatsapp-widget/dismiss [post]
func (h *ClientStateHandler) DismissWidget(c *gin.Context) {
	visitorID, ok := h.visitorID(c)
	if !ok {
		return
	}

	if err := h.stateUC.DismissWidget(c.Request.Context(), visitorID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Widget dismissed", nil)
}

func (h *ClientStateHandler) visitorID(c *gin.Context) (string, bool) {
	id := c.GetHeader(visitorIDHeader)
	if id == "" {
		c.Error(apperror.BadRequest("X-Visitor-ID header is required"))
		return "", false
	}
	return id, true
}
