package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type InsightsHandler struct {
	svc *services.InsightsService
}

func NewInsightsHandler(svc *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

func (h *InsightsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/insights", h.Get)
}

// Get godoc
// @Summary      Money tree dashboard
// @Description  Derived health metrics, garden tips and display values. Responds 404 with code "onboarding_required" until a profile exists.
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Param        fresh  query     bool  false  "Skip the cached report"
// @Success      200    {object}  domain.InsightsReport
// @Failure      404    {object}  map[string]string
// @Router       /insights [get]
func (h *InsightsHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fresh, _ := strconv.ParseBool(c.Query("fresh"))

	get := h.svc.Get
	if fresh {
		get = h.svc.Recompute
	}

	report, err := get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
