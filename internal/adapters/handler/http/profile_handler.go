package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type profileRequest struct {
	MonthlyIncome  float64 `json:"monthly_income" binding:"gte=0"`
	SavingsGoal    float64 `json:"savings_goal" binding:"gte=0"`
	CurrentBalance float64 `json:"current_balance"`
	TotalSavings   float64 `json:"total_savings" binding:"gte=0"`
	Personality    string  `json:"financial_personality"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Upsert)
	}
}

// Get godoc
// @Summary      Current user's financial profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary      Save onboarding answers
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.svc.Upsert(c.Request.Context(), services.UpsertProfileInput{
		UserID:         userID,
		MonthlyIncome:  req.MonthlyIncome,
		SavingsGoal:    req.SavingsGoal,
		CurrentBalance: req.CurrentBalance,
		TotalSavings:   req.TotalSavings,
		Personality:    req.Personality,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
