package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type ChallengeHandler struct {
	svc *services.ChallengeService
}

func NewChallengeHandler(svc *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{svc: svc}
}

type recordChallengeRequest struct {
	Prompt       string `json:"prompt"`
	IsGoodChoice *bool  `json:"is_good_choice" binding:"required"`
	Date         string `json:"date"`
}

func (h *ChallengeHandler) RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	{
		challenges.POST("", h.Record)
		challenges.GET("", h.List)
	}
}

// Record godoc
// @Summary      Answer a daily money-habit challenge
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordChallengeRequest  true  "Answer"
// @Success      201   {object}  domain.Challenge
// @Failure      400   {object}  map[string]string
// @Router       /challenges [post]
func (h *ChallengeHandler) Record(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req recordChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use RFC3339 or YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	challenge, err := h.svc.Record(c.Request.Context(), services.RecordChallengeInput{
		UserID:       userID,
		Prompt:       req.Prompt,
		IsGoodChoice: *req.IsGoodChoice,
		Date:         date,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// List godoc
// @Summary      Challenge history
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Challenge
// @Router       /challenges [get]
func (h *ChallengeHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
