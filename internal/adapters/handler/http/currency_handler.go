package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-finance/internal/core/currency"
	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type CurrencyHandler struct {
	svc *services.CurrencyService
}

func NewCurrencyHandler(svc *services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

type currencyOption struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

type currencyResponse struct {
	Code      string           `json:"code"`
	Symbol    string           `json:"symbol"`
	Supported []currencyOption `json:"supported"`
}

type setCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/currency", h.Get)
		settings.PUT("/currency", h.Set)
	}
}

func newCurrencyResponse(code string) currencyResponse {
	codes := currency.Codes()
	supported := make([]currencyOption, 0, len(codes))
	for _, c := range codes {
		supported = append(supported, currencyOption{Code: c, Symbol: currency.Symbol(c)})
	}
	return currencyResponse{
		Code:      code,
		Symbol:    currency.Symbol(code),
		Supported: supported,
	}
}

// Get godoc
// @Summary      Preferred display currency
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currencyResponse
// @Router       /settings/currency [get]
func (h *CurrencyHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	code, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCurrencyResponse(code))
}

// Set godoc
// @Summary      Change the display currency
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setCurrencyRequest  true  "Currency code"
// @Success      200   {object}  currencyResponse
// @Failure      400   {object}  map[string]string
// @Router       /settings/currency [put]
func (h *CurrencyHandler) Set(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req setCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.svc.Set(c.Request.Context(), userID, req.Code)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCurrencyResponse(change.Code))
}
