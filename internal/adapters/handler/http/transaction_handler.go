package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-finance/internal/core/services"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

type categoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type createTransactionRequest struct {
	Description string           `json:"description"`
	Amount      *float64         `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required"`
	Date        string           `json:"date"`
	Category    *categoryRequest `json:"category"`
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	txs := router.Group("/transactions")
	{
		txs.POST("", h.Create)
		txs.GET("", h.List)
		txs.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Record income or an expense
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
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

	input := services.CreateTransactionInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      *req.Amount,
		Type:        req.Type,
		Date:        date,
	}
	if req.Category != nil {
		input.CategoryName = req.Category.Name
		input.CategoryColor = req.Category.Color
	}

	tx, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// List godoc
// @Summary      List transactions, optionally within a date range
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Start date (RFC3339 or YYYY-MM-DD)"
// @Param        to    query     string  false  "End date (RFC3339 or YYYY-MM-DD)"
// @Success      200   {array}   domain.Transaction
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	input := services.ListTransactionsInput{UserID: userID}

	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
			return
		}
		input.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
			return
		}
		if len(to) == len(dateLayout) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		input.To = t
	}

	list, err := h.svc.List(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete godoc
// @Summary      Delete a transaction
// @Tags         transactions
// @Security     BearerAuth
// @Param        id   path  string  true  "Transaction ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
