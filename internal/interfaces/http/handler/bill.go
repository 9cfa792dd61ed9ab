package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/retailbill/backend/internal/application/billing"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/logger"
	"github.com/retailbill/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader lets clients retry a sale without recording it twice
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// Sale endpoint messages
const (
	SaleSuccessMessage = "Bill saved & inventory updated successfully!"
	SaleFailureMessage = "Failed to save bill or update inventory"
)

// BillService is the billing use-case surface the handler needs
type BillService interface {
	RecordSale(ctx context.Context, req billingapp.RecordSaleRequest, idempotencyKey string) (*billingapp.RecordSaleResult, error)
	ListBills(ctx context.Context, businessEmail string) ([]billingapp.BillResponse, error)
	GetBill(ctx context.Context, id uuid.UUID) (*billingapp.BillResponse, error)
}

// BillHandler handles the sale and bill ledger endpoints
type BillHandler struct {
	BaseHandler
	bills BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(bills BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

// RecordSale godoc
// @Summary      Record a sale
// @Description  Stores the bill, then decrements stock for every line that matches a catalog product.
// @Description  Lines that could not be applied are listed in data.inventory and do not fail the sale.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client key that makes retries safe"
// @Param        request body billingapp.RecordSaleRequest true "Sale"
// @Success      201 {object} SaleResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} SaleFailureResponse
// @Router       /bills [post]
func (h *BillHandler) RecordSale(c *gin.Context) {
	var req billingapp.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(c, err)
		return
	}

	key := c.GetHeader(IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		h.BadRequest(c, "Idempotency-Key must be at most 255 characters")
		return
	}

	result, err := h.bills.RecordSale(c.Request.Context(), req, key)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidInput) || errors.Is(err, shared.ErrDuplicateRequest) {
			h.HandleError(c, err)
			return
		}
		_ = c.Error(err)
		logger.L(c.Request.Context()).Error("Sale failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, SaleFailureResponse{
			Success: false,
			Message: SaleFailureMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, SaleResponse{
		Success: true,
		Message: SaleSuccessMessage,
		Data:    result,
	})
}

// List godoc
// @Summary      List bills
// @Description  Lists recorded bills newest first, for one business or for all
// @Tags         bills
// @Produce      json
// @Param        businessEmail query string false "Business email"
// @Success      200 {object} APIResponse[[]billingapp.BillResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	email, ok := h.bindScope(c)
	if !ok {
		return
	}

	bills, err := h.bills.ListBills(c.Request.Context(), email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, bills, len(bills))
}

// Get godoc
// @Summary      Get a bill
// @Tags         bills
// @Produce      json
// @Param        id path string true "Bill ID" format(uuid)
// @Success      200 {object} APIResponse[billingapp.BillResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /bills/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	bill, err := h.bills.GetBill(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// RegisterRoutes mounts the bill endpoints under rg
func (h *BillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bills := rg.Group("/bills")
	bills.POST("", h.RecordSale)
	bills.GET("", h.List)
	bills.GET("/:id", h.Get)
}
