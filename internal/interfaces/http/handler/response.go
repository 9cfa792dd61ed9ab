package handler

import (
	billingapp "github.com/retailbill/backend/internal/application/billing"
	"github.com/retailbill/backend/internal/interfaces/http/dto"
)

// Response shapes for the API docs. The sale bodies below are also written
// directly by BillHandler.

// APIResponse is the standard envelope with a typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// The sale endpoint keeps a flat message field instead of the envelope.

// SaleResponse is the body of a recorded sale
// @Description Result of recording a sale
type SaleResponse struct {
	Success bool                         `json:"success" example:"true"`
	Message string                       `json:"message" example:"Bill saved & inventory updated successfully!"`
	Data    *billingapp.RecordSaleResult `json:"data,omitempty"`
}

// SaleFailureResponse is the body of a sale that could not be stored
// @Description Generic sale failure
type SaleFailureResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Failed to save bill or update inventory"`
}
