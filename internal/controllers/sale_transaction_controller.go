package controllers

import (
	"net/http"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/utils"
)

type SaleTransactionController struct {
	saleService services.SaleService
}

func NewSaleTransactionController(s services.SaleService) *SaleTransactionController {
	return &SaleTransactionController{saleService: s}
}

// POST /api/sale-transaction
func (c *SaleTransactionController) BookSaleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req dtos.BookSaleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	transaction, err := c.saleService.Book(r.Context(), user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Form submission success", transaction)
}

// GET /api/sale-transaction/{sale_transaction_id}
func (c *SaleTransactionController) GetSaleTransactionHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "sale_transaction_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	detail, err := c.saleService.GetTransaction(r.Context(), user, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved transaction", detail)
}

// GET /api/my-sale-transaction
func (c *SaleTransactionController) MySaleTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	details, err := c.saleService.ListMyTransactions(r.Context(), user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved transaction", details)
}

// POST /api/pay-sale/{sale_transaction_id}
func (c *SaleTransactionController) PaySaleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "sale_transaction_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	transaction, err := c.saleService.Pay(r.Context(), user, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Payment processing success", transaction)
}
