package controllers

import (
	"net/http"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/utils"
)

type RentTransactionController struct {
	rentService services.RentService
}

func NewRentTransactionController(s services.RentService) *RentTransactionController {
	return &RentTransactionController{rentService: s}
}

// POST /api/rent-transaction
func (c *RentTransactionController) BookRentHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req dtos.BookRentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	transaction, err := c.rentService.Book(r.Context(), user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Form submission success", transaction)
}

// GET /api/rent-transaction/{rent_transaction_id}
func (c *RentTransactionController) GetRentTransactionHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "rent_transaction_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	detail, err := c.rentService.GetTransaction(r.Context(), user, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved transaction", detail)
}

// GET /api/my-rent-transaction
func (c *RentTransactionController) MyRentTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	details, err := c.rentService.ListMyTransactions(r.Context(), user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully retrieved transaction", details)
}

// POST /api/pay-rent/{rent_transaction_id}
func (c *RentTransactionController) PayRentHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	id, err := pathUUID(r, "rent_transaction_id")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	transaction, err := c.rentService.Pay(r.Context(), user, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Payment processing success", transaction)
}
