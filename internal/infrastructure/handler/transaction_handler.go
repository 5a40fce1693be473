package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/finchapp/finch/internal/application/service"
	"github.com/finchapp/finch/internal/infrastructure/logger"
	"github.com/finchapp/finch/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// TransactionHandler handles HTTP requests for ledger transactions
type TransactionHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service *service.LedgerService, log logger.Logger) *TransactionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TransactionHandler{
		service: service,
		logger:  log,
	}
}

// ListTransactions returns all stored transactions as a JSON array
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	transactions, err := h.service.ListTransactions(r.Context())
	if err != nil {
		h.logger.Error("Failed to list transactions", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Failed to load transactions", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Debug("Transactions listed", map[string]interface{}{
		"request_id": requestID,
		"count":      len(transactions),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

// CreateTransaction handles the creation of a new transaction. The body is
// trusted as-is; field presence is validated by the client form.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body", http.StatusBadRequest, requestID)
		return
	}

	tx, err := h.service.CreateTransaction(r.Context(), req.Date, req.Payee, req.Category, req.Amount)
	if err != nil {
		h.logger.Error("Error saving transaction", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Failed to save transaction", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Transaction created", map[string]interface{}{
		"request_id": requestID,
		"id":         tx.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}

// UpdateTransaction replaces the supplied fields on an existing transaction
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body", http.StatusBadRequest, requestID)
		return
	}

	patch := service.TransactionPatch{
		Date:     req.Date,
		Payee:    req.Payee,
		Category: req.Category,
		Amount:   req.Amount,
	}

	tx, err := h.service.UpdateTransaction(r.Context(), id, patch)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Transaction not found", map[string]interface{}{
				"request_id": requestID,
				"id":         id,
			})
			sendErrorResponse(w, h.logger, "Transaction not found", http.StatusNotFound, requestID)
			return
		}

		h.logger.Error("Error updating transaction", map[string]interface{}{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Failed to update transaction", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Transaction updated", map[string]interface{}{
		"request_id": requestID,
		"id":         id,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tx)
}

// DeleteTransaction removes a transaction by ID. Deleting an unknown ID still
// acknowledges success; the operation is idempotent.
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		h.logger.Error("Error deleting transaction", map[string]interface{}{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Failed to delete transaction", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Transaction deleted", map[string]interface{}{
		"request_id": requestID,
		"id":         id,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "deleted ID is %s", id)
}

// RegisterRoutes registers the transaction handler routes
func (h *TransactionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/api/transactions", h.CreateTransaction).Methods("POST")
	router.HandleFunc("/api/transactions/{id}", h.UpdateTransaction).Methods("PUT")
	router.HandleFunc("/api/transactions/{id}", h.DeleteTransaction).Methods("DELETE")

	h.logger.Info("Transaction routes registered", map[string]interface{}{
		"routes": []string{
			"GET /api/transactions",
			"POST /api/transactions",
			"PUT /api/transactions/{id}",
			"DELETE /api/transactions/{id}",
		},
	})
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
