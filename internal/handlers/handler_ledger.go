package handlers

import (
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/dto"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler exposes balances and the transaction log.
type ledgerHandler struct {
	ledgerService portssvc.LedgerReaderSvc
	conversion    portssvc.ConversionSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := &ledgerHandler{ledgerService: exchangeService, conversion: exchangeService}

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/:code", h.getBalance)
		balances.GET("/:code/affordability", h.checkAffordability)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/count", h.countTransactions)
	}
}

// listBalances godoc
// @Summary List balances
// @Description Returns every balance in the order it was first created
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.BalanceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /balances [get]
func (h *ledgerHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balances, err := h.ledgerService.AllBalances(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBalanceResponse(balances))
}

// getBalance godoc
// @Summary Get a balance
// @Tags ledger
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Currency never funded"
// @Router /balances/{code} [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balance, err := h.ledgerService.GetBalance(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, logger, err, "get balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(*balance))
}

// checkAffordability godoc
// @Summary Check affordability
// @Description Reports whether the balance in a currency covers an amount. Unfunded currencies are never affordable.
// @Tags ledger
// @Produce json
// @Param code path string true "Currency code"
// @Param amount query number true "Amount in that currency"
// @Success 200 {object} dto.AffordabilityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Router /balances/{code}/affordability [get]
func (h *ledgerHandler) checkAffordability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "amount query parameter must be a number"})
		return
	}

	ok, err := h.conversion.CheckAffordability(c.Request.Context(), code, amount)
	if err != nil {
		respondWithError(c, logger, err, "check affordability")
		return
	}
	c.JSON(http.StatusOK, dto.AffordabilityResponse{CurrencyCode: code, Amount: amount, Affordable: ok})
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the transaction log oldest first
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// countTransactions godoc
// @Summary Count transactions
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.TransactionCountResponse
// @Router /transactions/count [get]
func (h *ledgerHandler) countTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	count, err := h.ledgerService.TransactionCount(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "count transactions")
		return
	}
	c.JSON(http.StatusOK, dto.TransactionCountResponse{Count: count})
}
