package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/dto"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles quotes, exchanges and settlements.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	rg.POST("/conversions/quote", h.quote)
	rg.POST("/exchanges", h.exchange)
	rg.POST("/settlements", h.settle)
}

// quote godoc
// @Summary Quote a conversion
// @Description Converts an amount on the current rates and reports the commission a settle would record now. Nothing is written.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body dto.ConversionRequest true "Amount and currency pair"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or unknown currency pair"
// @Failure 503 {object} dto.ErrorResponse "Rates unavailable"
// @Router /conversions/quote [post]
func (h *exchangeHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	q, err := h.exchangeService.Quote(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondWithError(c, logger, err, "quote conversion")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}

// exchange godoc
// @Summary Exchange currency
// @Description Parses the amount, converts it, checks the source balance and settles the conversion
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body dto.ConversionRequest true "Amount and currency pair"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or unknown currency pair"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Failure 503 {object} dto.ErrorResponse "Rates unavailable"
// @Router /exchanges [post]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to exchange currency",
		slog.String("amount", req.Amount),
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency))

	txn, err := h.exchangeService.Exchange(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondWithError(c, logger, err, "exchange currency")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// settle godoc
// @Summary Settle a priced conversion
// @Description Debits the source, credits the destination and records the transaction atomically
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body dto.SettlementRequest true "Settlement"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /settlements [post]
func (h *exchangeHandler) settle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txn, err := h.exchangeService.Settle(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "settle conversion")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
