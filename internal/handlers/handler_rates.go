package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/dto"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler serves the current rate snapshot.
type rateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newRateHandler(rs portssvc.ExchangeRateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Get current exchange rates
// @Description Returns the rate snapshot every conversion is currently priced against
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Failure 503 {object} dto.ErrorResponse "No rates fetched yet"
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.rateService.CurrentRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "get rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}
