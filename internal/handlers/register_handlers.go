package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchanger/cmd/docs"
	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/dto"
	"github.com/SscSPs/currency_exchanger/internal/platform/config"
	"github.com/SscSPs/currency_exchanger/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SessionController is the screen-state loop as seen by HTTP handlers.
type SessionController interface {
	Snapshot() session.Snapshot
	Dispatch(ctx context.Context, cmd session.Command) (session.Snapshot, error)
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	sess SessionController,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services, sess)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	sess SessionController,
) {
	v1 := r.Group("/api/v1")

	registerRateRoutes(v1, services.ExchangeRate)
	registerExchangeRoutes(v1, services.Exchange)
	registerLedgerRoutes(v1, services.Exchange)
	if sess != nil {
		registerSessionRoutes(v1, sess)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg == nil || cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", dto.ValidateCurrencyCode)
	}
}

// respondWithError maps err to its status and writes the error body.
// Server-side failures are logged at error level and their details withheld.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.HTTPStatus(err)
	body := dto.ErrorResponse{Error: err.Error(), Message: apperrors.UserMessage(err)}
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		body.Error = "Failed to " + action
	} else {
		logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
