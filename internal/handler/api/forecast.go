package api

import (
	"net/http"

	"OilPulse/internal/domain/models"
	"OilPulse/internal/usecase"
	xhttp "OilPulse/pkg/http"
	xlogger "OilPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastHandler serves the persisted pipeline tables. Success responses are
// bare JSON arrays; storage failures map to a plain 500, never to an empty
// list, so a broken table is distinguishable from a table with no rows.
type ForecastHandler struct {
	logger  *xlogger.Logger
	gateway *usecase.QueryGateway
}

func NewForecastHandler(logger *xlogger.Logger, gateway *usecase.QueryGateway) *ForecastHandler {
	return &ForecastHandler{logger: logger, gateway: gateway}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Liveness)
	e.GET("/predictions", h.Predictions)
	e.GET("/sentiment", h.Sentiment)
	e.GET("/news", h.News)
}

// Liveness reports that the serving process is up. It reads nothing.
func (h *ForecastHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "active"})
}

func (h *ForecastHandler) Predictions(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.gateway.Predictions(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("predictions gateway error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ForecastHandler) Sentiment(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.gateway.Sentiment(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("sentiment gateway error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ForecastHandler) News(c echo.Context) error {
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.gateway.News(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("news gateway error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return c.JSON(http.StatusOK, rows)
}
