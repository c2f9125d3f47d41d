package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"debt-planner/amortization"
	"debt-planner/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// statusFor maps calculation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNoLoans),
		errors.Is(err, service.ErrBudgetTooLow):
		return http.StatusBadRequest
	case errors.Is(err, amortization.ErrInsufficientPayment),
		errors.Is(err, amortization.ErrHorizonExceeded):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		// Attached for the request logger; the client gets a generic message.
		_ = c.Error(err)
		c.JSON(status, errorBody("internal server error"))
		return
	}
	c.JSON(status, errorBody(err.Error()))
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := nowFunc()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", nowFunc().Sub(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Error("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	}
}
