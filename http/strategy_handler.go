package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debt-planner/domain"
	"debt-planner/service"
)

type StrategyHandler struct {
	service *service.StrategyService
}

func NewStrategyHandler(service *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{service: service}
}

func (h *StrategyHandler) Prioritize(c *gin.Context) {
	var input domain.PrioritizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	result, err := h.service.Prioritize(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StrategyHandler) Interest(c *gin.Context) {
	input, ok := bindPortfolio(c)
	if !ok {
		return
	}

	result, err := h.service.TotalInterest(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StrategyHandler) Trajectory(c *gin.Context) {
	input, ok := bindPortfolio(c)
	if !ok {
		return
	}

	result, err := h.service.Trajectory(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StrategyHandler) Compare(c *gin.Context) {
	input, ok := bindPortfolio(c)
	if !ok {
		return
	}

	result, err := h.service.Compare(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindPortfolio(c *gin.Context) (domain.PortfolioInput, bool) {
	var input domain.PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return input, false
	}
	return input, true
}
