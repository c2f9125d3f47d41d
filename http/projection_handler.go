package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debt-planner/domain"
	"debt-planner/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

func (h *ProjectionHandler) Project(c *gin.Context) {
	var input domain.ProjectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	result, err := h.service.Project(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
