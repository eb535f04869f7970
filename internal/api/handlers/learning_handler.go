package handlers

import (
	"net/http"

	"github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/internal/domain/learning"
	"github.com/femfund/femfund/pkg/response"
	"github.com/femfund/femfund/pkg/utils"
	"github.com/gin-gonic/gin"
)

type LearningHandler struct {
	svc *application.LearningService
}

func NewLearningHandler(svc *application.LearningService) *LearningHandler {
	return &LearningHandler{svc: svc}
}

// ListResources godoc
// @Summary List published learning resources
// @Tags learning
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} learning.Resource
// @Router /learning/resources [get]
func (h *LearningHandler) ListResources(c *gin.Context) {
	page, limit := utils.ParsePaging(c)
	resources, err := h.svc.ListResources(c.Query("category"), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetResource godoc
// @Summary Get one learning resource
// @Tags learning
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} learning.Resource
// @Failure 404 {object} response.ErrorResponse
// @Router /learning/resources/{id} [get]
func (h *LearningHandler) GetResource(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.svc.FindResourceByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateResource godoc
// @Summary Publish a learning resource (admin)
// @Tags learning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body learning.CreateResourceInput true "Resource"
// @Success 201 {object} learning.Resource
// @Failure 403 {object} response.ErrorResponse
// @Router /learning/resources [post]
func (h *LearningHandler) CreateResource(c *gin.Context) {
	var input learning.CreateResourceInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.svc.CreateResource(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Complete godoc
// @Summary Mark a resource completed for the current user
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /learning/resources/{id}/complete [post]
func (h *LearningHandler) Complete(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.CompleteResource(uid, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Resource marked as completed"})
}

// Progress godoc
// @Summary Current user's learning progress
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Success 200 {array} learning.Progress
// @Router /learning/progress [get]
func (h *LearningHandler) Progress(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := h.svc.UserProgress(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
