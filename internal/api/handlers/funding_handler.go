package handlers

import (
	"net/http"

	"github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/pkg/response"
	"github.com/femfund/femfund/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FundingHandler struct {
	svc *application.FundingService
}

func NewFundingHandler(svc *application.FundingService) *FundingHandler {
	return &FundingHandler{svc: svc}
}

// ListOptions godoc
// @Summary List active funding options
// @Tags funding
// @Produce json
// @Param type query string false "Filter by funding type"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} funding.Option
// @Failure 400 {object} response.ValidationErrorResponse "Unknown funding type"
// @Router /funding/options [get]
func (h *FundingHandler) ListOptions(c *gin.Context) {
	page, limit := utils.ParsePaging(c)
	options, err := h.svc.ListOptions(c.Query("type"), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetOption godoc
// @Summary Get one funding option
// @Tags funding
// @Produce json
// @Param id path int true "Funding option ID"
// @Success 200 {object} funding.Option
// @Failure 404 {object} response.ErrorResponse
// @Router /funding/options/{id} [get]
func (h *FundingHandler) GetOption(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	option, err := h.svc.FindOptionByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

// CreateOption godoc
// @Summary Register a funding option
// @Tags funding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body funding.CreateOptionInput true "Funding option"
// @Success 201 {object} funding.Option
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /funding/options [post]
func (h *FundingHandler) CreateOption(c *gin.Context) {
	var input funding.CreateOptionInput
	if !bindJSON(c, &input) {
		return
	}

	option, err := h.svc.CreateOption(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, option)
}

// UpdateOption godoc
// @Summary Update a funding option
// @Tags funding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Funding option ID"
// @Param input body funding.UpdateOptionInput true "Fields to update"
// @Success 200 {object} funding.Option
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /funding/options/{id} [put]
func (h *FundingHandler) UpdateOption(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input funding.UpdateOptionInput
	if !bindJSON(c, &input) {
		return
	}

	option, err := h.svc.UpdateOption(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

// DeactivateOption godoc
// @Summary Deactivate a funding option
// @Tags funding
// @Produce json
// @Security BearerAuth
// @Param id path int true "Funding option ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /funding/options/{id} [delete]
func (h *FundingHandler) DeactivateOption(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.DeactivateOption(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Funding option deactivated"})
}

// PreQualify godoc
// @Summary Pre-qualification estimate for the current user
// @Tags funding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} funding.PreQualification
// @Failure 401 {object} response.ErrorResponse
// @Router /funding/prequalify [get]
func (h *FundingHandler) PreQualify(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.PreQualifyUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Recommendations godoc
// @Summary Credit score improvement advice for the current user
// @Tags funding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]string
// @Failure 401 {object} response.ErrorResponse
// @Router /funding/recommendations [get]
func (h *FundingHandler) Recommendations(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	recs, err := h.svc.ScoreRecommendations(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
