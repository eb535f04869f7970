package handlers

import (
	"net/http"

	appsvc "github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/pkg/response"
	"github.com/femfund/femfund/pkg/utils"
	"github.com/gin-gonic/gin"
)

// maxDocumentSize caps uploaded application documents at 10 MB.
const maxDocumentSize = 10 << 20

// allowedDocumentTypes restricts uploads to PDF, Word, and plain text.
var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

type ApplicationHandler struct {
	svc *appsvc.ApplicationService
}

func NewApplicationHandler(svc *appsvc.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Apply godoc
// @Summary Submit an application for a funding option
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Funding option ID"
// @Param input body application.SubmitInput true "Application details"
// @Success 201 {object} application.Application
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse "Funding option not found"
// @Router /funding/apply/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	optionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input application.SubmitInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), uid, optionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// SaveDraft godoc
// @Summary Save a draft application for a funding option
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Funding option ID"
// @Param input body application.SubmitInput true "Partial application details"
// @Success 201 {object} application.Application
// @Failure 404 {object} response.ErrorResponse "Funding option not found"
// @Router /funding/drafts/{id} [post]
func (h *ApplicationHandler) SaveDraft(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	optionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input application.SubmitInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.svc.SaveDraft(uid, optionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Submit godoc
// @Summary Submit a saved draft
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} application.Application
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Not a draft"
// @Router /applications/{id}/submit [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
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

	app, err := h.svc.SubmitDraft(c.Request.Context(), uid, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// List godoc
// @Summary List the current user's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.Application
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	apps, err := h.svc.ListByUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListAll godoc
// @Summary List every application (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} application.Application
// @Failure 403 {object} response.ErrorResponse
// @Router /applications/all [get]
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	page, limit := utils.ParsePaging(c)
	apps, err := h.svc.ListAll(page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get godoc
// @Summary Get one application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} application.Application
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.FindApplication(claims.UserID, claims.IsAdmin, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Timeline godoc
// @Summary Status timeline for an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {array} application.TimelineStep
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id}/timeline [get]
func (h *ApplicationHandler) Timeline(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	steps, err := h.svc.Timeline(claims.UserID, claims.IsAdmin, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// UpdateDraft godoc
// @Summary Edit an owned draft
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param input body application.UpdateDraftInput true "Fields to update"
// @Success 200 {object} application.Application
// @Failure 409 {object} response.ErrorResponse "Not a draft"
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateDraft(c *gin.Context) {
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

	var input application.UpdateDraftInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.svc.UpdateDraft(uid, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteDraft godoc
// @Summary Delete an owned draft
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse "Not a draft"
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteDraft(c *gin.Context) {
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

	if err := h.svc.DeleteDraft(c.Request.Context(), uid, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Draft deleted"})
}

// Transition godoc
// @Summary Move an application to a new status (admin)
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param input body application.TransitionInput true "Target status"
// @Success 200 {object} application.Application
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) Transition(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input application.TransitionInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.svc.Transition(c.Request.Context(), id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UploadDocument godoc
// @Summary Attach a document to an owned application
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param file formData file true "Document (PDF, Word, or plain text; max 10MB)"
// @Success 201 {object} application.Document
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /applications/{id}/documents [post]
func (h *ApplicationHandler) UploadDocument(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file exceeds the 10MB limit"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedDocumentTypes[contentType] {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error: "file type not allowed; accepted types: PDF, Word, plain text",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to read upload"})
		return
	}
	defer file.Close()

	doc, err := h.svc.AttachDocument(c.Request.Context(), uid, id,
		fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}
