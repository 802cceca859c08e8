package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	clock           lifecycle.Clock
}

func registerDocumentRoutes(rg, counterparty *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, clock lifecycle.Clock) {
	h := &documentHandler{documentService: documentService, clock: clock}

	counterparty.POST("/documents", h.uploadDocument)
	counterparty.GET("/documents", h.listDocuments)
	counterparty.GET("/documents/grouped", h.groupedDocuments)

	rg.POST("/documents/bulk", h.bulkUpload)
	documents := rg.Group("/documents/:documentID")
	{
		documents.GET("", h.getDocument)
		documents.PATCH("", h.updateDocument)
		documents.DELETE("", h.deactivateDocument)
		documents.GET("/download", h.downloadURL)
	}
}

// uploadDocument godoc
// @Summary Upload a document
// @Description Multipart form. Accepted: pdf, doc, docx, xls, xlsx, txt, jpg, jpeg, png up to 10 MB.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param documentTypeID formData string true "Document type"
// @Param category formData string true "Document category"
// @Param description formData string false "Description"
// @Param issueDate formData string false "YYYY-MM-DD"
// @Param expiryDate formData string false "YYYY-MM-DD"
// @Param file formData file true "The document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id}/documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	policy := domain.StandardUploadPolicy()
	if !parseMultipart(c, policy.MaxBytes, "upload document") {
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, "upload document")
		return
	}
	fh := multipartFile(c, "file")
	if fh == nil {
		respondError(c, apperrors.NewValidationError("file", "is required"), "upload document")
		return
	}
	file, closer, err := openUpload(fh)
	if err != nil {
		respondError(c, err, "upload document")
		return
	}
	defer closer.Close()

	doc, err := h.documentService.UploadDocument(c.Request.Context(), c.Param("id"), req, file, policy, actor)
	if err != nil {
		respondError(c, err, "upload document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc, h.clock.Now()))
}

// bulkUpload godoc
// @Summary Upload several documents at once
// @Description Every file under "files" is stored with the same metadata. The whole request may carry up to 50 MB.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param counterpartyID formData string true "Counterparty ID"
// @Param documentTypeID formData string true "Document type"
// @Param category formData string true "Document category"
// @Param files formData file true "Documents"
// @Success 201 {object} dto.BulkUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /documents/bulk [post]
func (h *documentHandler) bulkUpload(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	policy := domain.BulkUploadPolicy()
	if !parseMultipart(c, policy.MaxBytes, "upload documents") {
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, "upload documents")
		return
	}
	counterpartyID := c.PostForm("counterpartyID")
	if counterpartyID == "" {
		respondError(c, apperrors.NewValidationError("counterpartyID", "is required"), "upload documents")
		return
	}
	files := c.Request.MultipartForm.File["files"]
	if len(files) == 0 {
		respondError(c, apperrors.NewValidationError("files", "at least one file is required"), "upload documents")
		return
	}

	res := dto.BulkUploadResponse{Documents: []dto.DocumentResponse{}}
	now := h.clock.Now()
	for _, fh := range files {
		doc, err := h.uploadOne(c, counterpartyID, req, fh, policy, actor)
		if err != nil {
			if res.Failed == nil {
				res.Failed = map[string]dto.ErrorResponse{}
			}
			status, body := errorResponse(err, "upload "+fh.Filename)
			if status >= http.StatusInternalServerError {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Bulk upload item failed",
					slog.String("file_name", fh.Filename), slog.String("error", err.Error()))
			}
			res.Failed[fh.Filename] = body
			continue
		}
		res.Documents = append(res.Documents, dto.ToDocumentResponse(doc, now))
	}

	status := http.StatusCreated
	if len(res.Documents) == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, res)
}

func (h *documentHandler) uploadOne(c *gin.Context, counterpartyID string, req dto.UploadDocumentRequest, fh *multipart.FileHeader, policy domain.UploadPolicy, actor domain.Actor) (*domain.Document, error) {
	file, closer, err := openUpload(fh)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return h.documentService.UploadDocument(c.Request.Context(), counterpartyID, req, file, policy, actor)
}

// listDocuments godoc
// @Summary List documents of a counterparty
// @Tags documents
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param includeInactive query bool false "Include deleted documents"
// @Success 200 {array} dto.DocumentResponse
// @Security BearerAuth
// @Router /counterparties/{id}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	docs, err := h.documentService.ListDocuments(c.Request.Context(), c.Param("id"), vis)
	if err != nil {
		respondError(c, err, "list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentResponse(docs, h.clock.Now()))
}

// groupedDocuments godoc
// @Summary Active documents grouped by category
// @Tags documents
// @Produce json
// @Param id path string true "Counterparty ID"
// @Success 200 {array} dto.DocumentGroupResponse
// @Security BearerAuth
// @Router /counterparties/{id}/documents/grouped [get]
func (h *documentHandler) groupedDocuments(c *gin.Context) {
	groups, err := h.documentService.GroupedDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "group documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentGroupsResponse(groups, h.clock.Now()))
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondError(c, err, "retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, h.clock.Now()))
}

// updateDocument godoc
// @Summary Update document metadata
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [patch]
func (h *documentHandler) updateDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update document")
		return
	}
	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("documentID"), req, actor)
	if err != nil {
		respondError(c, err, "update document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, h.clock.Now()))
}

// deactivateDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param documentID path string true "Document ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deactivateDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.documentService.DeactivateDocument(c.Request.Context(), c.Param("documentID"), actor); err != nil {
		respondError(c, err, "delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

// downloadURL godoc
// @Summary Time-limited download link
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DownloadURLResponse
// @Security BearerAuth
// @Router /documents/{documentID}/download [get]
func (h *documentHandler) downloadURL(c *gin.Context) {
	link, err := h.documentService.DownloadURL(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondError(c, err, "create download link")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, link)
}
