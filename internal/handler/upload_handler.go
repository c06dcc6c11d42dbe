package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"printflow/internal/lifecycle"
	"printflow/internal/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc *service.OrderService
}

func NewUploadHandler(svc *service.OrderService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload accepts a multipart PDF, stores it, and returns its page count plus
// the storage reference the client must echo back in create-order-details.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		// No file field: rejected before the parser or the store is touched.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed."})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing the PDF file."})
		return
	}

	result, err := h.svc.Intake(c.Request.Context(), lifecycle.NewFlow(), data, file.Filename)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed."})
			return
		}
		log.Printf("[Upload] intake failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing the PDF file."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pageCount": result.PageCount, "filePath": result.FilePath})
}
