package imports

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports/resume", h.importResume)
}

func (h *Handler) importResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to extract text from file", nil)
		return
	}

	metrics.IncImport()
	respond.JSON(c, http.StatusOK, gin.H{
		"fileName": fileHeader.Filename,
		"text":     text,
	})
}
