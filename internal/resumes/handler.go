package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/contact"
	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/moderate"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the resume upload endpoint to the pipeline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
}

type uploadResponse struct {
	ResumeText string       `json:"resumeText"`
	Contact    contact.Info `json:"contact"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please attach a resume file.", nil)
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

	result, err := h.Svc.Process(
		c.Request.Context(),
		data,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		var rejected *moderate.RejectedError
		switch {
		case extract.IsUnsupported(err):
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_file", extract.UserMessage(err), nil)
		case errors.As(err, &rejected):
			respond.Error(c, http.StatusUnprocessableEntity, "rejected", rejected.Reason, nil)
		default:
			telemetry.Error("resumes.process.failed", map[string]any{
				"file_name":  fileHeader.Filename,
				"err":        err.Error(),
				"request_id": c.GetString("requestId"),
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Nie udało się odczytać CV. Spróbuj ponownie za chwilę lub użyj innego pliku.", nil)
		}
		return
	}

	respond.OK(c, uploadResponse{
		ResumeText: result.Text,
		Contact:    result.Contact,
	})
}
