package letters

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/export"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/telemetry"
)

// Handler wires the cover-letter HTTP endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the export route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters/export", h.exportLetter)
}

// RegisterGenerateRoutes attaches the generation route; callers put it
// behind the LLM rate limit.
func (h *Handler) RegisterGenerateRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters", h.create)
}

type createRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type createResponse struct {
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume text is required to generate a cover letter.", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		if IsGenerationError(err) {
			respond.Error(c, http.StatusUnprocessableEntity, "generation_error", err.Error(), nil)
			return
		}
		telemetry.Error("letters.generate.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Nie udało się wygenerować listu motywacyjnego. Spróbuj ponownie za chwilę.", nil)
		return
	}

	respond.OK(c, createResponse{CoverLetter: letter})
}

type exportRequest struct {
	CoverLetter string `json:"coverLetter"`
	Format      string `json:"format"`
}

func (h *Handler) exportLetter(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.CoverLetter) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Cover letter content is missing.", nil)
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "unsupported_format", err.Error(), nil)
		return
	}

	doc, err := export.Export(req.CoverLetter, format)
	if err != nil {
		telemetry.Error("letters.export.failed", map[string]any{
			"format":     string(format),
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "We could not create the requested download.", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.MimeType, doc.Data)
}
