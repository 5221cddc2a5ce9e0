package generations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/shared/server/respond"
)

const adminListLimit = 100

// Handler exposes the admin read API over stored generations.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterAdminRoutes attaches the admin routes to an already-authenticated
// router group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
}

type generationSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type generationDetail struct {
	generationSummary
	Address     string `json:"address,omitempty"`
	ResumeText  string `json:"resumeText"`
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) list(c *gin.Context) {
	gens, err := h.Repo.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}

	out := make([]generationSummary, 0, len(gens))
	for _, gen := range gens {
		out = append(out, toSummary(gen))
	}
	respond.OK(c, gin.H{"generations": out})
}

func (h *Handler) get(c *gin.Context) {
	gen, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load generation", nil)
		return
	}

	respond.OK(c, generationDetail{
		generationSummary: toSummary(gen),
		Address:           gen.Address,
		ResumeText:        gen.ResumeText,
		CoverLetter:       gen.CoverLetter,
	})
}

func toSummary(gen Generation) generationSummary {
	return generationSummary{
		ID:        gen.ID,
		FirstName: gen.FirstName,
		LastName:  gen.LastName,
		Email:     gen.Email,
		Phone:     gen.Phone,
		CreatedAt: gen.CreatedAt.UTC().Format(time.RFC3339),
	}
}
