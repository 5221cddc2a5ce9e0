package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "coverletter-backend/internal/auth"
	"coverletter-backend/internal/generations"
	"coverletter-backend/internal/letters"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
)

// Generation costs one LLM call per request, so it gets its own throttle.
var generateRateRule = middleware.RateLimitRule{Rate: 0.2, Burst: 3}

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	ResumeHandler      *resumes.Handler
	LetterHandler      *letters.Handler
	GenerationsHandler *generations.Handler
	GoogleAuth         *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.ResumeHandler.RegisterRoutes(api)
	deps.LetterHandler.RegisterRoutes(api)

	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), generateRateRule))
	deps.LetterHandler.RegisterGenerateRoutes(limited)

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth())
	deps.GenerationsHandler.RegisterAdminRoutes(admin)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
