package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/givehub/givehub/internal/container"
	handlers "github.com/givehub/givehub/internal/interface/http"
	"github.com/givehub/givehub/internal/interface/middleware"
	"github.com/givehub/givehub/internal/interface/strategy"
)

// AuthModule wires authentication HTTP handlers into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/protected
type AuthModule struct {
	Handler *handlers.AuthHandler
	Bearer  *strategy.Bearer
}

func NewAuth(h *handlers.AuthHandler, bearer *strategy.Bearer) *AuthModule {
	return &AuthModule{Handler: h, Bearer: bearer}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	auth.POST("/register", registerLimiter, m.Handler.Register)
	auth.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	guarded := auth.Group("/")
	guarded.Use(middleware.Auth(m.Bearer))
	guarded.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		guarded.GET("/protected", m.Handler.Protected)
	}
}
