package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"helpize/internal/handlers/api"
	"helpize/internal/handlers/web"
	"helpize/internal/middleware"
	"helpize/internal/templates"
	"helpize/pkg/logger"
	"helpize/pkg/websocket"
)

// Dependencies is everything the router needs. UploadDir and UploadURL are
// empty unless uploads live on local disk.
type Dependencies struct {
	Pages          *web.PageHandler
	Alerts         *api.AlertHandler
	Health         *api.HealthHandler
	LiveFeed       *websocket.Handler
	Sessions       *middleware.SessionManager
	Logger         *logger.Logger
	MaxBodySize    int64
	AllowedOrigins []string
	TrustedProxies []string
	UploadDir      string
	UploadURL      string
}

func NewRouter(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := templates.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	router.Use(middleware.MaxBodySize(deps.MaxBodySize))
	router.Use(deps.Sessions.LoadSession())

	SetupPageRoutes(router, deps.Pages)
	SetupAPIRoutes(router, deps.Alerts, deps.LiveFeed)

	if deps.Health != nil {
		router.GET("/health", deps.Health.Health)
	}
	if deps.UploadDir != "" && deps.UploadURL != "" {
		router.Static(deps.UploadURL, deps.UploadDir)
	}

	router.NoRoute(deps.Pages.NotFound)

	return router, nil
}

func SetupPageRoutes(r *gin.Engine, pages *web.PageHandler) {
	r.GET("/", pages.Home)
	r.GET("/about", pages.About)
	r.GET("/contact", pages.Contact)

	r.GET("/sos", pages.SOSForm)
	r.POST("/sos", pages.SubmitSOS)

	r.GET("/login", pages.LoginForm)
	r.POST("/login", pages.Login)
	r.GET("/signup", pages.SignupForm)
	r.POST("/signup", pages.Signup)
	r.GET("/logout", pages.Logout)

	r.GET("/dashboard", middleware.LoginRequired("/login"), pages.Dashboard)

	r.GET("/resources", pages.Resources)
	r.POST("/resources", pages.Resources)

	r.GET("/blog", pages.Blog)
	r.GET("/blog/:id", pages.BlogPost)
}

// SetupAPIRoutes registers the JSON alert list and, when configured, the
// live alert feed.
func SetupAPIRoutes(r *gin.Engine, alerts *api.AlertHandler, liveFeed *websocket.Handler) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/alerts", alerts.ListAlerts)
		if liveFeed != nil {
			apiGroup.GET("/alerts/stream", liveFeed.HandleWebSocket)
		}
	}
}
