package handler

import (
	"net/http"

	"groomer-crm/internal/handler/api"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine  *gin.Engine
	Cfg     config.Config
	Metrics *metrics.Collector
	Limits  middleware.RateLimiters
	Health  map[string]Pinger `name:"health_checks"`

	AuthMiddleware *middleware.AuthMiddleware
	Logger         *middleware.Logger

	Auth         *api.AuthHandler
	Profile      *api.ProfileHandler
	Appointments *api.AppointmentHandler
	Clients      *api.ClientHandler
	Pets         *api.PetHandler
	Services     *api.ServiceHandler
	Settings     *api.SettingsHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Cfg.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Cfg.Metrics.Enabled {
		p.Engine.Use(middleware.Metrics(p.Metrics))
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	health := &healthHandler{checks: p.Health}
	p.Engine.GET("/health", health.check)

	if p.Cfg.Metrics.Enabled {
		p.Engine.GET(p.Cfg.Metrics.Path, gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authLimit := limitMw(p, "auth", p.Limits.Auth)
	apiLimit := limitMw(p, "api", p.Limits.API)
	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := p.Engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.Auth.Signup, Mw: authLimit},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login, Mw: authLimit},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh, Mw: authLimit},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		// Everything below is tenant scoped. Auth runs before the limiter so
		// limits are counted per owner.
		owned := apiGroup.Group("")
		owned.Use(requireAuth)
		owned.Use(apiLimit...)

		addRoutes(owned.Group("/profile"), []route{
			{Method: http.MethodPatch, Path: "", Handler: p.Profile.Update},
		})

		addRoutes(owned.Group("/appointments"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Appointments.List},
			{Method: http.MethodPost, Path: "", Handler: p.Appointments.Create},
			{Method: http.MethodGet, Path: "/export", Handler: p.Appointments.Export},
			{Method: http.MethodGet, Path: "/check-conflict", Handler: p.Appointments.CheckConflict},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Appointments.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Appointments.Update},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: p.Appointments.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Appointments.Delete},
		})

		addRoutes(owned.Group("/clients"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Clients.List},
			{Method: http.MethodPost, Path: "", Handler: p.Clients.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Clients.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Clients.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Clients.Delete},
		})

		addRoutes(owned.Group("/pets"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Pets.List},
			{Method: http.MethodPost, Path: "", Handler: p.Pets.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Pets.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Pets.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Pets.Delete},
		})

		addRoutes(owned.Group("/services"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Services.List},
			{Method: http.MethodPost, Path: "", Handler: p.Services.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Services.Update},
			{Method: http.MethodPatch, Path: "/:id/toggle", Handler: p.Services.Toggle},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Services.Delete},
		})

		addRoutes(owned.Group("/settings"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Settings.Get},
			{Method: http.MethodPut, Path: "", Handler: p.Settings.Save},
		})
	}
}

func limitMw(p RouterParams, policy string, limiter middleware.Limiter) []gin.HandlerFunc {
	if !p.Cfg.RateLimit.Enabled || limiter == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(policy, limiter, p.Metrics)}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
