package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-deals/internal/handler/api"
	"travel-deals/internal/handler/middleware"
	"travel-deals/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	// login and signup share one bucket per client IP
	setupRoutes(engine, cfg, h, authMiddleware, middleware.NewRateLimiter(cfg.Server.AuthRateLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", h.Health.Health)
	engine.GET("/robots.txt", h.Catalog.Robots)
	engine.GET("/sitemap.xml", h.Catalog.Sitemap)
	engine.Static(cfg.Upload.URLPath, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/deals"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListDeals},
			{Method: http.MethodGet, Path: "/:slug", Handler: h.Catalog.GetDeal},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodGet, Path: "/google", Handler: h.Auth.GoogleStart},
				{Method: http.MethodGet, Path: "/google/callback", Handler: h.Auth.GoogleCallback},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		addRoutes(checkout, []route{
			{Method: http.MethodPost, Path: "/session", Handler: h.Checkout.CreateSession},
		})

		account := apiGroup.Group("/account")
		account.Use(authMiddleware.RequireAuth())
		addRoutes(account, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListOrders},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.GetOrder},
		})

		// signature-authenticated; the body must stay untouched for verification
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Checkout.StripeWebhook},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
				{Method: http.MethodGet, Path: "/deals", Handler: h.Admin.ListDeals},
				{Method: http.MethodPost, Path: "/deals", Handler: h.Admin.CreateDeal},
				{Method: http.MethodGet, Path: "/deals/:id", Handler: h.Admin.GetDeal},
				{Method: http.MethodPut, Path: "/deals/:id", Handler: h.Admin.UpdateDeal},
				{Method: http.MethodPost, Path: "/deals/:id/toggle", Handler: h.Admin.ToggleDeal},
				{Method: http.MethodPost, Path: "/deals/:id/options", Handler: h.Admin.AddOption},
				{Method: http.MethodPost, Path: "/deals/:id/image", Handler: h.Admin.UploadImage},
				{Method: http.MethodPut, Path: "/options/:id", Handler: h.Admin.UpdateOption},
			})
		}
	}
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
