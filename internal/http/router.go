package api

import (
	"database/sql"
	stdhttp "net/http"

	intconfig "bespokedbikes/internal/config"
	h "bespokedbikes/internal/http/handlers"
	"bespokedbikes/internal/http/middleware"
	"bespokedbikes/internal/store"
	"bespokedbikes/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg intconfig.AppConfig, db *sql.DB) *gin.Engine {
	r := gin.New()
	// Resource paths are PascalCase; /api/customers redirects to /api/Customers.
	r.RedirectFixedPath = true
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.WarnWithFields("failed to set trusted proxies", utils.Fields{"error": err.Error()})
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	uow := middleware.UnitOfWork(db, store.WithPageSize(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize))
	auth := middleware.RequireJWT(cfg.Auth.JWTSecret)

	for _, prefix := range []string{"/api", "/api/v1"} {
		api := r.Group(prefix)
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.Use(uow)
		mountResource(api.Group("/Customers"), auth, h.Customers)
		mountResource(api.Group("/Products"), auth, h.Products)
		mountResource(api.Group("/Salespersons"), auth, h.Salespersons)
		sales := api.Group("/Sales")
		mountResource(sales, auth, h.Sales)
		sales.GET("/:id/invoice", h.SaleInvoice)
		mountResource(api.Group("/Discounts"), auth, h.Discounts)
	}

	h.SetRouter(r)
	return r
}

func mountResource[T, D, C, U any](g *gin.RouterGroup, auth gin.HandlerFunc, res h.Resource[T, D, C, U]) {
	g.GET("", res.List)
	g.GET("/:id", res.Get)
	g.POST("", auth, res.Create)
	g.PUT("/:id", auth, res.Update)
	g.PATCH("/:id", auth, res.Patch)
	g.DELETE("/:id", auth, res.Delete)
}
