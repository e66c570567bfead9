package router

import (
	"time"

	"ventario/internal/config"
	"ventario/internal/handler"
	"ventario/internal/middleware"
	"ventario/internal/repository"
	"ventario/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo)
	statsSvc := service.NewStatsService(productoRepo, ventaRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// API surface is open by default; JWTAuth mounts only on explicit opt-in.
	api := r.Group("/")
	if cfg.AuthEnabled {
		api.Use(middleware.JWTAuth(cfg.SecretKey, cfg.Algorithm))
	}

	productos := api.Group("/productos")
	{
		productos.POST("", productosH.Crear)
		productos.GET("", productosH.Listar)
		productos.GET("/:id", productosH.ObtenerPorID)
		productos.PUT("/:id", productosH.Actualizar)
		productos.DELETE("/:id", productosH.Eliminar)
		productos.GET("/categoria/:categoria", productosH.ListarPorCategoria)
	}

	ventas := api.Group("/ventas")
	{
		ventas.POST("", ventasH.Registrar)
		ventas.GET("", ventasH.Listar)
		ventas.GET("/:id", ventasH.ObtenerPorID)
		ventas.GET("/producto/:producto_id", ventasH.ListarPorProducto)
		ventas.GET("/fecha", ventasH.ListarPorFecha)
	}

	api.GET("/stats", statsH.Resumen)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
