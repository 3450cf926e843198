package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghub/blog-api/docs"
	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/service"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	"github.com/bloghub/blog-api/internal/infrastructure/queue"
	"github.com/bloghub/blog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every request passes the auth filter exactly once; the per-route
// authorization gates then decide whether anonymous access is enough.
func NewRouter(db *mongo.Database, rdb *redis.Client, views *queue.Dispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.JWTTTL)
	hasher := service.NewBcryptHasher(0)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	postService := service.NewPostService(postRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService, views)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	commentHandler := handler.NewCommentHandler(commentService)

	e.Use(middleware.Authenticate(tokens))
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)
	requireAuth := middleware.RequireAuth()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signin", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/signup", authHandler.Register)

	// --- Post routes (reads public, writes admin only) ---
	posts := e.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.GET("/search", postHandler.Search)
	posts.GET("/category/:id", postHandler.GetByCategory)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, requireAdmin)
	posts.PUT("/:id", postHandler.Update, requireAdmin)
	posts.DELETE("/:id", postHandler.Delete, requireAdmin)

	// --- Category routes (reads public, writes admin only) ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, requireAdmin)
	categories.PUT("/:id", categoryHandler.Update, requireAdmin)
	categories.DELETE("/:id", categoryHandler.Delete, requireAdmin)

	// --- Comment routes (reads public, writes need any authenticated user) ---
	comments := e.Group("/api/posts/:postId/comments")
	comments.GET("", commentHandler.ListByPost)
	comments.GET("/:commentId", commentHandler.Get)
	comments.POST("", commentHandler.Create, requireAuth)
	comments.PUT("/:commentId", commentHandler.Update, requireAuth)
	comments.DELETE("/:commentId", commentHandler.Delete, requireAuth)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
