// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	_ "syahi/docs" // swagger docs
	"syahi/internal/auth"
	"syahi/internal/cache"
	"syahi/internal/config"
	"syahi/internal/database"
	"syahi/internal/middleware"
	"syahi/internal/models"
	"syahi/internal/music"
	"syahi/internal/observability"
	"syahi/internal/repository"
	"syahi/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *repository.Store
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	authService    *service.AuthService
	coupletService *service.CoupletService
	blogService    *service.BlogService
	problemService *service.ProblemService
	bouquetService *service.BouquetService
	flowerService  *service.FlowerService
	musicService   *service.MusicService
}

// OpenStore connects the backend selected by cfg.DBDriver.
func OpenStore(cfg *config.Config) (*repository.Store, error) {
	if cfg.DBDriver == config.DriverMongo {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		mdb, client, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		return repository.NewMongoStore(mdb, client), nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return repository.NewGormStore(db), nil
}

// NewServer connects the store and Redis, then wires the services.
func NewServer(cfg *config.Config) (*Server, error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	// Redis is optional; a nil client turns the Redis-backed features off.
	redisClient := cache.InitRedis(cfg.RedisURL)

	searcher := music.NewClient(music.Config{
		BaseURL:           cfg.MusicSearchURL,
		RequestsPerSecond: cfg.MusicSearchRPS,
		Timeout:           cfg.MusicTimeout(),
	})

	return NewServerWithDeps(cfg, store, redisClient, searcher)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use it with an in-memory store and a miniredis or nil client.
func NewServerWithDeps(cfg *config.Config, store *repository.Store, redisClient *redis.Client, searcher music.Searcher) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	cache.SetClient(redisClient)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL())

	s := &Server{
		config:         cfg,
		store:          store,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("syahi-api"),
	}
	s.authService = service.NewAuthService(store.Users, tokens, auth.NewRevoker(redisClient))
	s.coupletService = service.NewCoupletService(store.Couplets)
	s.blogService = service.NewBlogService(store.Blogs)
	s.problemService = service.NewProblemService(store.Problems)
	s.bouquetService = service.NewBouquetService(store.Bouquets, store.Couplets)
	s.flowerService = service.NewFlowerService(store.Flowers)
	s.musicService = service.NewMusicService(searcher)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        200,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions || !s.config.IsProduction()
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Message: "Too many requests, please try again later.",
				Code:    "RATE_LIMITED",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Syahi API Metrics Dashboard",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	authRequired := s.AuthRequired()

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Get("/me", authRequired, s.Me)
	authGroup.Post("/logout", authRequired, s.Logout)

	// Specific routes such as /mine are registered before /:id.
	couplets := api.Group("/couplets")
	couplets.Get("/", s.GetPublicCouplets)
	couplets.Post("/", authRequired, s.CreateCouplet)
	couplets.Get("/mine", authRequired, s.GetMyCouplets)
	couplets.Patch("/:id/visibility", authRequired, s.ToggleCoupletVisibility)
	couplets.Post("/:id/like", authRequired, s.ToggleCoupletLike)
	couplets.Delete("/:id", authRequired, s.DeleteCouplet)

	blogs := api.Group("/blogs")
	blogs.Get("/", s.GetPublicBlogs)
	blogs.Post("/", authRequired, s.CreateBlog)
	blogs.Get("/mine", authRequired, s.GetMyBlogs)
	blogs.Post("/refine", authRequired, middleware.RateLimit(
		s.redis, 30, time.Minute, "refine"), s.RefineBlog)
	blogs.Patch("/:id/visibility", authRequired, s.ToggleBlogVisibility)
	blogs.Post("/:id/like", authRequired, s.ToggleBlogLike)
	blogs.Delete("/:id", authRequired, s.DeleteBlog)

	problems := api.Group("/problems")
	problems.Get("/", s.GetProblems)
	problems.Post("/", authRequired, s.CreateProblem)
	problems.Post("/:id/solace", authRequired, s.AddSolace)
	problems.Delete("/:id/solace/:answerId", authRequired, s.DeleteSolace)
	problems.Delete("/:id", authRequired, s.DeleteProblem)

	bouquets := api.Group("/bouquets")
	bouquets.Get("/public", s.GetPublicBouquets)
	bouquets.Get("/mine", authRequired, s.GetMyBouquets)
	bouquets.Post("/", authRequired, s.CreateBouquet)
	bouquets.Get("/:id", s.GetBouquet)
	bouquets.Delete("/:id", authRequired, s.DeleteBouquet)

	flowers := api.Group("/flowers")
	flowers.Get("/", s.GetFlowers)
	flowers.Post("/", authRequired, s.CreateFlower)
	flowers.Delete("/:id", authRequired, s.DeleteFlower)

	api.Get("/music/search", middleware.RateLimit(
		s.redis, 30, time.Minute, "music_search"), s.SearchMusic)
}

// NewApp builds the Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Syahi API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Message: fe.Message})
			}
			observability.FromContext(c.UserContext()).Error("unhandled error", zap.Error(err))
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.NewApp()
	observability.Logger.Info("Server starting", zap.String("port", s.config.Port), zap.String("store", s.store.Backend))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			observability.Logger.Warn("error shutting down HTTP server", zap.Error(err))
		}
	}

	if err := s.store.Close(ctx); err != nil {
		observability.Logger.Warn("error closing store", zap.Error(err))
	}

	cache.Close()

	observability.Logger.Info("Server shutdown complete")
	return nil
}
