package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/handler"
	"github.com/Staillim/YourSubLink-sub000/internal/ipinfo"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/mq"
	"github.com/Staillim/YourSubLink-sub000/internal/repository"
	"github.com/Staillim/YourSubLink-sub000/internal/service"
	"github.com/Staillim/YourSubLink-sub000/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title YourSubLink Earnings API
// @version 1.0
// @description Gated short links with CPM monetization and payouts

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Initialize services
	rateResolver := service.NewRateResolver(mysqlRepo, cfg.Monetize.DefaultCpmMicros)
	guard := service.NewAbuseWindowGuard(redisRepo, cfg.Monetize.Window)
	recorder := service.NewClickRecorder(mysqlRepo, guard, rateResolver)
	sponsorSvc := service.NewSponsorService(mysqlRepo)
	gateSvc := service.NewGateService(mysqlRepo, redisRepo, recorder, sponsorSvc, &cfg.Gate)
	linkSvc := service.NewLinkService(mysqlRepo, mqProducer, getDomain(cfg))
	balanceSvc := service.NewBalanceService(mysqlRepo, mqProducer)
	ipClient := ipinfo.NewClient(&cfg.IPLookup)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Setup static files for 404 page
	router.LoadHTMLGlob("templates/*")

	// Handlers
	linkHandler := handler.NewLinkHandler(linkSvc)
	resolveHandler := handler.NewResolveHandler(linkSvc, gateSvc, recorder, ipClient, &cfg.Monetize, gateSvc.CountdownSeconds())
	gateHandler := handler.NewGateHandler(gateSvc, &cfg.Monetize)
	payoutHandler := handler.NewPayoutHandler(balanceSvc)
	adminHandler := handler.NewAdminHandler(balanceSvc, rateResolver, sponsorSvc, linkSvc)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/links", linkHandler.Create)
		v1.GET("/links/:shortCode", linkHandler.Get)
		v1.GET("/links/:shortCode/events", linkHandler.Events)

		v1.POST("/gate/:sessionID/items/:kind/:itemID/start", gateHandler.StartItem)
		v1.POST("/gate/:sessionID/items/:kind/:itemID/complete", gateHandler.CompleteItem)
		v1.POST("/gate/:sessionID/finish", gateHandler.Finish)

		v1.GET("/users/:userID/balance", payoutHandler.GetBalance)
		v1.POST("/payouts", payoutHandler.RequestPayout)

		admin := v1.Group("/admin", middleware.RequireRole(model.RoleAdmin))
		{
			admin.POST("/payouts/:payoutID/approve", adminHandler.ApprovePayout)
			admin.POST("/payouts/:payoutID/reject", adminHandler.RejectPayout)
			admin.POST("/users/:userID/adjustments", adminHandler.AddBalance)
			admin.POST("/cpm", adminHandler.SetCpm)
			admin.POST("/links/:linkID/suspend", adminHandler.SuspendLink)
			admin.POST("/links/:linkID/activate", adminHandler.ActivateLink)
			admin.DELETE("/links/:linkID", adminHandler.DeleteLink)
			admin.POST("/links/:linkID/sponsors", adminHandler.CreateSponsor)
		}
	}

	// Visitor resolution (short codes)
	router.GET("/:shortCode", resolveHandler.Resolve)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that persists notifications
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.NotificationMessage) error {
			notification := &model.Notification{
				UserID:    msg.UserID,
				Kind:      msg.Kind,
				Title:     msg.Title,
				Body:      msg.Body,
				CreatedAt: msg.CreatedAt,
			}
			return mysqlRepo.SaveNotification(ctx, notification)
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// getDomain returns the domain for short links
func getDomain(cfg *config.Config) string {
	if port := cfg.Server.Port; port != 80 && port != 443 {
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://localhost"
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
