package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ganapathi9191/Social-media-sub000/internal/auth"
	"github.com/ganapathi9191/Social-media-sub000/internal/config"
	"github.com/ganapathi9191/Social-media-sub000/internal/database"
	"github.com/ganapathi9191/Social-media-sub000/internal/gateway"
	"github.com/ganapathi9191/Social-media-sub000/internal/handlers"
	"github.com/ganapathi9191/Social-media-sub000/internal/media"
	"github.com/ganapathi9191/Social-media-sub000/internal/notify"
	"github.com/ganapathi9191/Social-media-sub000/internal/repository"
	"github.com/ganapathi9191/Social-media-sub000/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Notification dispatcher persists events in the background
	dispatcher := notify.NewDispatcher(db, 256)
	dispatcher.Start()

	mediaStore, err := media.NewLocalStore(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}

	// Initialize services
	repo := repository.NewRepository(db)
	authService := services.NewAuthService(db, time.Duration(cfg.App.OTPTTLMinutes)*time.Minute)
	userService := services.NewUserService(db)
	graphService := services.NewGraphService(db, repo, dispatcher)
	walletService := services.NewWalletService(db, cfg.App.WalletBonusCoins)
	spinService := services.NewSpinService(db, walletService, cfg.App.MaxDailySpins)
	paymentService := services.NewPaymentService(db, walletService, gateway.NewDevGateway(), cfg.Payment.SigningSecret)
	downloadService := services.NewDownloadService(db, walletService)
	postService := services.NewPostService(db, walletService, graphService, mediaStore, dispatcher, cfg.App.PostRewardCoins)
	messageService := services.NewMessageService(db, graphService)
	roomService := services.NewRoomService(db, dispatcher)
	adminService := services.NewAdminService(db)
	notificationService := services.NewNotificationService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, graphService)
	graphHandler := handlers.NewGraphHandler(graphService)
	walletHandler := handlers.NewWalletHandler(walletService)
	spinHandler := handlers.NewSpinHandler(spinService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	postHandler := handlers.NewPostHandler(postService, userService, downloadService)
	messageHandler := handlers.NewMessageHandler(messageService)
	roomHandler := handlers.NewRoomHandler(roomService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(db, adminService, walletService, spinService, paymentService, downloadService)

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded media
	router.Static(cfg.Media.BaseURL, cfg.Media.Dir)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
		authRoutes.POST("/reset-password", authHandler.ResetPassword)
	}

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		// Profile endpoints
		api.GET("/me", userHandler.Me)
		api.PUT("/me", userHandler.UpdateProfile)
		api.PUT("/me/visibility", userHandler.SetVisibility)
		api.DELETE("/me", userHandler.Deactivate)
		api.GET("/users/search", userHandler.Search)
		api.GET("/users/:username", userHandler.GetProfile)
		api.GET("/users/:username/posts", postHandler.ListByUser)

		// Relationship endpoints
		api.POST("/follow/:id", graphHandler.Follow)
		api.POST("/follow/:id/approve", graphHandler.Approve)
		api.POST("/follow/:id/reject", graphHandler.Reject)
		api.DELETE("/follow/:id", graphHandler.Unfollow)
		api.DELETE("/followers/:id", graphHandler.RemoveFollower)
		api.POST("/block/:id", graphHandler.Block)
		api.DELETE("/block/:id", graphHandler.Unblock)
		api.GET("/followers", graphHandler.Followers)
		api.GET("/following", graphHandler.Following)
		api.GET("/follow-requests", graphHandler.Requests)
		api.GET("/blocked", graphHandler.Blocked)
		api.GET("/relation/:id", graphHandler.Status)

		// Wallet endpoints
		api.GET("/wallet", walletHandler.GetWallet)
		api.GET("/wallet/history", walletHandler.History)
		api.POST("/wallet/transfer", walletHandler.Transfer)

		// Spin wheel endpoints
		api.GET("/spin/wheel", spinHandler.GetWheel)
		api.POST("/spin", spinHandler.Spin)
		api.GET("/spin/today", spinHandler.SpinsToday)

		// Payment endpoints
		api.GET("/payments/packages", paymentHandler.ListPackages)
		api.POST("/payments/purchase", paymentHandler.Purchase)
		api.POST("/payments/verify", paymentHandler.Verify)
		api.GET("/payments/:orderID", paymentHandler.GetPayment)

		// Post endpoints
		api.POST("/posts", postHandler.Create)
		api.GET("/posts/feed", postHandler.Feed)
		api.GET("/posts/:postID", postHandler.Get)
		api.POST("/posts/:postID/like", postHandler.Like)
		api.DELETE("/posts/:postID/like", postHandler.Unlike)
		api.POST("/posts/:postID/comments", postHandler.Comment)
		api.GET("/posts/:postID/comments", postHandler.ListComments)
		api.POST("/posts/:postID/download", postHandler.Download)

		// Message endpoints
		api.POST("/messages", messageHandler.Send)
		api.GET("/messages/:id", messageHandler.Conversation)
		api.POST("/messages/:id/read", messageHandler.MarkRead)

		// Room endpoints
		api.POST("/rooms", roomHandler.Create)
		api.GET("/rooms", roomHandler.MyRooms)
		api.GET("/rooms/invites", roomHandler.PendingInvites)
		api.POST("/rooms/invites/:inviteID/respond", roomHandler.Respond)
		api.POST("/rooms/:roomID/invite", roomHandler.Invite)
		api.GET("/rooms/:roomID/members", roomHandler.Members)

		// Notification endpoints
		api.GET("/notifications", notificationHandler.List)
		api.POST("/notifications/:notificationID/read", notificationHandler.MarkRead)
		api.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	}

	// Admin routes (protected + admin only)
	admin := router.Group("/api/admin")
	admin.Use(auth.AuthMiddleware())
	admin.Use(adminHandler.AdminMiddleware())
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/logs", adminHandler.GetLogs)

		// Wheel management
		admin.GET("/wheel", adminHandler.GetWheelConfig)
		admin.PUT("/wheel/slots", adminHandler.UpsertSlot)

		// Package management
		admin.GET("/packages", adminHandler.ListAllPackages)
		admin.POST("/packages", adminHandler.CreatePackage)
		admin.PUT("/packages/:packageID", adminHandler.UpdatePackage)

		// Download pricing
		admin.GET("/download-prices", adminHandler.ListDownloadPrices)
		admin.PUT("/download-prices", adminHandler.SetDownloadPrice)

		// Wallet management
		admin.POST("/wallets/adjust", adminHandler.AdjustWallet)
		admin.GET("/wallets/:userID/reconcile", adminHandler.ReconcileWallet)

		// Admin management (super admin only)
		admin.POST("/promote", adminHandler.SuperAdminMiddleware(), adminHandler.PromoteAdmin)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Drain pending notification writes
	dispatcher.Close()

	log.Println("Server exited")
}
