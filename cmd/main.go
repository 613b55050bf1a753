package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/poofware/blog-api/internal/app"
	"github.com/poofware/blog-api/internal/config"
	"github.com/poofware/blog-api/internal/controllers"
	"github.com/poofware/blog-api/internal/middleware"
	"github.com/poofware/blog-api/internal/repositories"
	"github.com/poofware/blog-api/internal/routes"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	postRepo := repositories.NewBlogPostRepository(application.DB)
	tokenRepo := repositories.NewTokenRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	jwtService := services.NewJWTService(cfg, tokenRepo)
	authService := services.NewAuthService(userRepo, tokenRepo, jwtService, cfg)
	blogService := services.NewBlogService(postRepo)
	userService := services.NewUserService(userRepo)
	tokenCleanupService := services.NewTokenCleanupService(tokenRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	blogController := controllers.NewBlogController(blogService)
	userController := controllers.NewUserController(userService)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Public endpoints
	router.HandleFunc(routes.Register, authController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Login, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Posts, blogController.ListPostsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PostByID, blogController.GetPostHandler).Methods(http.MethodGet)

	// Protected endpoints require a valid, non-revoked token
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(jwtService))

	secured.HandleFunc(routes.Logout, authController.LogoutHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.Posts, blogController.CreatePostHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Posts, blogController.UpdatePostHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.MyPosts, blogController.MyPostsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PostByID, blogController.DeletePostHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Users, userController.ListUsersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UserByID, userController.GetUserHandler).Methods(http.MethodGet)

	//----------------------------------------------------------------------
	// Nightly revocation-ledger cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	_, schErr := c.AddFunc("5 3 * * *", func() {
		if e := tokenCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled blacklisted-token cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule blacklisted-token cleanup job")
	}

	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
