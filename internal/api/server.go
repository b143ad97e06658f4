package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/handler"
	"github.com/mvisser/enroll/internal/api/middleware"
	"github.com/mvisser/enroll/internal/core/repository"
	"github.com/mvisser/enroll/internal/core/service"
	"github.com/mvisser/enroll/internal/web"
	"github.com/mvisser/enroll/pkg/config"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates the web server with all routes wired up
func NewServer(
	cfg *config.Config,
	accountService *service.AccountService,
	sessionService *service.SessionService,
	profileService *service.ProfileService,
	imageStore repository.ImageStore,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())

	router.SetHTMLTemplate(web.Templates())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountService, sessionService)
	registerHandler := handler.NewRegisterHandler(accountService, imageStore)
	profileHandler := handler.NewProfileHandler(profileService)

	// Login
	router.GET("/", authHandler.ShowLogin)
	router.POST("/", authHandler.Login)

	// Registration
	router.GET("/register", registerHandler.Show)
	router.POST("/register", registerHandler.Register)

	// Profile (session required)
	router.GET("/profile", middleware.SessionMiddleware(sessionService), profileHandler.Show)

	// Uploaded images
	router.Static("/uploads", cfg.UploadDir)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		logrus.Infof("Starting HTTPS server on %s", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	logrus.Infof("Starting HTTP server on %s", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
