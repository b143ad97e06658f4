package cli

import (
	"fmt"

	"github.com/mvisser/enroll/internal/core/repository"
	"github.com/mvisser/enroll/internal/core/service"
	"github.com/mvisser/enroll/internal/infrastructure/sqlite"
	"github.com/mvisser/enroll/internal/infrastructure/uploads"
	"github.com/mvisser/enroll/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Enroll - user account web application",
	Long: `Enroll is a small user-account web application.

It provides:
- Account registration with a profile image upload
- Login with bcrypt-verified credentials
- A session-gated profile page with a derived age`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(level)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yml)")
}

// initServices initializes the store and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	imageStore, err := uploads.NewImageStore(cfg.UploadDir, cfg.MaxUploadBytes, cfg.AllowedExts)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)

	return &Services{
		DB:             db,
		UserRepo:       userRepo,
		ImageStore:     imageStore,
		AccountService: service.NewAccountService(userRepo),
		SessionService: service.NewSessionService(cfg.SessionSecret, cfg.SessionAlgorithm),
		ProfileService: service.NewProfileService(userRepo),
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB             *sqlite.DB
	UserRepo       repository.UserRepository
	ImageStore     repository.ImageStore
	AccountService *service.AccountService
	SessionService *service.SessionService
	ProfileService *service.ProfileService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
