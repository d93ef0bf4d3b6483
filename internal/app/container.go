package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/config"
	"github.com/you/shopsvc/internal/infrastructure/auth"
	"github.com/you/shopsvc/internal/infrastructure/database"
	"github.com/you/shopsvc/internal/infrastructure/notifications"
	"github.com/you/shopsvc/internal/infrastructure/repositories"
	"github.com/you/shopsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	ProductRepo domain.ProductRepository
	ImageRepo   domain.ProductImageRepository
	ResetTokens domain.ResetTokenStore

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	SMS         domain.SMSSender
	AuthSvc     domain.AuthService
	ProductSvc  domain.ProductService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.ImageRepo = repositories.NewProductImageRepository(c.DB)
	c.ResetTokens = repositories.NewResetTokenStore(c.RedisClient)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.ResetTTL,
	)
	c.Mailer = notifications.NewSendGridMailer(
		c.Config.SendGridKey,
		c.Config.MailFrom,
		c.Config.MailFromName,
	)
	c.SMS = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.ResetTokens,
		c.Mailer,
		c.SMS,
		c.Config.AppBaseURL,
	)
	c.ProductSvc = services.NewProductService(c.ProductRepo, c.ImageRepo)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
