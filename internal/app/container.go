package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/dmhub/domain"
	"github.com/you/dmhub/internal/config"
	"github.com/you/dmhub/internal/infrastructure/auth"
	"github.com/you/dmhub/internal/infrastructure/database"
	"github.com/you/dmhub/internal/infrastructure/hazards"
	"github.com/you/dmhub/internal/infrastructure/notifications"
	"github.com/you/dmhub/internal/infrastructure/repositories"
	"github.com/you/dmhub/internal/services"
)

// Container holds all dependencies.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	HelpRepo      domain.HelpRequestRepository
	AdminRepo     domain.AdminRepository
	VolunteerRepo domain.VolunteerRepository
	OtpStore      domain.OtpStore

	// Services
	PasswordSvc  domain.PasswordService
	SMSSvc       domain.SMSService
	Matcher      domain.LocationMatcher
	Dispatcher   domain.Dispatcher
	HelpSvc      domain.HelpRequestService
	AdminSvc     domain.AdminService
	VolunteerSvc domain.VolunteerService
	HazardFeed   domain.HazardFeed
}

// NewContainer creates and initializes all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas

	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.HelpRepo = repositories.NewHelpRequestRepository(c.DB)
	c.AdminRepo = repositories.NewAdminRepository(c.DB)
	c.VolunteerRepo = repositories.NewVolunteerRepository(c.DB)
	c.OtpStore = repositories.NewOtpStore(c.RedisClient, c.Config.OTPTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.SMSSvc = notifications.NewTwilioService(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom)
	c.Matcher = services.NewCityListMatcher()
	c.Dispatcher = services.NewDispatchService(c.AdminRepo, c.VolunteerRepo, c.SMSSvc, c.Matcher)
	c.HelpSvc = services.NewHelpService(c.HelpRepo, c.Dispatcher)
	c.AdminSvc = services.NewAdminService(c.AdminRepo, c.OtpStore, c.PasswordSvc, c.SMSSvc, c.Config.OTPLength)
	c.VolunteerSvc = services.NewVolunteerService(c.VolunteerRepo)
	c.HazardFeed = hazards.NewUSGSClient(c.Config.USGSURL, c.Config.HazardTimeout)
}

// Close closes all connections.
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
