package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/internal/config"
	httpx "github.com/you/dmhub/internal/http"
	"github.com/you/dmhub/internal/http/handlers"
	"github.com/you/dmhub/internal/http/middleware"
)

var log = logrus.WithField("prefix", "app")

// Run wires the container, seeds the admin route policy, and serves HTTP.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	adminH := handlers.NewAdminHandlers(c.AdminSvc)
	helpH := handlers.NewHelpHandlers(c.HelpSvc)
	volH := handlers.NewVolunteerHandlers(c.VolunteerSvc)
	hazH := handlers.NewHazardHandlers(c.HazardFeed)
	adminMW := middleware.NewAdminAuthMW(c.AdminSvc, c.Casbin)

	r := httpx.BuildRouter(adminH, helpH, volH, hazH, adminMW, cfg.CORSOrigin)

	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) == 0 {
		c.Casbin.E.AddPolicy("role_admin", "/api/help/alerts/*", "PUT")
		_ = c.Casbin.E.SavePolicy()
		log.Info("casbin: seeded default admin policy")
	}

	addr := ":" + cfg.Port
	log.Infof("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
