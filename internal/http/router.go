package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/you/dmhub/internal/http/handlers"
	"github.com/you/dmhub/internal/http/middleware"
)

// BuildRouter assembles the public and admin-gated HTTP surface.
func BuildRouter(
	adminH *handlers.AdminHandlers,
	helpH *handlers.HelpHandlers,
	volH *handlers.VolunteerHandlers,
	hazH *handlers.HazardHandlers,
	adminMW *middleware.AdminAuthMW,
	corsOrigin string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if corsOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins: []string{corsOrigin},
			AllowMethods: []string{"GET", "POST", "PUT"},
			AllowHeaders: []string{"Content-Type", "X-Admin-Token"},
		}))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	admin := r.Group("/api/admin")
	admin.POST("/register/send-otp", adminH.RegisterSendOTP)
	admin.POST("/register/verify-otp", adminH.RegisterVerifyOTP)
	admin.POST("/login", adminH.Login)
	admin.POST("/reset/send-otp", adminH.ResetSendOTP)
	admin.POST("/reset/change-password", adminH.ResetChangePassword)

	r.POST("/api/volunteer/register", volH.Register)

	help := r.Group("/api/help")
	help.POST("/request", helpH.Submit)
	help.GET("/alerts", helpH.ListActive)
	help.PUT("/alerts/:id/status", adminMW.Require(), helpH.UpdateStatus)

	r.GET("/api/disasters/india/active", hazH.Active)

	return r
}
