package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/dmhub/domain"
)

const adminRole = "role_admin"

// AdminAuthMW gates protected mutations behind the admin directory. The
// bearer credential is the admin's email, accepted from the "token" query
// parameter, the X-Admin-Token header, or an "adminToken" body field.
type AdminAuthMW struct {
	gate     domain.AdminService
	enforcer domain.PolicyEnforcer
}

// NewAdminAuthMW creates new admin auth middleware.
func NewAdminAuthMW(gate domain.AdminService, enforcer domain.PolicyEnforcer) *AdminAuthMW {
	return &AdminAuthMW{gate: gate, enforcer: enforcer}
}

// Require returns the gate middleware function.
func (mw *AdminAuthMW) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := extractCredential(c)

		admin, err := mw.gate.Authorize(c.Request.Context(), credential)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Admin session required."})
			c.Abort()
			return
		}

		ok, err := mw.enforcer.Enforce(adminRole, c.Request.URL.Path, c.Request.Method)
		if err != nil || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Admin session required."})
			c.Abort()
			return
		}

		c.Set("admin_email", admin.Email)
		c.Next()
	}
}

// extractCredential locates the credential in order of precedence: query
// parameter, header, body field. The body is restored after peeking so
// downstream binding still works.
func extractCredential(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	if token := c.GetHeader("X-Admin-Token"); token != "" {
		return token
	}

	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var body struct {
		AdminToken string `json:"adminToken"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.AdminToken
}
