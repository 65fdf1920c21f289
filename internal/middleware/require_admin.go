package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"furnishfusion_back_end/internal/session"
)

// RequireAdmin garde les routes d'administration : sans identité admin en
// session, redirection uniforme vers le login admin.
func RequireAdmin(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sm.AdminID(c); !ok {
			sm.Flash(c, "error", "Admin access required. Please login as admin.")
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUser garde les routes qui exigent un client connecté.
func RequireUser(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sm.UserID(c); !ok {
			sm.Flash(c, "error", "Please login to continue.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
