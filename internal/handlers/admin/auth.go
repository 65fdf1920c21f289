package admin

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/services"
	"furnishfusion_back_end/internal/session"
	"furnishfusion_back_end/internal/utils"
)

type Handler struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Render   render.Renderer
	Uploader services.Uploader
}

func NewHandler(db *gorm.DB, sm *session.Manager, r render.Renderer, u services.Uploader) *Handler {
	return &Handler{DB: db, Sessions: sm, Render: r, Uploader: u}
}

// GET /admin/login
func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := h.Sessions.AdminID(c); ok {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	h.Render.HTML(c, http.StatusOK, "admin_login.html", gin.H{
		"flashes": h.Sessions.TakeFlashes(c),
	})
}

// POST /admin/login
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	rerender := func() {
		h.Render.HTML(c, http.StatusOK, "admin_login.html", gin.H{
			"username": username,
			"flashes":  h.Sessions.TakeFlashes(c),
		})
	}

	if username == "" || password == "" {
		h.Sessions.Flash(c, "error", "Username and password are required!")
		rerender()
		return
	}

	var admin models.Admin
	if err := h.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		c.Set("login_failed", true)
		h.Sessions.Flash(c, "error", "Invalid username or password. Please try again.")
		rerender()
		return
	}

	ok, err := utils.VerifyPassword(password, admin.Password)
	if err != nil || !ok {
		c.Set("login_failed", true)
		h.Sessions.Flash(c, "error", "Invalid username or password. Please try again.")
		rerender()
		return
	}

	if err := h.Sessions.SetAdmin(c, admin); err != nil {
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Welcome, %s!", admin.Username))
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// GET /admin/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.ClearAdmin(c); err != nil {
		log.Println("⚠️ Erreur déconnexion admin :", err)
	}
	h.Sessions.Flash(c, "success", "You have been logged out successfully.")
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
