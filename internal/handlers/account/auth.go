package account

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/session"
	"furnishfusion_back_end/internal/utils"
)

type Handler struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Render   render.Renderer
}

func NewHandler(db *gorm.DB, sm *session.Manager, r render.Renderer) *Handler {
	return &Handler{DB: db, Sessions: sm, Render: r}
}

// GET / — aiguillage selon l'identité en session.
func (h *Handler) Index(c *gin.Context) {
	if _, ok := h.Sessions.AdminID(c); ok {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	if _, ok := h.Sessions.UserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// GET /register
func (h *Handler) ShowRegister(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "register.html", gin.H{
		"flashes": h.Sessions.TakeFlashes(c),
	})
}

// POST /register
func (h *Handler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	rerender := func() {
		h.Render.HTML(c, http.StatusOK, "register.html", gin.H{
			"name":    name,
			"email":   email,
			"flashes": h.Sessions.TakeFlashes(c),
		})
	}

	if name == "" || email == "" || password == "" {
		h.Sessions.Flash(c, "error", "Name, email and password are required!")
		rerender()
		return
	}

	var existing models.User
	err := h.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		h.Sessions.Flash(c, "error", "An account with this email already exists!")
		rerender()
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("❌ Erreur lecture utilisateur :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		rerender()
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Println("❌ Erreur hash mot de passe :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		rerender()
		return
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := h.DB.Create(&user).Error; err != nil {
		log.Println("❌ Erreur création utilisateur :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		rerender()
		return
	}

	h.Sessions.Flash(c, "success", "Registration successful! Please login.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// GET /login
func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := h.Sessions.UserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	h.Render.HTML(c, http.StatusOK, "login.html", gin.H{
		"flashes": h.Sessions.TakeFlashes(c),
	})
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	fail := func() {
		// Signale l'échec au rate limit.
		c.Set("login_failed", true)
		h.Sessions.Flash(c, "error", "Invalid email or password. Please try again.")
		h.Render.HTML(c, http.StatusOK, "login.html", gin.H{
			"email":   email,
			"flashes": h.Sessions.TakeFlashes(c),
		})
	}

	if email == "" || password == "" {
		h.Sessions.Flash(c, "error", "Email and password are required!")
		h.Render.HTML(c, http.StatusOK, "login.html", gin.H{
			"email":   email,
			"flashes": h.Sessions.TakeFlashes(c),
		})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		fail()
		return
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		fail()
		return
	}

	if err := h.Sessions.SetUser(c, user); err != nil {
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Welcome back, %s!", user.Name))
	c.Redirect(http.StatusSeeOther, "/products")
}

// GET /logout — l'identité est effacée, le panier reste en session.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.ClearUser(c); err != nil {
		log.Println("⚠️ Erreur déconnexion :", err)
	}
	h.Sessions.Flash(c, "success", "You have been logged out successfully.")
	c.Redirect(http.StatusSeeOther, "/login")
}
