package catalog

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/session"
)

type Handler struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Render   render.Renderer
}

func NewHandler(db *gorm.DB, sm *session.Manager, r render.Renderer) *Handler {
	return &Handler{DB: db, Sessions: sm, Render: r}
}

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		log.Println("❌ Erreur lecture produits :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
	}

	// Le compteur affiché est le nombre total d'articles, pas de lignes.
	cartCount := 0
	for _, qty := range h.Sessions.Cart(c) {
		cartCount += qty
	}

	h.Render.HTML(c, http.StatusOK, "products.html", gin.H{
		"products":   products,
		"user_name":  h.Sessions.UserName(c),
		"cart_count": cartCount,
		"flashes":    h.Sessions.TakeFlashes(c),
	})
}

// POST /add-to-cart/:id
func (h *Handler) AddToCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Sessions.Flash(c, "error", "Product not found!")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		h.Sessions.Flash(c, "error", "Product not found!")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	cart := h.Sessions.Cart(c)
	cart.Increase(strconv.FormatUint(id, 10))
	if err := h.Sessions.SaveCart(c, cart); err != nil {
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("%s added to cart!", product.Name))
	c.Redirect(http.StatusSeeOther, "/products")
}
