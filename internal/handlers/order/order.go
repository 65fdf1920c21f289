package order

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/services"
	"furnishfusion_back_end/internal/session"
)

type Handler struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Render   render.Renderer
	Notifier services.Notifier
}

func NewHandler(db *gorm.DB, sm *session.Manager, r render.Renderer, n services.Notifier) *Handler {
	return &Handler{DB: db, Sessions: sm, Render: r, Notifier: n}
}

// POST /place-order — derrière RequireUser. Convertit le panier en une
// commande persistée : une ligne orders puis une ligne order_items par entrée
// résolue, le tout dans une seule transaction. Le prix produit est figé sur
// chaque ligne.
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID, _ := h.Sessions.UserID(c)

	cart := h.Sessions.Cart(c)
	if cart.Empty() {
		h.Sessions.Flash(c, "error", "Your cart is empty!")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	lines, total, err := resolveCart(h.DB, cart)
	if err != nil {
		log.Println("❌ Erreur résolution panier :", err)
		h.Sessions.Flash(c, "error", "An error occurred while placing your order. Please try again.")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	// Toutes les lignes peuvent avoir été périmées entre-temps.
	if len(lines) == 0 {
		h.Sessions.Flash(c, "error", "Your cart is empty!")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	order := models.Order{UserID: userID, Total: total, Status: models.StatusPending}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		// L'id de commande doit exister avant les lignes qui le référencent.
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		// Rollback : le panier en session reste intact.
		log.Println("❌ Erreur création commande :", err)
		h.Sessions.Flash(c, "error", "An error occurred while placing your order. Please try again.")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if err := h.Sessions.ClearCart(c); err != nil {
		log.Println("⚠️ Erreur vidage panier :", err)
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err == nil {
		h.Notifier.OrderPlaced(order, user.Name, user.Email)
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Order placed successfully! Order ID: #%d", order.ID))
	c.Redirect(http.StatusSeeOther, "/orders")
}

// GET /orders — derrière RequireUser. L'historique réutilise le nom et la
// description courants du produit ; seuls prix et quantité sont figés.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, _ := h.Sessions.UserID(c)

	var orders []models.Order
	if err := h.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		log.Println("❌ Erreur lecture commandes :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
	}

	h.Render.HTML(c, http.StatusOK, "orders.html", gin.H{
		"orders_with_items": h.ordersWithItems(orders),
		"flashes":           h.Sessions.TakeFlashes(c),
	})
}

// ordersWithItems annote chaque commande de ses lignes jointes au produit
// courant. Une ligne dont le produit a disparu est filtrée de l'affichage.
func (h *Handler) ordersWithItems(orders []models.Order) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items := make([]gin.H, 0, len(o.Items))
		for _, item := range o.Items {
			var product models.Product
			if err := h.DB.First(&product, item.ProductID).Error; err != nil {
				continue
			}
			items = append(items, gin.H{
				"name":        product.Name,
				"description": product.Description,
				"quantity":    item.Quantity,
				"price":       item.Price,
			})
		}
		out = append(out, gin.H{"order": o, "order_items": items})
	}
	return out
}
