package admin

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"furnishfusion_back_end/internal/models"
)

// GET /admin/orders
func (h *Handler) ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Preload("User").Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		log.Println("❌ Erreur lecture commandes :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
	}

	views := make([]gin.H, 0, len(orders))
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
		views = append(views, gin.H{
			"order":       o,
			"user_name":   o.User.Name,
			"user_email":  o.User.Email,
			"order_items": items,
		})
	}

	h.Render.HTML(c, http.StatusOK, "admin_orders.html", gin.H{
		"orders_with_items": views,
		"statuses": []string{
			models.StatusPending,
			models.StatusAccepted,
			models.StatusProcessing,
			models.StatusCompleted,
			models.StatusCancelled,
		},
		"flashes": h.Sessions.TakeFlashes(c),
	})
}

var statusMessages = map[string]string{
	models.StatusAccepted:   "Order accepted successfully!",
	models.StatusCancelled:  "Order cancelled successfully!",
	models.StatusProcessing: "Order status updated to processing!",
	models.StatusCompleted:  "Order marked as completed!",
	models.StatusPending:    "Order status reset to pending!",
}

// POST /admin/orders/update-status/:id — écrase le statut sans graphe de
// transition : n'importe quel statut valide est atteignable depuis n'importe
// quel autre.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	status := strings.ToLower(strings.TrimSpace(c.PostForm("status")))

	if !models.ValidOrderStatus(status) {
		h.Sessions.Flash(c, "error", "Invalid status!")
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Sessions.Flash(c, "error", "Order not found!")
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		h.Sessions.Flash(c, "error", "Order not found!")
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	if err := h.DB.Model(&order).Update("status", status).Error; err != nil {
		log.Println("❌ Erreur mise à jour statut :", err)
		h.Sessions.Flash(c, "error", "An error occurred while updating the order status.")
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	h.Sessions.Flash(c, "success", statusMessages[status])
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}
