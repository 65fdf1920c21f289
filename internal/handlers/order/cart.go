package order

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /cart
func (h *Handler) ViewCart(c *gin.Context) {
	cart := h.Sessions.Cart(c)

	lines, total, err := resolveCart(h.DB, cart)
	if err != nil {
		log.Println("❌ Erreur résolution panier :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
		lines, total = nil, 0
	}

	items := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		items = append(items, gin.H{
			"id":          line.Product.ID,
			"name":        line.Product.Name,
			"description": line.Product.Description,
			"price":       line.Product.Price,
			"quantity":    line.Quantity,
			"total":       line.Total,
		})
	}

	h.Render.HTML(c, http.StatusOK, "cart.html", gin.H{
		"cart_items": items,
		"total":      total,
		"flashes":    h.Sessions.TakeFlashes(c),
	})
}

// POST /update-cart/:id — champ de formulaire "action" ∈ {increase, decrease, remove}.
func (h *Handler) UpdateCart(c *gin.Context) {
	pid := c.Param("id")
	action := c.PostForm("action")

	cart := h.Sessions.Cart(c)

	switch action {
	case "remove":
		cart.Remove(pid)
		h.Sessions.Flash(c, "success", "Item removed from cart!")
	case "decrease":
		if _, ok := cart[pid]; ok {
			cart.Decrease(pid)
			if _, still := cart[pid]; !still {
				h.Sessions.Flash(c, "success", "Item removed from cart!")
			}
		}
	case "increase":
		cart.Increase(pid)
	default:
		h.Sessions.Flash(c, "error", "Invalid cart action!")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if err := h.Sessions.SaveCart(c, cart); err != nil {
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}
