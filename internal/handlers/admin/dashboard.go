package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"furnishfusion_back_end/internal/models"
)

// GET /admin/dashboard — statistiques globales et activité récente.
func (h *Handler) Dashboard(c *gin.Context) {
	var (
		totalProducts int64
		totalOrders   int64
		totalUsers    int64
		totalRevenue  float64
	)
	h.DB.Model(&models.Product{}).Count(&totalProducts)
	h.DB.Model(&models.Order{}).Count(&totalOrders)
	h.DB.Model(&models.User{}).Count(&totalUsers)
	if err := h.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		log.Println("❌ Erreur calcul revenu :", err)
	}

	var recentOrders []models.Order
	h.DB.Preload("User").Order("created_at DESC").Limit(10).Find(&recentOrders)

	recentOrderViews := make([]gin.H, 0, len(recentOrders))
	for _, o := range recentOrders {
		recentOrderViews = append(recentOrderViews, gin.H{
			"order":      o,
			"user_name":  o.User.Name,
			"user_email": o.User.Email,
		})
	}

	var recentProducts []models.Product
	h.DB.Order("created_at DESC").Limit(5).Find(&recentProducts)

	h.Render.HTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"admin_username":  h.Sessions.AdminUsername(c),
		"total_products":  totalProducts,
		"total_orders":    totalOrders,
		"total_users":     totalUsers,
		"total_revenue":   totalRevenue,
		"recent_orders":   recentOrderViews,
		"recent_products": recentProducts,
		"flashes":         h.Sessions.TakeFlashes(c),
	})
}
