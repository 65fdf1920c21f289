package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/handlers/account"
	"furnishfusion_back_end/internal/handlers/admin"
	"furnishfusion_back_end/internal/handlers/catalog"
	"furnishfusion_back_end/internal/handlers/order"
	"furnishfusion_back_end/internal/middleware"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/services"
	"furnishfusion_back_end/internal/session"
)

// Deps regroupe les dépendances injectées dans les handlers : pas de globals,
// tout l'état partagé passe par ici.
type Deps struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Render   render.Renderer
	Uploader services.Uploader
	Notifier services.Notifier
	Redis    *redis.Client // nil = rate limit désactivé

	UploadDir      string // servi sous /static/uploads quand non vide
	MaxUploadBytes int64
}

func Register(r *gin.Engine, deps Deps) {
	r.Use(cors.Default())

	if deps.UploadDir != "" {
		r.Static("/static/uploads", deps.UploadDir)
	}

	accountH := account.NewHandler(deps.DB, deps.Sessions, deps.Render)
	catalogH := catalog.NewHandler(deps.DB, deps.Sessions, deps.Render)
	orderH := order.NewHandler(deps.DB, deps.Sessions, deps.Render, deps.Notifier)
	adminH := admin.NewHandler(deps.DB, deps.Sessions, deps.Render, deps.Uploader)

	// Boutique
	r.GET("/", accountH.Index)
	r.GET("/register", accountH.ShowRegister)
	r.POST("/register", accountH.Register)
	r.GET("/login", accountH.ShowLogin)
	r.POST("/login", middleware.LoginRateLimit(deps.Redis), accountH.Login)
	r.GET("/logout", accountH.Logout)

	r.GET("/products", catalogH.ListProducts)
	r.POST("/add-to-cart/:id", catalogH.AddToCart)

	r.GET("/cart", orderH.ViewCart)
	r.POST("/update-cart/:id", orderH.UpdateCart)
	r.POST("/place-order", middleware.RequireUser(deps.Sessions), orderH.PlaceOrder)
	r.GET("/orders", middleware.RequireUser(deps.Sessions), orderH.ListOrders)

	// Console admin
	adm := r.Group("/admin")
	adm.GET("/login", adminH.ShowLogin)
	adm.POST("/login", middleware.LoginRateLimit(deps.Redis), adminH.Login)
	adm.GET("/logout", adminH.Logout)

	guarded := adm.Group("")
	guarded.Use(middleware.RequireAdmin(deps.Sessions))
	guarded.GET("/dashboard", adminH.Dashboard)
	guarded.GET("/products", adminH.ListProducts)
	guarded.GET("/products/add", adminH.ShowAddProduct)
	guarded.POST("/products/add", middleware.MaxBodySize(deps.MaxUploadBytes), adminH.AddProduct)
	guarded.POST("/products/delete/:id", adminH.DeleteProduct)
	guarded.GET("/orders", adminH.ListOrders)
	guarded.POST("/orders/update-status/:id", adminH.UpdateOrderStatus)
	guarded.GET("/contact", adminH.ShowContact)
	guarded.POST("/contact", adminH.SaveContact)
}
