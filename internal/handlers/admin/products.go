package admin

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/services"
)

// GET /admin/products
func (h *Handler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		log.Println("❌ Erreur lecture produits :", err)
		h.Sessions.Flash(c, "error", "Something went wrong. Please try again.")
	}
	h.Render.HTML(c, http.StatusOK, "admin_products.html", gin.H{
		"products": products,
		"flashes":  h.Sessions.TakeFlashes(c),
	})
}

// GET /admin/products/add
func (h *Handler) ShowAddProduct(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "admin_add_product.html", gin.H{
		"flashes": h.Sessions.TakeFlashes(c),
	})
}

// POST /admin/products/add — formulaire multipart : soit une URL d'image,
// soit un fichier uploadé (extension sur liste blanche, nom horodaté).
func (h *Handler) AddProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := strings.TrimSpace(c.PostForm("price"))
	imageURL := strings.TrimSpace(c.PostForm("image_url"))

	// Réaffiche le formulaire avec les valeurs soumises.
	rerender := func() {
		h.Render.HTML(c, http.StatusOK, "admin_add_product.html", gin.H{
			"name":        name,
			"description": description,
			"price":       priceStr,
			"image_url":   imageURL,
			"flashes":     h.Sessions.TakeFlashes(c),
		})
	}

	if name == "" || priceStr == "" {
		h.Sessions.Flash(c, "error", "Name and price are required!")
		rerender()
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		h.Sessions.Flash(c, "error", "Invalid price. Please enter a valid number.")
		rerender()
		return
	}

	if file, err := c.FormFile("image_file"); err == nil && file.Filename != "" {
		if !services.AllowedImageFile(file.Filename) {
			h.Sessions.Flash(c, "error", "Invalid file type. Allowed: PNG, JPG, JPEG, GIF, WEBP")
			rerender()
			return
		}
		uploaded, err := h.Uploader.SaveImage(c.Request.Context(), file)
		if err != nil {
			log.Println("❌ Erreur upload image :", err)
			h.Sessions.Flash(c, "error", "An error occurred while adding the product. Please try again.")
			rerender()
			return
		}
		imageURL = uploaded
	}

	product := models.Product{Name: name, Description: description, Price: price, ImageURL: imageURL}
	if err := h.DB.Create(&product).Error; err != nil {
		log.Println("❌ Erreur création produit :", err)
		h.Sessions.Flash(c, "error", "An error occurred while adding the product. Please try again.")
		rerender()
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Product '%s' added successfully!", name))
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// POST /admin/products/delete/:id — refuse la suppression d'un produit déjà
// référencé par une ligne de commande.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Sessions.Flash(c, "error", "Product not found!")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		h.Sessions.Flash(c, "error", "Product not found!")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	var referenced int64
	if err := h.DB.Model(&models.OrderItem{}).
		Where("product_id = ?", product.ID).
		Count(&referenced).Error; err != nil {
		log.Println("❌ Erreur vérification commandes :", err)
		h.Sessions.Flash(c, "error", "An error occurred while deleting the product.")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}
	if referenced > 0 {
		h.Sessions.Flash(c, "error", "Cannot delete product that has been ordered. You can hide it instead.")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		log.Println("❌ Erreur suppression produit :", err)
		h.Sessions.Flash(c, "error", "An error occurred while deleting the product.")
		c.Redirect(http.StatusSeeOther, "/admin/products")
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Product '%s' deleted successfully!", product.Name))
	c.Redirect(http.StatusSeeOther, "/admin/products")
}
