package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/models"
)

// GET /admin/contact
func (h *Handler) ShowContact(c *gin.Context) {
	h.Render.HTML(c, http.StatusOK, "admin_contact.html", gin.H{
		"contact_info": h.currentContact(),
		"flashes":      h.Sessions.TakeFlashes(c),
	})
}

// POST /admin/contact — upsert de la ligne singleton : mise à jour si une
// ligne existe, insertion sinon. Jamais deux lignes.
func (h *Handler) SaveContact(c *gin.Context) {
	companyName := strings.TrimSpace(c.PostForm("company_name"))
	email := strings.TrimSpace(c.PostForm("email"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	address := strings.TrimSpace(c.PostForm("address"))
	city := strings.TrimSpace(c.PostForm("city"))
	state := strings.TrimSpace(c.PostForm("state"))
	zipCode := strings.TrimSpace(c.PostForm("zip_code"))
	country := strings.TrimSpace(c.PostForm("country"))
	website := strings.TrimSpace(c.PostForm("website"))

	if companyName == "" || email == "" || phone == "" || address == "" {
		h.Sessions.Flash(c, "error", "Company name, email, phone, and address are required!")
		h.Render.HTML(c, http.StatusOK, "admin_contact.html", gin.H{
			"contact_info": h.currentContact(),
			"flashes":      h.Sessions.TakeFlashes(c),
		})
		return
	}

	var existing models.ContactInfo
	err := h.DB.First(&existing).Error
	switch {
	case err == nil:
		// Updates avec map : les champs optionnels vidés doivent aussi être écrits.
		err = h.DB.Model(&existing).Updates(map[string]interface{}{
			"company_name": companyName,
			"email":        email,
			"phone":        phone,
			"address":      address,
			"city":         city,
			"state":        state,
			"zip_code":     zipCode,
			"country":      country,
			"website":      website,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = h.DB.Create(&models.ContactInfo{
			CompanyName: companyName,
			Email:       email,
			Phone:       phone,
			Address:     address,
			City:        city,
			State:       state,
			ZipCode:     zipCode,
			Country:     country,
			Website:     website,
		}).Error
	}

	if err != nil {
		log.Println("❌ Erreur sauvegarde contact :", err)
		h.Sessions.Flash(c, "error", "An error occurred while updating contact details. Please try again.")
		h.Render.HTML(c, http.StatusOK, "admin_contact.html", gin.H{
			"contact_info": h.currentContact(),
			"flashes":      h.Sessions.TakeFlashes(c),
		})
		return
	}

	h.Sessions.Flash(c, "success", "Contact details updated successfully!")
	c.Redirect(http.StatusSeeOther, "/admin/contact")
}

func (h *Handler) currentContact() *models.ContactInfo {
	var contact models.ContactInfo
	if err := h.DB.First(&contact).Error; err != nil {
		return nil
	}
	return &contact
}
