package session

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"furnishfusion_back_end/internal/models"
)

const sessionName = "furnishfusion_session"

// Flash est un message one-shot affiché à la prochaine page rendue.
type Flash struct {
	Kind    string // "success" ou "error"
	Message string
}

func init() {
	// Le CookieStore sérialise en gob : il faut déclarer les types stockés.
	gob.Register(models.Cart{})
	gob.Register(Flash{})
}

// Manager encapsule le CookieStore et expose l'état de session typé :
// identité client, identité admin, panier et flashes. Toute l'info transite
// par le cookie signé — pas d'état serveur.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

func (m *Manager) session(c *gin.Context) *sessions.Session {
	// Get retourne une session neuve quand le cookie est absent ou corrompu.
	s, err := m.store.Get(c.Request, sessionName)
	if err != nil {
		log.Println("⚠️ Cookie de session illisible, session réinitialisée :", err)
	}
	return s
}

func (m *Manager) save(c *gin.Context, s *sessions.Session) error {
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Println("❌ Erreur sauvegarde session :", err)
		return err
	}
	return nil
}

// ---- Identité client ----

func (m *Manager) UserID(c *gin.Context) (uint, bool) {
	id, ok := m.session(c).Values["user_id"].(uint)
	return id, ok
}

func (m *Manager) UserName(c *gin.Context) string {
	name, _ := m.session(c).Values["user_name"].(string)
	return name
}

func (m *Manager) SetUser(c *gin.Context, u models.User) error {
	s := m.session(c)
	s.Values["user_id"] = u.ID
	s.Values["user_name"] = u.Name
	return m.save(c, s)
}

func (m *Manager) ClearUser(c *gin.Context) error {
	s := m.session(c)
	delete(s.Values, "user_id")
	delete(s.Values, "user_name")
	return m.save(c, s)
}

// ---- Identité admin ----

func (m *Manager) AdminID(c *gin.Context) (uint, bool) {
	id, ok := m.session(c).Values["admin_id"].(uint)
	return id, ok
}

func (m *Manager) AdminUsername(c *gin.Context) string {
	name, _ := m.session(c).Values["admin_username"].(string)
	return name
}

func (m *Manager) SetAdmin(c *gin.Context, a models.Admin) error {
	s := m.session(c)
	s.Values["admin_id"] = a.ID
	s.Values["admin_username"] = a.Username
	return m.save(c, s)
}

func (m *Manager) ClearAdmin(c *gin.Context) error {
	s := m.session(c)
	delete(s.Values, "admin_id")
	delete(s.Values, "admin_username")
	return m.save(c, s)
}

// ---- Panier ----

// Cart retourne une copie du panier en session, jamais nil.
func (m *Manager) Cart(c *gin.Context) models.Cart {
	cart, ok := m.session(c).Values["cart"].(models.Cart)
	if !ok {
		return models.Cart{}
	}
	copied := make(models.Cart, len(cart))
	for pid, qty := range cart {
		copied[pid] = qty
	}
	return copied
}

// SaveCart réécrit le panier complet dans la session (pas de mise à jour
// partielle).
func (m *Manager) SaveCart(c *gin.Context, cart models.Cart) error {
	s := m.session(c)
	s.Values["cart"] = cart
	return m.save(c, s)
}

func (m *Manager) ClearCart(c *gin.Context) error {
	s := m.session(c)
	delete(s.Values, "cart")
	return m.save(c, s)
}

// ---- Flashes ----

func (m *Manager) Flash(c *gin.Context, kind, message string) {
	s := m.session(c)
	s.AddFlash(Flash{Kind: kind, Message: message})
	_ = m.save(c, s)
}

// TakeFlashes consomme les flashes en attente.
func (m *Manager) TakeFlashes(c *gin.Context) []Flash {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = m.save(c, s)

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
