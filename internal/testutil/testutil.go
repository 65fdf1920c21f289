// Package testutil fournit le harnais commun des tests de handlers :
// base SQLite en mémoire, routeur complet et client HTTP porteur de cookies.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"furnishfusion_back_end/internal/database"
	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/routes"
	"furnishfusion_back_end/internal/services"
	"furnishfusion_back_end/internal/session"
	"furnishfusion_back_end/internal/utils"
)

// NewDB ouvre une base SQLite en mémoire propre au test et applique les
// migrations.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database:", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}
	return db
}

// NewRouter assemble le routeur avec le renderer de test (sac de données en
// JSON), un uploader local jetable et un notifier muet.
func NewRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Register(r, routes.Deps{
		DB:       db,
		Sessions: session.NewManager("test-secret"),
		Render:   render.DataRenderer{},
		Uploader: services.LocalUploader{Dir: t.TempDir(), PublicPath: "/static/uploads"},
		Notifier: services.NoopNotifier{},
	})
	return r
}

// Client rejoue les cookies de session entre les requêtes, comme un
// navigateur.
type Client struct {
	Router  *gin.Engine
	cookies map[string]*http.Cookie
}

func NewClient(r *gin.Engine) *Client {
	return &Client{Router: r, cookies: make(map[string]*http.Cookie)}
}

func (c *Client) Do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

func (c *Client) Get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return c.Do(req)
}

func (c *Client) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(req)
}

// ---- Fixtures ----

func CreateProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: name + " description", Price: price}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal("failed to create product:", err)
	}
	return product
}

func CreateUser(t *testing.T, db *gorm.DB, name, email, password string) models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal("failed to hash password:", err)
	}
	user := models.User{Name: name, Email: email, Password: hashed}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal("failed to create user:", err)
	}
	return user
}

func CreateAdmin(t *testing.T, db *gorm.DB, username, password string) models.Admin {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal("failed to hash password:", err)
	}
	admin := models.Admin{Username: username, Email: username + "@furnishfusion.com", Password: hashed}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal("failed to create admin:", err)
	}
	return admin
}

// LoginUser authentifie le client via le formulaire de login.
func LoginUser(t *testing.T, c *Client, email, password string) {
	t.Helper()
	w := c.PostForm("/login", url.Values{"email": {email}, "password": {password}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("user login failed: status %d", w.Code)
	}
}

func LoginAdmin(t *testing.T, c *Client, username, password string) {
	t.Helper()
	w := c.PostForm("/admin/login", url.Values{"username": {username}, "password": {password}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("admin login failed: status %d", w.Code)
	}
}
