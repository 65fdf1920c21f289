package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnishfusion_back_end/internal/models"
	"furnishfusion_back_end/internal/testutil"
)

func decodeBag(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var bag map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bag))
	return bag
}

func addToCart(t *testing.T, c *testutil.Client, productID uint, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		w := c.PostForm("/add-to-cart/"+uintStr(productID), url.Values{})
		require.Equal(t, http.StatusSeeOther, w.Code)
	}
}

func uintStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestPlaceOrderComputesTotalAndSnapshots(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	lamp := testutil.CreateProduct(t, db, "Lamp", 50)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 2)
	addToCart(t, client, lamp.ID, 1)

	w := client.PostForm("/place-order", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, 250.0, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Items, 2)

	byProduct := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, 2, byProduct[sofa.ID].Quantity)
	assert.Equal(t, 100.0, byProduct[sofa.ID].Price)
	assert.Equal(t, 1, byProduct[lamp.ID].Quantity)
	assert.Equal(t, 50.0, byProduct[lamp.ID].Price)
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 1)
	client.PostForm("/place-order", url.Values{})

	// Le prix courant change après la commande, la ligne doit garder l'ancien.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", sofa.ID).Update("price", 999).Error)

	var item models.OrderItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 100.0, item.Price)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 1)
	client.PostForm("/place-order", url.Values{})

	bag := decodeBag(t, client.Get("/cart"))
	assert.Empty(t, bag["cart_items"])
	assert.Equal(t, 0.0, bag["total"])
}

func TestPlaceOrderRequiresLogin(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	w := client.PostForm("/place-order", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	w := client.PostForm("/place-order", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderDropsStaleCartLines(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	lamp := testutil.CreateProduct(t, db, "Lamp", 50)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 1)
	addToCart(t, client, lamp.ID, 1)

	// Le produit disparaît entre l'ajout et la commande.
	require.NoError(t, db.Delete(&models.Product{}, lamp.ID).Error)

	w := client.PostForm("/place-order", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, 100.0, orders[0].Total)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, sofa.ID, orders[0].Items[0].ProductID)
}

func TestPlaceOrderAllLinesStale(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 1)

	// Le seul produit du panier disparaît : même traitement qu'un panier vide,
	// aucune commande à zéro n'est insérée.
	require.NoError(t, db.Delete(&models.Product{}, sofa.ID).Error)

	w := client.PostForm("/place-order", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestViewCartDropsStaleReferences(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	lamp := testutil.CreateProduct(t, db, "Lamp", 50)

	addToCart(t, client, sofa.ID, 1)
	addToCart(t, client, lamp.ID, 2)

	require.NoError(t, db.Delete(&models.Product{}, lamp.ID).Error)

	bag := decodeBag(t, client.Get("/cart"))
	items := bag["cart_items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, "Sofa", line["name"])
	assert.Equal(t, 100.0, bag["total"])
}

func TestUpdateCartSequences(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	pid := uintStr(sofa.ID)

	// Trois incréments successifs → quantité 3.
	addToCart(t, client, sofa.ID, 1)
	client.PostForm("/update-cart/"+pid, url.Values{"action": {"increase"}})
	client.PostForm("/update-cart/"+pid, url.Values{"action": {"increase"}})

	bag := decodeBag(t, client.Get("/cart"))
	items := bag["cart_items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, 3.0, items[0].(map[string]interface{})["quantity"])

	// decrease jusqu'à suppression de la clé
	client.PostForm("/update-cart/"+pid, url.Values{"action": {"decrease"}})
	client.PostForm("/update-cart/"+pid, url.Values{"action": {"decrease"}})
	client.PostForm("/update-cart/"+pid, url.Values{"action": {"decrease"}})

	bag = decodeBag(t, client.Get("/cart"))
	assert.Empty(t, bag["cart_items"])

	// remove inconditionnel, clé absente = no-op
	w := client.PostForm("/update-cart/"+pid, url.Values{"action": {"remove"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestUpdateCartUnknownAction(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	pid := uintStr(sofa.ID)
	addToCart(t, client, sofa.ID, 1)
	client.Get("/cart") // consomme le flash d'ajout

	w := client.PostForm("/update-cart/"+pid, url.Values{"action": {"teleport"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	// Action inconnue : erreur signalée, panier inchangé.
	bag := decodeBag(t, client.Get("/cart"))
	flashes := bag["flashes"].([]interface{})
	require.Len(t, flashes, 1)
	assert.Equal(t, "Invalid cart action!", flashes[0].(map[string]interface{})["Message"])

	items := bag["cart_items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].(map[string]interface{})["quantity"])
}

func TestListOrdersShowsLiveProductMetadata(t *testing.T) {
	db := testutil.NewDB(t)
	client := testutil.NewClient(testutil.NewRouter(t, db))

	sofa := testutil.CreateProduct(t, db, "Sofa", 100)
	testutil.CreateUser(t, db, "June", "june@example.com", "pass1234")
	testutil.LoginUser(t, client, "june@example.com", "pass1234")

	addToCart(t, client, sofa.ID, 1)
	client.PostForm("/place-order", url.Values{})

	// Le nom courant du produit est affiché, pas un instantané.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", sofa.ID).Update("name", "Sofa Deluxe").Error)

	bag := decodeBag(t, client.Get("/orders"))
	orders := bag["orders_with_items"].([]interface{})
	require.Len(t, orders, 1)
	items := orders[0].(map[string]interface{})["order_items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Sofa Deluxe", item["name"])
	assert.Equal(t, 100.0, item["price"])
}
