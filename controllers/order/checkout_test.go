package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lahuerta/storefront-api/cart"
	"github.com/lahuerta/storefront-api/catalog"
	"github.com/lahuerta/storefront-api/models"
	"github.com/lahuerta/storefront-api/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newCheckoutFixture(t *testing.T, ordersURL string) (*gin.Engine, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cart.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))

	store := cart.NewStore(db)
	index := catalog.NewIndex()
	index.Rebuild([]models.Product{
		{ID: 3, Name: "Bolsa de lechuga Romana (125 gr)", Price: 8500, Category: "Bolsas sencillas"},
	})
	submitter := order.NewSubmitter(ordersURL, store)

	r := gin.New()
	r.POST("/checkout", Checkout(store, index, submitter))
	return r, store
}

func TestCheckoutSubmitsAndEmptiesCart(t *testing.T) {
	var received models.Order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	router, store := newCheckoutFixture(t, server.URL)
	store.Add("3", 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"name":" Ana ","city":"Bogotá"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, store.Read())

	assert.Equal(t, "Ana", received.Name)
	require.Len(t, received.Items, 1)
	assert.Equal(t, 17000.0, received.Total)

	var body struct {
		Outcome string       `json:"outcome"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(order.OutcomeSent), body.Outcome)
	assert.Equal(t, received.OrderRef, body.Order.OrderRef)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	router, _ := newCheckoutFixture(t, "http://unused.invalid")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"name":"Ana"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutUnreachableEndpointStillSucceeds(t *testing.T) {
	router, store := newCheckoutFixture(t, "http://127.0.0.1:1/orders")
	store.Add("3", 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, store.Read())

	var body struct {
		Outcome string `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(order.OutcomeUnconfirmed), body.Outcome)
}

func TestCheckoutMalformedBodyRejected(t *testing.T) {
	router, store := newCheckoutFixture(t, "http://unused.invalid")
	store.Add("3", 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"name":`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// A rejected request never clears the cart
	assert.Equal(t, map[string]int{"3": 1}, store.Read())
}
