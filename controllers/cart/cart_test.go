package cartcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThaRealJozef/DimaVelo-sub000/cart"
	"github.com/ThaRealJozef/DimaVelo-sub000/models"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

type memPersister struct {
	snapshots map[string][]byte
}

func (p *memPersister) Save(_ context.Context, id string, raw []byte) error {
	p.snapshots[id] = raw
	return nil
}

func (p *memPersister) Load(_ context.Context, id string) ([]byte, error) {
	raw, ok := p.snapshots[id]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (p *memPersister) Delete(_ context.Context, id string) error {
	delete(p.snapshots, id)
	return nil
}

type staticProducts struct {
	byID map[string]models.Product
}

func (s *staticProducts) List(context.Context) ([]models.Product, error) { return nil, nil }

func (s *staticProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *staticProducts) Create(context.Context, *models.Product) error { return nil }
func (s *staticProducts) Update(context.Context, *models.Product) error { return nil }
func (s *staticProducts) Delete(context.Context, string) error          { return nil }

func testRouter() (*gin.Engine, cart.Persister) {
	gin.SetMode(gin.TestMode)
	persister := &memPersister{snapshots: map[string][]byte{}}
	products := &staticProducts{byID: map[string]models.Product{
		"p1": {
			ID: "p1", CategoryID: "velos",
			NameFr: "Vélo de route", NameEn: "Road bike",
			Price:  4500,
			Images: []string{"https://img.example/p1.jpg"},
		},
		"p2": {
			ID: "p2", CategoryID: "accessoires",
			NameFr: "Casque", Price: 300,
			OriginalPrice: 300, DiscountPrice: 270,
		},
	}}

	r := gin.New()
	r.GET("/cart", GetCart(persister))
	r.POST("/cart/items", AddItem(persister, products))
	r.PUT("/cart/items/:product_id", UpdateItem(persister))
	r.DELETE("/cart/items/:product_id", DeleteItem(persister))
	r.DELETE("/cart", ClearCart(persister))
	return r, persister
}

func doJSON(t *testing.T, r *gin.Engine, method, path, session string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) cartView {
	t.Helper()
	var v cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestFirstTouchMintsSession(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/cart", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SessionHeader))
	assert.Zero(t, decodeView(t, w).ItemsCount)
}

func TestAddItemSnapshotsLocalizedProduct(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/items?lang=en", "s1", gin.H{"productId": "p1", "quantity": 2})

	require.Equal(t, http.StatusOK, w.Code)
	v := decodeView(t, w)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Road bike", v.Items[0].Name)
	assert.Equal(t, "https://img.example/p1.jpg", v.Items[0].Image)
	assert.Equal(t, 2, v.ItemsCount)
	assert.InDelta(t, 9000, v.Total, 1e-9)
}

func TestAddItemUsesPromotionPricing(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "p2", "quantity": 1})

	require.Equal(t, http.StatusOK, w.Code)
	v := decodeView(t, w)
	assert.InDelta(t, 270, v.Total, 1e-9)
}

func TestAddUnknownProduct(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "nope", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	r, _ := testRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "p1", "quantity": 1})
	doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "p1", "quantity": 3})

	w := doJSON(t, r, http.MethodGet, "/cart", "s1", nil)
	v := decodeView(t, w)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 4, v.Items[0].Quantity)

	// Another session sees its own empty cart.
	other := doJSON(t, r, http.MethodGet, "/cart", "s2", nil)
	assert.Zero(t, decodeView(t, other).ItemsCount)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	r, _ := testRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "p1", "quantity": 2})
	w := doJSON(t, r, http.MethodPut, "/cart/items/p1", "s1", gin.H{"quantity": 0})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeView(t, w).Items)
}

func TestClearCart(t *testing.T) {
	r, persister := testRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", "s1", gin.H{"productId": "p1", "quantity": 2})
	w := doJSON(t, r, http.MethodDelete, "/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := persister.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, raw)
}
