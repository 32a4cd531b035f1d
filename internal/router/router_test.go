package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/resto-next/internal/config"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cartResult struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	CartTotal *float64        `json:"cart_total"`
	CartCount *int64          `json:"cart_count"`
	Data      json.RawMessage `json:"data"`
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func setupRouterTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug", AdminEnabled: true},
		Session: config.SessionConfig{CookieName: "resto_session", MaxAgeSeconds: 3600},
		Order:   config.OrderConfig{Currency: "DA"},
		Menu:    config.MenuConfig{FeaturedLimit: 4},
	}
	return SetupRouter(cfg, provider.NewContainer(cfg)), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	category := &models.Category{Title: "Plats " + name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID:  category.ID,
		Name:        name,
		Price:       models.NewMoneyFromInt(price),
		IsAvailable: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path, session string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCartResult(t *testing.T, w *httptest.ResponseRecorder) cartResult {
	t.Helper()
	var resp cartResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal cart result failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func TestHealthRoute(t *testing.T) {
	r, _ := setupRouterTest(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r, db := setupRouterTest(t)
	pizza := seedProduct(t, db, "Pizza", 500)
	session := uuid.NewString()

	w := doJSON(t, r, http.MethodPost, "/api/v1/cart/products", session, gin.H{"product_id": pizza.ID, "quantity": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add product status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	added := decodeCartResult(t, w)
	if !added.Success || added.CartTotal == nil || *added.CartTotal != 1000 {
		t.Fatalf("want success with total 1000 got %+v", added)
	}
	if added.CartCount == nil || *added.CartCount != 1 {
		t.Fatalf("want one cart line got %v", added.CartCount)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/cart/products", session, gin.H{"product_id": pizza.ID, "quantity": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity status want 400 got %d", w.Code)
	}
	if rejected := decodeCartResult(t, w); rejected.Success || rejected.Message == "" {
		t.Fatalf("want failure with message got %+v", rejected)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", session, gin.H{"customer_name": "Amine"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing phone status want 400 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", session, gin.H{"customer_name": "Amine", "customer_phone": "0550000000"})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status want 201 got %d body=%s", w.Code, w.Body.String())
	}
	placed := decodeCartResult(t, w)
	if placed.CartTotal == nil || *placed.CartTotal != 0 || placed.CartCount == nil || *placed.CartCount != 0 {
		t.Fatalf("checkout must report the emptied cart, got total=%v count=%v", placed.CartTotal, placed.CartCount)
	}
	var order struct {
		ID         uint         `json:"id"`
		TotalPrice models.Money `json:"total_price"`
		Status     string       `json:"status"`
	}
	if err := json.Unmarshal(placed.Data, &order); err != nil {
		t.Fatalf("unmarshal order failed: %v", err)
	}
	if order.ID == 0 || !order.TotalPrice.Equal(models.NewMoneyFromInt(1000)) || order.Status != "pending" {
		t.Fatalf("unexpected order %+v", order)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/cart", session, nil)
	var cartResp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	var detail struct {
		Count int64 `json:"cart_count"`
	}
	_ = json.Unmarshal(cartResp.Data, &detail)
	if detail.Count != 0 {
		t.Fatalf("cart should be empty after checkout, got count %d", detail.Count)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.ID), session, nil)
	var own envelope
	if err := json.Unmarshal(w.Body.Bytes(), &own); err != nil {
		t.Fatalf("unmarshal order response failed: %v", err)
	}
	if own.StatusCode != 0 {
		t.Fatalf("owner should see order, status_code %d", own.StatusCode)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.ID), uuid.NewString(), nil)
	var other envelope
	if err := json.Unmarshal(w.Body.Bytes(), &other); err != nil {
		t.Fatalf("unmarshal order response failed: %v", err)
	}
	if other.StatusCode != 404 {
		t.Fatalf("other session want status_code 404 got %d", other.StatusCode)
	}
}

func TestCheckoutEmptyCartReturnsBadRequest(t *testing.T) {
	r, _ := setupRouterTest(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", uuid.NewString(), gin.H{"customer_phone": "0550000000"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d body=%s", w.Code, w.Body.String())
	}
	if resp := decodeCartResult(t, w); resp.Success {
		t.Fatalf("empty cart checkout should fail")
	}
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	r, db := setupRouterTest(t)
	product := seedProduct(t, db, "Tacos", 350)
	session := uuid.NewString()

	doJSON(t, r, http.MethodPost, "/api/v1/cart/products", session, gin.H{"product_id": product.ID})
	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", session, gin.H{"customer_phone": "0661000000"})
	placed := decodeCartResult(t, w)
	var order struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(placed.Data, &order); err != nil || order.ID == 0 {
		t.Fatalf("checkout failed: %v body=%s", err, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID), "", gin.H{"status": "ready"})
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status update want status_code 0 got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Status != "ready" {
		t.Fatalf("status want ready got %s", stored.Status)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID), "", gin.H{"status": "teleported"})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.StatusCode != 400 {
		t.Fatalf("invalid status want status_code 400 got %d", resp.StatusCode)
	}
}
